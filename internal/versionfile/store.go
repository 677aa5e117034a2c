// Package versionfile locates a project's version file and translates between
// its on-disk form and a semver.Version.
package versionfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/indaco/versionator/internal/core"
	"github.com/indaco/versionator/internal/parser"
	"github.com/indaco/versionator/internal/semver"
)

const (
	// JSONFileName is the recognized JSON version file name.
	JSONFileName = "version.json"

	// PythonFileName is the recognized Python version file name.
	PythonFileName = "_version.py"

	// DefaultVersion is the version suggested for new files.
	DefaultVersion = "0.0.0"
)

// RecognizedNames lists the version file names searched in each directory,
// in precedence order.
var RecognizedNames = []string{JSONFileName, PythonFileName}

// File is a resolved version file and the format it is read with.
type File struct {
	Path   string
	Format parser.Format
}

func (f File) config() parser.FileConfig {
	return parser.FileConfig{Path: f.Path, Format: f.Format}
}

// Store resolves, reads and writes version files.
type Store struct {
	fs         core.FileSystem
	rw         *parser.ReadWriter
	packageDir string
}

// Option configures a Store.
type Option func(*Store)

// WithPackageDir makes Resolve check dir/<name> before any other location.
func WithPackageDir(name string) Option {
	return func(s *Store) {
		s.packageDir = name
	}
}

// NewStore creates a Store on top of fs.
func NewStore(fs core.FileSystem, opts ...Option) *Store {
	s := &Store{
		fs: fs,
		rw: parser.NewReadWriter(fs),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve returns the version file for startPath.
//
// A file path is used directly, with its format taken from the extension.
// For a directory the following locations are checked in order, and the first
// one holding a recognized file wins:
//
//  1. dir/<package dir>, when configured
//  2. dir
//  3. dir/<project>, where <project> is the directory's base name, also tried
//     with "-" replaced by "_"
//  4. dir/src/<project>, with the same name variants
//
// There is no deeper recursion. Two recognized files in the same directory
// yield a MultipleFilesError.
func (s *Store) Resolve(ctx context.Context, startPath string) (File, error) {
	if startPath == "" {
		startPath = "."
	}

	info, err := s.fs.Stat(ctx, startPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return File{}, &NotFoundError{Path: startPath}
		}
		return File{}, fmt.Errorf("failed to stat %q: %w", startPath, err)
	}

	if !info.IsDir() {
		format, ok := parser.FormatForFile(startPath)
		if !ok {
			return File{}, fmt.Errorf("unsupported version file %q: expected a .json or .py file", startPath)
		}
		return File{Path: startPath, Format: format}, nil
	}

	dirs := s.searchDirs(startPath)
	for _, dir := range dirs {
		file, found, err := s.findInDir(ctx, dir)
		if err != nil {
			return File{}, err
		}
		if found {
			return file, nil
		}
	}

	return File{}, &NotFoundError{Path: startPath, Searched: dirs}
}

// searchDirs returns the candidate directories for root, without duplicates.
func (s *Store) searchDirs(root string) []string {
	var dirs []string
	seen := make(map[string]bool)
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	if s.packageDir != "" {
		add(filepath.Join(root, s.packageDir))
	}
	add(root)

	for _, name := range projectNames(root) {
		add(filepath.Join(root, name))
	}
	for _, name := range projectNames(root) {
		add(filepath.Join(root, "src", name))
	}
	return dirs
}

// projectNames derives package directory names from root's base name.
func projectNames(root string) []string {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	base := filepath.Base(abs)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return nil
	}

	names := []string{base}
	if underscored := strings.ReplaceAll(base, "-", "_"); underscored != base {
		names = append(names, underscored)
	}
	return names
}

func (s *Store) findInDir(ctx context.Context, dir string) (File, bool, error) {
	var found []File
	for _, name := range RecognizedNames {
		path := filepath.Join(dir, name)
		info, err := s.fs.Stat(ctx, path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				continue
			}
			return File{}, false, fmt.Errorf("failed to stat %q: %w", path, err)
		}
		if info.IsDir() {
			continue
		}
		format, _ := parser.FormatForFile(name)
		found = append(found, File{Path: path, Format: format})
	}

	switch len(found) {
	case 0:
		return File{}, false, nil
	case 1:
		return found[0], true, nil
	default:
		paths := make([]string, len(found))
		for i, f := range found {
			paths[i] = f.Path
		}
		return File{}, false, &MultipleFilesError{Files: paths}
	}
}

// Parse reads the version declared by file.
func (s *Store) Parse(ctx context.Context, file File) (semver.Version, error) {
	raw, err := s.rw.ReadVersion(ctx, file.config())
	if err != nil {
		if errors.Is(err, parser.ErrUnparsable) {
			return semver.Version{}, &ParseError{Path: file.Path, Err: err}
		}
		return semver.Version{}, err
	}

	v, err := semver.ParseVersion(raw)
	if err != nil {
		return semver.Version{}, &ParseError{Path: file.Path, Err: err}
	}
	return v, nil
}

// Serialize writes version back into file, keeping everything but the version
// value intact.
func (s *Store) Serialize(ctx context.Context, file File, version semver.Version) error {
	if err := s.rw.Write(ctx, file.config(), version); err != nil {
		if errors.Is(err, parser.ErrUnparsable) {
			return &ParseError{Path: file.Path, Err: err}
		}
		return err
	}
	return nil
}

// Init creates a new version file of the given format in dir. An existing
// file of the same name is replaced only when force is set; a file of the
// other format is never overwritten.
func (s *Store) Init(ctx context.Context, dir string, format parser.Format, version semver.Version, force bool) (File, error) {
	name := JSONFileName
	if format == parser.FormatPython {
		name = PythonFileName
	}

	for _, existing := range RecognizedNames {
		if force && existing == name {
			continue
		}
		path := filepath.Join(dir, existing)
		if _, err := s.fs.Stat(ctx, path); err == nil {
			return File{}, &ExistsError{Path: path}
		}
	}

	data, err := parser.Render(format, version)
	if err != nil {
		return File{}, err
	}

	path := filepath.Join(dir, name)
	if err := s.fs.WriteFile(ctx, path, data, core.PermPublicRead); err != nil {
		return File{}, fmt.Errorf("failed to create %q: %w", path, err)
	}
	return File{Path: path, Format: format}, nil
}
