package versionfile

import (
	"fmt"
	"strings"
)

// NotFoundError reports that no recognized version file exists at or under Path.
type NotFoundError struct {
	Path     string
	Searched []string
}

func (e *NotFoundError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "no version file found at %s (expected %s)", e.Path, strings.Join(RecognizedNames, " or "))
	sb.WriteString("\nCreate one with either:\n")
	fmt.Fprintf(&sb, "  echo '{\"version\": \"%s\"}' > %s\n", DefaultVersion, JSONFileName)
	fmt.Fprintf(&sb, "  echo '__version__ = \"%s\"' > %s\n", DefaultVersion, PythonFileName)
	sb.WriteString("or run: versionator init")
	return sb.String()
}

// MultipleFilesError reports that more than one recognized file was found in
// the same directory.
type MultipleFilesError struct {
	Files []string
}

func (e *MultipleFilesError) Error() string {
	return fmt.Sprintf("found more than one version file: %s (use --path to pick one)", strings.Join(e.Files, ", "))
}

// ParseError reports a version file whose contents are not a valid version.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse version in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExistsError reports that Init would overwrite an existing version file.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("version file already exists: %s", e.Path)
}
