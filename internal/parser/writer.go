package parser

import (
	"context"
	"fmt"

	"github.com/indaco/versionator/internal/core"
	"github.com/indaco/versionator/internal/semver"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Writer rewrites the version declared by a version file.
type Writer struct {
	fs core.FileSystem
}

// NewWriter creates a new Writer with the given filesystem.
func NewWriter(fs core.FileSystem) *Writer {
	return &Writer{fs: fs}
}

// Write replaces the version declared in cfg.Path with version.
func (w *Writer) Write(ctx context.Context, cfg FileConfig, version semver.Version) error {
	if cfg.Path == "" {
		return fmt.Errorf("file path is required")
	}
	if !cfg.Format.IsValid() {
		return fmt.Errorf("invalid format: %s", cfg.Format)
	}

	data, err := w.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", cfg.Path, err)
	}

	updated, err := Replace(cfg.Format, data, version)
	if err != nil {
		return fmt.Errorf("in file %q: %w", cfg.Path, err)
	}

	if err := w.fs.WriteFile(ctx, cfg.Path, updated, core.PermPublicRead); err != nil {
		return fmt.Errorf("failed to write file %q: %w", cfg.Path, err)
	}
	return nil
}

// Replace returns data with its declared version replaced by version.
func Replace(format Format, data []byte, version semver.Version) ([]byte, error) {
	switch format {
	case FormatJSON:
		return replaceJSON(data, version)
	case FormatPython:
		return replacePython(data, version)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// replaceJSON uses sjson so key order, indentation and unrelated fields are
// kept. A version_info array, when present, is kept in sync.
func replaceJSON(data []byte, version semver.Version) ([]byte, error) {
	if _, err := extractJSON(data); err != nil {
		return nil, err
	}

	updated, err := sjson.SetBytes(data, VersionField, version.String())
	if err != nil {
		return nil, fmt.Errorf("failed to set %q: %w", VersionField, err)
	}

	if gjson.GetBytes(updated, VersionInfoField).IsArray() {
		updated, err = sjson.SetBytes(updated, VersionInfoField, version.Components())
		if err != nil {
			return nil, fmt.Errorf("failed to set %q: %w", VersionInfoField, err)
		}
	}

	return updated, nil
}

// replacePython rewrites the quoted value of the first __version__ line only.
func replacePython(data []byte, version semver.Version) ([]byte, error) {
	loc := pythonVersionRegex.FindSubmatchIndex(data)
	if loc == nil {
		return nil, fmt.Errorf("%w: no line of the form %s = \"MAJOR.MINOR.PATCH\"", ErrUnparsable, PythonAttribute)
	}

	start, end := loc[2], loc[3]
	value := version.String()

	out := make([]byte, 0, len(data)-(end-start)+len(value))
	out = append(out, data[:start]...)
	out = append(out, value...)
	out = append(out, data[end:]...)
	return out, nil
}

// Render returns the contents of a fresh version file declaring version.
func Render(format Format, version semver.Version) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := sjson.SetBytes([]byte("{}"), VersionField, version.String())
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatPython:
		return fmt.Appendf(nil, "%s = %q\n", PythonAttribute, version.String()), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// ReadWriter combines Reader and Writer functionality.
type ReadWriter struct {
	*Reader
	*Writer
}

// NewReadWriter creates a new ReadWriter with the given filesystem.
func NewReadWriter(fs core.FileSystem) *ReadWriter {
	return &ReadWriter{
		Reader: NewReader(fs),
		Writer: NewWriter(fs),
	}
}
