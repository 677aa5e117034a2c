package parser

import (
	"context"
	"fmt"
	"regexp"

	"github.com/indaco/versionator/internal/core"
	"github.com/tidwall/gjson"
)

// pythonVersionRegex matches a `__version__ = "..."` line. The quoted value is
// captured as-is; validating it is left to the semver package.
var pythonVersionRegex = regexp.MustCompile(`(?m)^` + PythonAttribute + ` = "([^"\r\n]*)"`)

// Reader extracts version strings from version files.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// ReadVersion reads cfg.Path and returns the raw version string it declares.
func (r *Reader) ReadVersion(ctx context.Context, cfg FileConfig) (string, error) {
	if cfg.Path == "" {
		return "", fmt.Errorf("file path is required")
	}
	if !cfg.Format.IsValid() {
		return "", fmt.Errorf("invalid format: %s", cfg.Format)
	}

	data, err := r.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", cfg.Path, err)
	}

	return Extract(cfg.Format, data)
}

// Extract returns the raw version string declared by data in the given format.
func Extract(format Format, data []byte) (string, error) {
	switch format {
	case FormatJSON:
		return extractJSON(data)
	case FormatPython:
		return extractPython(data)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func extractJSON(data []byte) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("%w: invalid JSON", ErrUnparsable)
	}
	if !gjson.ParseBytes(data).IsObject() {
		return "", fmt.Errorf("%w: JSON document is not an object", ErrUnparsable)
	}

	value := gjson.GetBytes(data, VersionField)
	if !value.Exists() {
		return "", fmt.Errorf("%w: field %q not found", ErrUnparsable, VersionField)
	}
	if value.Type != gjson.String {
		return "", fmt.Errorf("%w: field %q is not a string", ErrUnparsable, VersionField)
	}
	return value.String(), nil
}

func extractPython(data []byte) (string, error) {
	matches := pythonVersionRegex.FindSubmatch(data)
	if matches == nil {
		return "", fmt.Errorf("%w: no line of the form %s = \"MAJOR.MINOR.PATCH\"", ErrUnparsable, PythonAttribute)
	}
	return string(matches[1]), nil
}
