package parser

import (
	"errors"
	"path/filepath"
	"strings"
)

// Format represents the supported version-file formats.
type Format string

const (
	// FormatJSON is for JSON documents such as version.json.
	FormatJSON Format = "json"

	// FormatPython is for Python modules such as _version.py.
	FormatPython Format = "python"
)

const (
	// VersionField is the JSON field holding the dotted version string.
	VersionField = "version"

	// VersionInfoField is the optional JSON field holding [major, minor, patch].
	VersionInfoField = "version_info"

	// PythonAttribute is the module attribute assigned in Python files.
	PythonAttribute = "__version__"
)

// ErrUnparsable is wrapped by every error caused by file contents rather than I/O.
var ErrUnparsable = errors.New("unparsable version file")

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatPython:
		return true
	default:
		return false
	}
}

// ParseFormat converts a user-supplied name to a Format. "py" is accepted as
// an alias for python.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, true
	case "python", "py":
		return FormatPython, true
	default:
		return "", false
	}
}

// FormatForFile detects the format from a file name's extension.
func FormatForFile(filename string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON, true
	case ".py":
		return FormatPython, true
	default:
		return "", false
	}
}

// FileConfig describes which file to read and how to interpret it.
type FileConfig struct {
	// Path is the file path (absolute or relative).
	Path string

	// Format specifies the file format.
	Format Format
}
