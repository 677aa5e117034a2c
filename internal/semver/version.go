// Package semver models the three-component release version tracked by
// versionator and the pure arithmetic used to bump it.
package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version is a release version made of three non-negative integers.
// Values are never mutated in place; bumping returns a new Version.
type Version struct {
	Major int
	Minor int
	Patch int
}

var (
	// versionRegex matches exactly "MAJOR.MINOR.PATCH" with decimal components.
	versionRegex = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

	// ErrInvalidVersion is returned when a string is not a MAJOR.MINOR.PATCH version.
	ErrInvalidVersion = errors.New("invalid version format")

	// ErrInvalidBumpKind is returned for bump kinds other than major, minor or patch.
	ErrInvalidBumpKind = errors.New("invalid bump kind")
)

// maxVersionLength caps the input handed to the regex.
const maxVersionLength = 128

// String returns the dotted "MAJOR.MINOR.PATCH" form.
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(16)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	return sb.String()
}

// Components returns the version as a [major, minor, patch] slice.
func (v Version) Components() []int {
	return []int{v.Major, v.Minor, v.Patch}
}

// ParseVersion parses a "MAJOR.MINOR.PATCH" string. All three components are
// required and must fit in an int; surrounding whitespace is ignored.
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > maxVersionLength {
		return Version{}, fmt.Errorf("%w: version string exceeds maximum length of %d", ErrInvalidVersion, maxVersionLength)
	}

	matches := versionRegex.FindStringSubmatch(trimmed)
	if matches == nil {
		return Version{}, fmt.Errorf("%w: %q is not MAJOR.MINOR.PATCH", ErrInvalidVersion, trimmed)
	}

	var parts [3]int
	names := [3]string{"major", "minor", "patch"}
	for i := range parts {
		n, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return Version{}, fmt.Errorf("%w: invalid %s version: %s", ErrInvalidVersion, names[i], err.Error())
		}
		parts[i] = n
	}

	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}

// FromComponents builds a Version from a [major, minor, patch] slice.
func FromComponents(parts []int) (Version, error) {
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: expected 3 components, got %d", ErrInvalidVersion, len(parts))
	}
	for _, p := range parts {
		if p < 0 {
			return Version{}, fmt.Errorf("%w: negative component %d", ErrInvalidVersion, p)
		}
	}
	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}

// Compare returns -1 if v < other, 0 if equal and +1 if v > other, ordering
// lexicographically on (major, minor, patch).
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	return compareInt(v.Patch, other.Patch)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
