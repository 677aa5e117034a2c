package semver

import (
	"fmt"
	"math"
	"strings"
)

// BumpKind selects which component of a Version is incremented.
type BumpKind string

const (
	BumpMajor BumpKind = "major"
	BumpMinor BumpKind = "minor"
	BumpPatch BumpKind = "patch"
)

// bumpAliases maps accepted spellings to their canonical kind.
var bumpAliases = map[string]BumpKind{
	"major":  BumpMajor,
	"big":    BumpMajor,
	"minor":  BumpMinor,
	"small":  BumpMinor,
	"patch":  BumpPatch,
	"fix":    BumpPatch,
	"bugfix": BumpPatch,
}

// BumpKinds lists the canonical kinds in order of significance.
var BumpKinds = []BumpKind{BumpMajor, BumpMinor, BumpPatch}

func (k BumpKind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the canonical kinds.
func (k BumpKind) IsValid() bool {
	switch k {
	case BumpMajor, BumpMinor, BumpPatch:
		return true
	default:
		return false
	}
}

// ParseBumpKind resolves a kind or one of its aliases (big, small, fix,
// bugfix), ignoring case.
func ParseBumpKind(s string) (BumpKind, error) {
	if kind, ok := bumpAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q (expected major, minor or patch)", ErrInvalidBumpKind, s)
}

// Bump returns the version that follows v for the given kind:
//   - major: (major+1, 0, 0)
//   - minor: (major, minor+1, 0)
//   - patch: (major, minor, patch+1)
//
// Incrementing a component already at math.MaxInt returns ErrInvalidVersion.
func Bump(v Version, kind BumpKind) (Version, error) {
	switch kind {
	case BumpMajor:
		if v.Major == math.MaxInt {
			return Version{}, overflowError("major", v)
		}
		return Version{Major: v.Major + 1}, nil
	case BumpMinor:
		if v.Minor == math.MaxInt {
			return Version{}, overflowError("minor", v)
		}
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case BumpPatch:
		if v.Patch == math.MaxInt {
			return Version{}, overflowError("patch", v)
		}
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	default:
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidBumpKind, kind)
	}
}

func overflowError(component string, v Version) error {
	return fmt.Errorf("%w: %s component of %s cannot be incremented", ErrInvalidVersion, component, v)
}
