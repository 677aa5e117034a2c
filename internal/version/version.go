// Package version reports the versionator release.
package version

import "runtime/debug"

var (
	// Version is set at release time, or via -ldflags "-X".
	Version = "0.1.0"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the module version recorded by `go install`, falling
// back to Version for local builds.
func GetVersion() string {
	if info, ok := readBuildInfo(); ok {
		v := info.Main.Version
		if v != "" && v != "(devel)" {
			if v[0] == 'v' {
				return v[1:]
			}
			return v
		}
	}
	return Version
}
