package version

import (
	"runtime/debug"
	"testing"
)

func TestGetVersion(t *testing.T) {
	orig := readBuildInfo
	defer func() { readBuildInfo = orig }()

	tests := []struct {
		name string
		info *debug.BuildInfo
		ok   bool
		want string
	}{
		{"no build info", nil, false, Version},
		{"devel build", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true, Version},
		{"empty version", &debug.BuildInfo{}, true, Version},
		{"installed release", &debug.BuildInfo{Main: debug.Module{Version: "v1.4.0"}}, true, "1.4.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readBuildInfo = func() (*debug.BuildInfo, bool) { return tt.info, tt.ok }
			if got := GetVersion(); got != tt.want {
				t.Errorf("GetVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}
