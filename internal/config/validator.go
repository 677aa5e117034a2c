package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/indaco/versionator/internal/tui"
)

// Validate checks values the YAML decoder cannot.
func (c *Config) Validate() error {
	if c.Theme != "" && !tui.IsValidTheme(c.Theme) {
		return fmt.Errorf("unknown theme %q (valid: %s)", c.Theme, strings.Join(tui.ValidThemes, ", "))
	}

	prefix := c.TagPrefix()
	if strings.ContainsAny(prefix, " \t\r\n~^:?*[\\") {
		return fmt.Errorf("invalid tag prefix %q: not allowed in a git ref name", prefix)
	}
	if strings.Contains(prefix, "..") {
		return fmt.Errorf("invalid tag prefix %q: must not contain \"..\"", prefix)
	}

	if strings.Contains(c.Package, "..") || filepath.IsAbs(c.Package) {
		return fmt.Errorf("invalid package %q: must be a relative subdirectory", c.Package)
	}

	return nil
}
