package tui

import (
	"github.com/charmbracelet/huh"
)

// DefaultThemeName names the built-in versionator palette.
const DefaultThemeName = "default"

// themes maps the names accepted by the theme setting to their constructors.
var themes = map[string]func() *huh.Theme{
	DefaultThemeName: defaultTheme,
	"charm":          huh.ThemeCharm,
	"dracula":        huh.ThemeDracula,
	"catppuccin":     huh.ThemeCatppuccin,
	"base16":         huh.ThemeBase16,
}

// ValidThemes lists the accepted theme names, default first.
var ValidThemes = []string{DefaultThemeName, "charm", "dracula", "catppuccin", "base16"}

// IsValidTheme reports whether name selects a theme.
func IsValidTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// GetTheme builds the prompt theme called name, or returns nil for an
// unknown name.
func GetTheme(name string) *huh.Theme {
	build, ok := themes[name]
	if !ok {
		return nil
	}
	return build()
}
