package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Palette of the default theme.
var (
	accentPrimary      = lipgloss.AdaptiveColor{Light: "#6d28d9", Dark: "#a78bfa"}
	accentBright       = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#c4b5fd"}
	textStrong         = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f9fafb"}
	textMuted          = lipgloss.AdaptiveColor{Light: "#4b5563", Dark: "#9ca3af"}
	textFaint          = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}
	borderFocused      = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#8b5cf6"}
	buttonBg           = lipgloss.AdaptiveColor{Light: "#6d28d9", Dark: "#8b5cf6"}
	buttonBgBlurred    = lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#374151"}
	buttonText         = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#ffffff"}
	buttonTextBlurred  = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#d1d5db"}
	errorIndicatorText = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}
)

// currentTheme holds the configured theme. Nil means the default theme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name. Empty or unknown names select
// the default theme.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

// currentThemeOrDefault returns the theme used by prompts.
func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return defaultTheme()
	}
	return currentTheme
}

func resetTheme() {
	currentTheme = nil
}

// defaultTheme builds on huh's base theme with the versionator palette.
func defaultTheme() *huh.Theme {
	t := huh.ThemeBase()

	button := lipgloss.NewStyle().Padding(0, 1).Bold(true)

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderFocused)
	t.Focused.Title = t.Focused.Title.Foreground(accentPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(textMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errorIndicatorText)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errorIndicatorText)
	t.Focused.FocusedButton = button.Foreground(buttonText).Background(buttonBg)
	t.Focused.BlurredButton = button.Foreground(buttonTextBlurred).Background(buttonBgBlurred)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(textMuted)

	t.Help.ShortKey = t.Help.ShortKey.Foreground(accentBright)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(textMuted)
	t.Help.ShortSeparator = t.Help.ShortSeparator.Foreground(textFaint)
	t.Help.FullKey = t.Help.FullKey.Foreground(accentBright)
	t.Help.FullDesc = t.Help.FullDesc.Foreground(textStrong)
	t.Help.FullSeparator = t.Help.FullSeparator.Foreground(textFaint)

	return t
}
