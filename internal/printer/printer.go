// Package printer renders styled console output.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Stdout and Stderr are the destinations of the Print functions.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Style definitions for consistent console output across the application.
var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
	keyStyle     = lipgloss.NewStyle().Faint(true).Width(10)
)

func init() {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		SetNoColor(true)
	}
}

// SetNoColor disables or re-enables ANSI styling for all rendered output.
func SetNoColor(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Bold returns text with bold styling.
func Bold(text string) string {
	return boldStyle.Render(text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Info returns text with info (cyan) styling.
func Info(text string) string {
	return infoStyle.Render(text)
}

// KeyValue renders a padded faint label followed by value.
func KeyValue(key, value string) string {
	return keyStyle.Render(key+":") + " " + value
}

// PrintFaint prints text with faint styling.
func PrintFaint(text string) {
	fmt.Fprintln(Stdout, Faint(text))
}

// PrintBold prints text with bold styling.
func PrintBold(text string) {
	fmt.Fprintln(Stdout, Bold(text))
}

// PrintSuccess prints text with success (green) styling.
func PrintSuccess(text string) {
	fmt.Fprintln(Stdout, Success(text))
}

// PrintError prints text with error (red) styling to Stderr.
func PrintError(text string) {
	fmt.Fprintln(Stderr, Error(text))
}

// PrintWarning prints text with warning (yellow) styling to Stderr.
func PrintWarning(text string) {
	fmt.Fprintln(Stderr, Warning(text))
}

// PrintInfo prints text with info (cyan) styling.
func PrintInfo(text string) {
	fmt.Fprintln(Stdout, Info(text))
}

// PrintKeyValue prints a KeyValue line.
func PrintKeyValue(key, value string) {
	fmt.Fprintln(Stdout, KeyValue(key, value))
}

// Println prints text unstyled.
func Println(text string) {
	fmt.Fprintln(Stdout, text)
}
