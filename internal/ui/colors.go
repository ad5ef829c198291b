// Package ui provides terminal styling for cat-facts-cli output
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color palette
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("82")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorInfo    = lipgloss.Color("87")  // Cyan
	ColorMuted   = lipgloss.Color("245") // Gray
)

// Text styles
var (
	StyleBold = lipgloss.NewStyle().Bold(true)

	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// LogStyles returns logger styles that follow the palette
func LogStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Prefix = StylePrimary.Bold(true)
	styles.Key = StyleMuted
	styles.Levels[log.DebugLevel] = styles.Levels[log.DebugLevel].Foreground(ColorMuted)
	styles.Levels[log.InfoLevel] = styles.Levels[log.InfoLevel].Foreground(ColorInfo)
	styles.Levels[log.WarnLevel] = styles.Levels[log.WarnLevel].Foreground(ColorWarning)
	styles.Levels[log.ErrorLevel] = styles.Levels[log.ErrorLevel].Foreground(ColorError)
	styles.Levels[log.FatalLevel] = styles.Levels[log.FatalLevel].Foreground(ColorError)
	return styles
}

// ColorEnabled reports whether styled output should be written to f.
// NO_COLOR in the environment disables color regardless of the terminal.
func ColorEnabled(f *os.File, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ApplyColorMode switches the default renderer to plain text when color is off
func ApplyColorMode(enabled bool) {
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
