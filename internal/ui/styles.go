// Package ui centralizes terminal styling for command output.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic color definitions
var (
	ColorRemovable = lipgloss.Color("#22c55e") // Green
	ColorBlocked   = lipgloss.Color("#ef4444") // Red
	ColorMuted     = lipgloss.Color("#6b7280") // Gray
	ColorHeading   = lipgloss.Color("#06b6d4") // Cyan
)

// Symbol definitions
var (
	SymbolRemovable = "✓"
	SymbolBlocked   = "✗"
)

var (
	removableStyle = lipgloss.NewStyle().Foreground(ColorRemovable)
	blockedStyle   = lipgloss.NewStyle().Foreground(ColorBlocked)
	mutedStyle     = lipgloss.NewStyle().Foreground(ColorMuted)
	headingStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeading)
)

func init() {
	// Respect the NO_COLOR standard (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Heading renders a bold section heading.
func Heading(s string) string {
	return headingStyle.Render(s)
}

// Removable renders the removable status marker.
func Removable() string {
	return removableStyle.Render(SymbolRemovable)
}

// Blocked renders the blocked status marker followed by the muted reason.
func Blocked(reason string) string {
	if reason == "" {
		return blockedStyle.Render(SymbolBlocked)
	}
	return blockedStyle.Render(SymbolBlocked) + " " + mutedStyle.Render(reason)
}

// Muted renders de-emphasized text.
func Muted(s string) string {
	return mutedStyle.Render(s)
}
