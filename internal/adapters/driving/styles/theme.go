// Package styles provides the colour theme for terminal output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for terminal output.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Error:      lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles contains the styles for a transcript tree dump.
type Styles struct {
	theme *Theme

	// File styles the transcript header line.
	File lipgloss.Style

	// Section styles section lines.
	Section lipgloss.Style

	// Turn styles turn lines.
	Turn lipgloss.Style

	// Time styles time spans.
	Time lipgloss.Style

	// Text styles chunk text.
	Text lipgloss.Style

	// Error styles error messages.
	Error lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		File: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Turn: lipgloss.NewStyle().
			Foreground(theme.Success),

		Time: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Text: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// PlainStyles returns styles that render text unchanged, for output that
// is not a terminal.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		File:    plain,
		Section: plain,
		Turn:    plain,
		Time:    plain,
		Text:    plain,
		Error:   plain,
	}
}

// Theme returns the theme used by these styles, or nil for plain styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
