// Package style defines lipgloss styles for the TUI.
package style

import "github.com/charmbracelet/lipgloss"

// UI styles using lipgloss.
// These are package-level for convenience; lipgloss styles are value types
// and safe for concurrent use.
var (
	// Title is used for the preview header.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	// Subtitle is used for secondary text such as the sample range.
	Subtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// Help is used for keyboard shortcut hints.
	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Key is used for highlighting keyboard keys.
	Key = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	// Progress is used for the waveform bars.
	Progress = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	// Muted is used for the empty waveform baseline.
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
)
