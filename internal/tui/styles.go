package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#7D56F4")
	green  = lipgloss.Color("#04B575")
	gray   = lipgloss.Color("#888888")
)

var (
	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	// Warning styling for diagnostics
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F5A623"))

	// Error styling
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	// Success styling
	SuccessStyle = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)

	// Subtle text styling
	SubtleStyle = lipgloss.NewStyle().
			Foreground(gray)
)
