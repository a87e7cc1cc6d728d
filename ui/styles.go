package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorCyan    = lipgloss.Color("#8BE9FD")
	colorGreen   = lipgloss.Color("#50FA7B")
	colorYellow  = lipgloss.Color("#F1FA8C")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorBlue    = lipgloss.Color("#5F87FF")
	colorRed     = lipgloss.Color("#FF5555")
	colorGray    = lipgloss.Color("#6272A4")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true)
	critStyle  = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(colorGray)
	helpStyle  = lipgloss.NewStyle().Foreground(colorGray)
)
