package queuepanel

import "github.com/charmbracelet/lipgloss"

const (
	currentSymbol = "▶"
	anchorSymbol  = "↳" // next explicit add lands after this entry
)

var (
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	entryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	currentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // cyan/blue
			Bold(true)

	anchorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // orange

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252"))

	dimmedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
)
