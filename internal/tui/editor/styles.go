package editor

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("99")  // Purple
	accentColor  = lipgloss.Color("212") // Pink
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	slotKeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(14)

	slotValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedSlotStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	lockedSlotStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	editBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true).
			MarginTop(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			MarginTop(1)
)
