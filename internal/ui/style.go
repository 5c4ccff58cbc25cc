package ui

import "github.com/charmbracelet/lipgloss"

// Styles degrade to plain text automatically when stdout is not a
// terminal or NO_COLOR is set (termenv profile detection).
var (
	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	soonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	// HeadingStyle renders group headings in td list --group output.
	HeadingStyle = lipgloss.NewStyle().Bold(true)
)
