package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#1d4ed8")
	colorMuted   = lipgloss.Color("#6b7280")
	colorSuccess = lipgloss.Color("#15803d")
	colorError   = lipgloss.Color("#b91c1c")
	colorWarning = lipgloss.Color("#b45309")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(colorPrimary).
			Padding(0, 1)
	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	labelStyle     = lipgloss.NewStyle().Width(34)
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	sectionStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	statusOKStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError)
	busyStyle      = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	helpStyle      = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	editorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
)
