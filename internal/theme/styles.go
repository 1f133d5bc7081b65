package theme

import "github.com/charmbracelet/lipgloss"

// Text styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// Outcome styles
var (
	ConflictStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorConflict)

	DoneStyle = lipgloss.NewStyle().
			Foreground(ColorDone)

	FailedStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)

	RunningStyle = lipgloss.NewStyle().
			Foreground(ColorRunning)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorSpinner)
)

// NoticeBoxStyle frames blocking notices
var NoticeBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorConflict).
	Padding(0, 1)
