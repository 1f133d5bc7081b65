package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Sync outcome colors
const (
	ColorConflict Color = "208" // Orange - needs the user
	ColorDone     Color = "2"   // Green - synced
	ColorFailed   Color = "1"   // Red - failed
	ColorRunning  Color = "3"   // Yellow - in progress
)

// UI semantic colors
const (
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorSpinner   Color = "205" // Pink
	ColorSubtle    Color = "245" // Light gray - labels
)
