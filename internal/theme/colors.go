package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - titles
	ColorSecondary Color = "86" // Cyan - plan ids
)

// Executor colors
const (
	ColorExecutorAI    Color = "39"  // Blue
	ColorExecutorHuman Color = "213" // Pink
)

// UI semantic colors
const (
	ColorError  Color = "196" // Bright red
	ColorMuted  Color = "241" // Gray - secondary text
	ColorSubtle Color = "245" // Light gray - labels
	ColorWait   Color = "178" // Gold - waiting steps
)
