package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Turn type colors
const (
	ColorCompressed Color = "141" // Purple - compressed history
	ColorFunction   Color = "214" // Orange - function calls
	ColorModel      Color = "2"   // Green - model responses
	ColorPool       Color = "3"   // Yellow - uncommitted pool
	ColorTool       Color = "33"  // Blue - tool responses
	ColorUser       Color = "255" // White - user tasks
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)
