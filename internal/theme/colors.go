package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Tree colors
const (
	ColorConnector Color = "12"  // Blue - connectors and root branches
	ColorMuted     Color = "241" // Gray - PR numbers and titles
)

// Message colors
const (
	ColorError   Color = "196" // Bright red
	ColorSuccess Color = "86"  // Cyan
	ColorRepo    Color = "99"  // Purple - repository headings
)
