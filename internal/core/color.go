package core

// Color represents a foreground color for a screen cell.
// Platforms map it to ANSI 256-color codes or RGB values.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown     // menu buttons, cave walls
	ColorDarkGreen // forest canopy
	ColorDarkGray  // dialogue overlay
)
