package core

// Color represents a palette entry used by shapes and screen cells.
// Terminal frontends map it to ANSI 256 colors, the desktop frontend to RGBA.
type Color uint8

// Palette for road and HUD elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorGray
	ColorDarkGray
	ColorYellow
	ColorWhite
	ColorRed
	ColorBrightRed
	ColorBrightBlue
	ColorBrightWhite
)
