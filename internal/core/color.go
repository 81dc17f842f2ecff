package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the terminal frontend.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorWhite
	ColorBrightGreen
	ColorGray
)
