package core

// Color represents a foreground color for a screen cell.
// Hosts map it to ANSI 256-color codes or RGBA values.
type Color uint8

// Palette used by the board renderers. Each shape kind owns one color;
// ColorGhost marks the landing preview.
const (
	ColorDefault Color = iota
	ColorYellow
	ColorMagenta
	ColorOrange
	ColorBlue
	ColorGreen
	ColorRed
	ColorCyan
	ColorGray
	ColorGhost
	ColorBrightWhite
)

// String returns the color name, mostly for test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	case ColorOrange:
		return "orange"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorCyan:
		return "cyan"
	case ColorGray:
		return "gray"
	case ColorGhost:
		return "ghost"
	case ColorBrightWhite:
		return "bright-white"
	default:
		return "unknown"
	}
}
