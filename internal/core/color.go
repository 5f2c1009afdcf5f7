package core

import "strings"

// Color is an opaque paint token understood by a Surface.
// The platform decides how each token looks on screen.
type Color uint8

// Palette and UI colors.
const (
	ColorDefault Color = iota // Unset; entities treat it as "pick one"
	ColorRed
	ColorGreen
	ColorBlue
	ColorWhite  // Health bar container
	ColorOrange // Health warning band
	ColorBlack  // Text
	ColorGray
)

// String returns the lowercase name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorWhite:
		return "white"
	case ColorOrange:
		return "orange"
	case ColorBlack:
		return "black"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}

// ParseColor converts a color name to a Color.
// Returns ColorDefault and false if the name is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "white":
		return ColorWhite, true
	case "orange":
		return ColorOrange, true
	case "black":
		return ColorBlack, true
	case "gray", "grey":
		return ColorGray, true
	default:
		return ColorDefault, false
	}
}

// DefaultPalette returns the colors blocks and the basket are drawn from.
func DefaultPalette() []Color {
	return []Color{ColorRed, ColorGreen, ColorBlue}
}
