package core

// Color is the foreground color of a screen cell.
type Color uint8

// Screen colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorDim // Trails and empty quadrant slots

	colorCount
)

// ansi256 holds the xterm 256-color code of every color.
var ansi256 = [colorCount]string{
	ColorDefault:     "",
	ColorRed:         "196",
	ColorGreen:       "46",
	ColorYellow:      "226",
	ColorBlue:        "33",
	ColorMagenta:     "201",
	ColorCyan:        "51",
	ColorWhite:       "7",
	ColorBrightWhite: "15",
	ColorGray:        "245",
	ColorDim:         "238",
}

// Colors returns every screen color in declaration order.
func Colors() []Color {
	out := make([]Color, 0, colorCount)
	for c := range colorCount {
		out = append(out, c)
	}
	return out
}

// ANSI returns the 256-color code, or "" for the terminal default.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansi256[c]
}

// Bold reports whether cells of this color are drawn bold.
func (c Color) Bold() bool { return c == ColorBrightWhite }
