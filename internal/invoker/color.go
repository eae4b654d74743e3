package invoker

import "strings"

// Color is the color of a falling piece.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCount // Sentinel value for iteration
)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// ParseColor converts a color name to a Color.
// Returns ColorRed and false if the name is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red":
		return ColorRed, true
	case "green":
		return ColorGreen, true
	case "yellow":
		return ColorYellow, true
	case "blue":
		return ColorBlue, true
	default:
		return ColorRed, false
	}
}

// Quadrant is one of the four slots of a circle.
type Quadrant uint8

// Quadrants in their fixed insertion order.
const (
	UpperLeft Quadrant = iota
	UpperRight
	LowerLeft
	LowerRight
	QuadrantCount
)

func (q Quadrant) String() string {
	switch q {
	case UpperLeft:
		return "upper-left"
	case UpperRight:
		return "upper-right"
	case LowerLeft:
		return "lower-left"
	case LowerRight:
		return "lower-right"
	default:
		return "unknown"
	}
}

// QuadrantFor returns the circle slot a color fills.
func QuadrantFor(c Color) Quadrant {
	switch c {
	case ColorRed:
		return UpperLeft
	case ColorGreen:
		return UpperRight
	case ColorYellow:
		return LowerLeft
	default:
		return LowerRight
	}
}

// ColorFor is the inverse of QuadrantFor.
func ColorFor(q Quadrant) Color {
	switch q {
	case UpperLeft:
		return ColorRed
	case UpperRight:
		return ColorGreen
	case LowerLeft:
		return ColorYellow
	default:
		return ColorBlue
	}
}
