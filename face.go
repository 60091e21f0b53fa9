package nxcube

import "strings"

// Face represents one of the six cube faces. The same type is used as the
// sticker label: a solved cube has every sticker labelled with its own face.
type Face int

const (
	Up    Face = 0
	Down  Face = 1
	Left  Face = 2
	Right Face = 3
	Front Face = 4
	Back  Face = 5
)

// Faces lists every face in storage order.
var Faces = [6]Face{Up, Down, Left, Right, Front, Back}

func (f Face) String() string {
	switch f {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	case Front:
		return "F"
	case Back:
		return "B"
	default:
		return "?"
	}
}

// Name returns the long name of the face.
func (f Face) Name() string {
	switch f {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return "unknown"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= Up && f <= Back
}

// ParseFace parses a face letter (U, D, L, R, F, B) or long name.
func ParseFace(s string) (Face, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return Up, true
	case "d", "down":
		return Down, true
	case "l", "left":
		return Left, true
	case "r", "right":
		return Right, true
	case "f", "front":
		return Front, true
	case "b", "back":
		return Back, true
	default:
		return 0, false
	}
}

// Axis is one of the three rotation axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Axes lists the three rotation axes.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Valid reports whether a is x, y or z.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// ParseAxis parses "x", "y" or "z" (case-insensitive).
func ParseAxis(s string) (Axis, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, true
	case "y":
		return AxisY, true
	case "z":
		return AxisZ, true
	default:
		return 0, false
	}
}
