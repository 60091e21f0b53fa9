package nxcube

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Scope selects whether a rotation turns one layer or the whole cube.
type Scope int

const (
	ScopeLayer Scope = iota
	ScopeCube
)

func (s Scope) String() string {
	switch s {
	case ScopeLayer:
		return "layer"
	case ScopeCube:
		return "cube"
	default:
		return "unknown"
	}
}

// Rotation is a single turn command. Layer is only meaningful for
// ScopeLayer. Angle is one of 90, 180, 270 or 360 degrees. A non-zero
// Speed overrides the cube's quarter-turn duration for this turn only.
type Rotation struct {
	Scope     Scope
	Axis      Axis
	Layer     int
	Angle     int
	Backwards bool
	Speed     time.Duration
}

// LayerRotation builds a 90 degree layer turn.
func LayerRotation(axis Axis, layer int, backwards bool) Rotation {
	return Rotation{Scope: ScopeLayer, Axis: axis, Layer: layer, Angle: 90, Backwards: backwards}
}

// CubeRotation builds a 90 degree whole-cube turn.
func CubeRotation(axis Axis, backwards bool) Rotation {
	return Rotation{Scope: ScopeCube, Axis: axis, Angle: 90, Backwards: backwards}
}

// Validate checks the rotation against a cube of the given size.
func (r Rotation) Validate(size int) error {
	if !r.Axis.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAxis, int(r.Axis))
	}
	switch r.Angle {
	case 90, 180, 270, 360:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidAngle, r.Angle)
	}
	switch r.Scope {
	case ScopeCube:
	case ScopeLayer:
		if r.Layer < 0 || r.Layer >= size {
			return fmt.Errorf("%w: %d (size %d)", ErrInvalidLayer, r.Layer, size)
		}
	default:
		return fmt.Errorf("%w: %d", ErrInvalidScope, int(r.Scope))
	}
	if r.Speed < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSpeed, r.Speed)
	}
	return nil
}

// Normalize rewrites a 270 degree turn as a 90 degree turn the other way.
// A 180 degree turn is its own inverse, so its direction is left as given.
func (r Rotation) Normalize() Rotation {
	if r.Angle == 270 {
		r.Angle = 90
		r.Backwards = !r.Backwards
	}
	return r
}

// Inverse returns the rotation that undoes r.
func (r Rotation) Inverse() Rotation {
	inv := r
	switch r.Angle {
	case 90, 270:
		inv.Backwards = !r.Backwards
	// 180 and 360 are their own inverse
	}
	return inv
}

// SignedAngle returns Angle, negated for backwards rotations.
func (r Rotation) SignedAngle() int {
	if r.Backwards {
		return -r.Angle
	}
	return r.Angle
}

// step maps a normalized rotation to its operator step. ok is false for
// 360 degree turns, which leave the state untouched.
func (r Rotation) step() (step Step, ok bool) {
	switch r.Angle {
	case 90:
		if r.Backwards {
			return StepQuarterBackwards, true
		}
		return StepQuarter, true
	case 180:
		return StepHalf, true
	default:
		return 0, false
	}
}

// Notation returns the rotation in nxcube notation.
//
//	x      whole cube, 90 degrees about x
//	y'     whole cube, 90 degrees backwards about y
//	z2@1   layer 1, 180 degrees about z
//	x3'@0  layer 0, 270 degrees backwards about x
//	y4     whole cube, full turn about y
func (r Rotation) Notation() string {
	var b strings.Builder
	b.WriteString(r.Axis.String())
	switch r.Angle {
	case 180:
		b.WriteString("2")
	case 270:
		b.WriteString("3")
	case 360:
		b.WriteString("4")
	}
	if r.Backwards {
		b.WriteString("'")
	}
	if r.Scope == ScopeLayer {
		b.WriteString("@")
		b.WriteString(strconv.Itoa(r.Layer))
	}
	return b.String()
}

// String returns the notation string (alias for Notation).
func (r Rotation) String() string {
	return r.Notation()
}

// ParseRotation parses a single rotation in nxcube notation.
// The layer index is not checked against a cube size here; Dispatch does that.
func ParseRotation(s string) (Rotation, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Rotation{}, ErrInvalidNotation
	}

	axis, ok := ParseAxis(s[:1])
	if !ok {
		return Rotation{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	r := Rotation{Scope: ScopeCube, Axis: axis, Angle: 90}
	rest := s[1:]

	// Extract layer
	if at := strings.IndexByte(rest, '@'); at >= 0 {
		layer, err := strconv.Atoi(rest[at+1:])
		if err != nil || layer < 0 {
			return Rotation{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
		r.Scope = ScopeLayer
		r.Layer = layer
		rest = rest[:at]
	}

	// Extract turn
	if strings.HasSuffix(rest, "'") || strings.HasSuffix(rest, "`") {
		r.Backwards = true
		rest = rest[:len(rest)-1]
	}
	switch rest {
	case "":
	case "2":
		r.Angle = 180
	case "3":
		r.Angle = 270
	case "4":
		r.Angle = 360
	default:
		return Rotation{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return r, nil
}

// ParseRotations parses a space-separated sequence of rotations.
// Example: "x y'@0 z2@2"
func ParseRotations(s string) ([]Rotation, error) {
	parts := strings.Fields(s)
	rotations := make([]Rotation, 0, len(parts))

	for i, part := range parts {
		r, err := ParseRotation(part)
		if err != nil {
			return nil, fmt.Errorf("rotation %d: %w", i+1, err)
		}
		rotations = append(rotations, r)
	}

	return rotations, nil
}

// FormatRotations formats rotations as a space-separated notation string.
func FormatRotations(rotations []Rotation) string {
	if len(rotations) == 0 {
		return ""
	}

	parts := make([]string, len(rotations))
	for i, r := range rotations {
		parts[i] = r.Notation()
	}

	return strings.Join(parts, " ")
}
