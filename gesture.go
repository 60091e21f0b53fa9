package nxcube

import "math"

// GestureState is the phase of a pointer gesture.
type GestureState int

const (
	// GestureIdle waits for a pointer-down.
	GestureIdle GestureState = iota
	// GestureAxisUndetermined has grabbed the cube but the pointer has not
	// moved past the threshold yet.
	GestureAxisUndetermined
	// GestureAxisLocked tracks the live angle about the chosen axis.
	GestureAxisLocked
	// GestureCommitting has dispatched the turn and waits for Finish.
	GestureCommitting
)

func (s GestureState) String() string {
	switch s {
	case GestureIdle:
		return "idle"
	case GestureAxisUndetermined:
		return "axis_undetermined"
	case GestureAxisLocked:
		return "axis_locked"
	case GestureCommitting:
		return "committing"
	default:
		return "unknown"
	}
}

// Point is a pointer position in the presentation's units (pixels, cells).
type Point struct {
	X, Y float64
}

// Bounds is the size of the area the cube is drawn in, in the same units.
type Bounds struct {
	Width, Height float64
}

// Target is the sticker under a pointer-down. A nil *Target means the
// pointer went down on the background around the cube.
type Target struct {
	Face Face
	X, Y int
}

// GestureConfig tunes how drags are read.
type GestureConfig struct {
	// Threshold is how far the pointer must travel on either screen axis
	// before the rotation axis is chosen.
	Threshold float64
	// Sensitivity is the pointer travel per degree of rotation.
	Sensitivity float64
	// TopTilt is the angle in radians at which the top face is seen. Drags
	// that start on the Up face are projected onto its skewed axes.
	TopTilt float64
}

// DefaultGestureConfig matches a pixel-based isometric view.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		Threshold:   10,
		Sensitivity: 3,
		TopTilt:     math.Pi / 6,
	}
}

type grab int

const (
	grabCube grab = iota // background: whole cube
	grabSide             // Front or Left sticker
	grabTop              // Up sticker
)

// Gesture turns one pointer drag at a time into a rotation of its cube.
//
// A gesture holds the cube's rotation guard from Down until Finish (or
// Cancel), so programmatic rotations are refused while a drag is active and
// drags are ignored while a rotation is running.
type Gesture struct {
	cube *Cube
	cfg  GestureConfig

	state  GestureState
	grab   grab
	target Target
	cubie  Cubie
	origin Point
	bounds Bounds

	// Whole-cube drags: horizontal moves turn about y, flipped for grabs in
	// the upper half; vertical moves turn about x or z by side.
	vertical   Axis
	multiplier float64

	axis  Axis
	layer int
	angle float64
	turn  *Turn
}

// NewGesture creates an idle gesture recognizer for cube.
func NewGesture(cube *Cube, cfg GestureConfig) *Gesture {
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultGestureConfig().Threshold
	}
	if cfg.Sensitivity <= 0 {
		cfg.Sensitivity = DefaultGestureConfig().Sensitivity
	}
	return &Gesture{cube: cube, cfg: cfg}
}

// State returns the current phase.
func (g *Gesture) State() GestureState {
	return g.state
}

// Angle returns the live drag angle in degrees.
func (g *Gesture) Angle() float64 {
	return g.angle
}

// Axis returns the locked axis; ok is false until the axis is chosen.
func (g *Gesture) Axis() (axis Axis, ok bool) {
	if g.state != GestureAxisLocked && g.state != GestureCommitting {
		return 0, false
	}
	return g.axis, true
}

// Preview returns the scope, axis and layer being dragged, for drawing the
// live angle. ok is false until the axis is locked.
func (g *Gesture) Preview() (r Rotation, angle float64, ok bool) {
	if g.state != GestureAxisLocked {
		return Rotation{}, 0, false
	}
	return g.rotation(0), g.angle, true
}

// Down starts a gesture. It returns false, leaving the gesture idle, when a
// rotation is already in flight, when another gesture is active, or when
// the target is a sticker that cannot be grabbed.
func (g *Gesture) Down(p Point, bounds Bounds, target *Target) bool {
	if g.state != GestureIdle {
		return false
	}

	var kind grab
	var cubie Cubie
	if target == nil {
		kind = grabCube
	} else {
		n := g.cube.Size()
		if target.X < 0 || target.X >= n || target.Y < 0 || target.Y >= n {
			return false
		}
		switch target.Face {
		case Front, Left:
			kind = grabSide
		case Up:
			kind = grabTop
		default:
			return false
		}
		cubie = StickerPosition(n, target.Face, target.X, target.Y)
	}

	if !g.cube.tryAcquire() {
		return false
	}

	g.state = GestureAxisUndetermined
	g.grab = kind
	g.cubie = cubie
	if target != nil {
		g.target = *target
	}
	g.origin = p
	g.bounds = bounds
	g.angle = 0
	g.layer = 0

	g.vertical = AxisZ
	if p.X > bounds.Width/2 {
		g.vertical = AxisX
	}
	g.multiplier = -1
	if p.Y > bounds.Height/2 {
		g.multiplier = 1
	}
	return true
}

// Move feeds a pointer position and returns the live angle. The first move
// past the threshold locks the axis; later moves update the angle, clamped
// to [-360, 360].
func (g *Gesture) Move(p Point) float64 {
	switch g.state {
	case GestureAxisUndetermined:
		h, v := g.displacement(p)
		if math.Abs(h) > g.cfg.Threshold || math.Abs(v) > g.cfg.Threshold {
			g.lock(math.Abs(h) > math.Abs(v))
		}
	case GestureAxisLocked:
		g.angle = clampAngle(g.liveAngle(p))
	}
	return g.angle
}

// displacement returns the pointer travel from the origin along the two
// directions the grabbed surface responds to.
func (g *Gesture) displacement(p Point) (h, v float64) {
	dx := p.X - g.origin.X
	dy := p.Y - g.origin.Y
	if g.grab != grabTop {
		return dx, dy
	}
	t := g.cfg.TopTilt
	h = math.Cos(t)*dx - math.Sin(t)*dy
	v = math.Sin(2*t)*dx + math.Cos(2*t)*dy
	return h, v
}

func (g *Gesture) lock(horizontal bool) {
	switch g.grab {
	case grabCube:
		if horizontal {
			g.axis = AxisY
		} else {
			g.axis = g.vertical
		}
	case grabSide:
		switch {
		case horizontal:
			g.axis = AxisY
		case g.target.Face == Front:
			g.axis = AxisX
		default:
			g.axis = AxisZ
		}
	case grabTop:
		if horizontal {
			g.axis = AxisZ
		} else {
			g.axis = AxisX
		}
	}
	if g.grab != grabCube {
		g.layer = g.cubie.On(g.axis)
	}
	g.state = GestureAxisLocked
}

func (g *Gesture) liveAngle(p Point) float64 {
	s := g.cfg.Sensitivity
	switch g.grab {
	case grabTop:
		h, v := g.displacement(p)
		if g.axis == AxisZ {
			return h / s
		}
		return -v / s
	case grabCube:
		if g.axis == AxisY {
			return (p.X - g.origin.X) / s * g.multiplier
		}
		return (g.origin.Y - p.Y) / s
	default:
		if g.axis == AxisY {
			return (p.X - g.origin.X) / s
		}
		return (g.origin.Y - p.Y) / s
	}
}

func clampAngle(a float64) float64 {
	return math.Min(math.Max(a, -360), 360)
}

func (g *Gesture) rotation(angle int) Rotation {
	r := Rotation{Axis: g.axis, Angle: angle}
	if angle < 0 {
		r.Angle = -angle
		r.Backwards = true
	}
	if g.grab == grabCube {
		r.Scope = ScopeCube
	} else {
		r.Scope = ScopeLayer
		r.Layer = g.layer
	}
	return r
}

// Up ends the drag. The live angle is rounded to the nearest multiple of 90
// degrees and the resulting turn begins on the cube; the returned turn's
// event tells the presentation where to animate from and to. A drag that
// rounds to 0 still returns a turn, with a zero angle and no state change,
// so the presentation can settle back to rest.
//
// A tap that never locked an axis returns nil: the guard is released and
// no events fire.
func (g *Gesture) Up() *Turn {
	switch g.state {
	case GestureAxisUndetermined:
		g.cube.release()
		g.reset()
		return nil
	case GestureAxisLocked:
		target := int(math.Round(g.angle/90)) * 90
		g.turn = g.cube.start(g.rotation(target), g.angle)
		g.state = GestureCommitting
		return g.turn
	default:
		return nil
	}
}

// Finish ends the committed turn once the presentation has played it:
// the state is flushed and the guard released. It returns the number of
// stickers notified.
func (g *Gesture) Finish() int {
	if g.state != GestureCommitting {
		return 0
	}
	n := g.turn.End()
	g.reset()
	return n
}

// Cancel abandons a drag before it is committed, releasing the guard
// without touching the state. A committed turn is finished instead.
func (g *Gesture) Cancel() {
	switch g.state {
	case GestureAxisUndetermined, GestureAxisLocked:
		g.cube.release()
		g.reset()
	case GestureCommitting:
		g.Finish()
	}
}

func (g *Gesture) reset() {
	g.state = GestureIdle
	g.turn = nil
	g.angle = 0
	g.target = Target{}
}
