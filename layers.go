package nxcube

// Step is the amount a layer or the whole cube turns in one operator call.
type Step int

const (
	// StepQuarter turns 90 degrees forward.
	StepQuarter Step = iota
	// StepQuarterBackwards turns 90 degrees backwards.
	StepQuarterBackwards
	// StepHalf turns 180 degrees.
	StepHalf
)

func (s Step) String() string {
	switch s {
	case StepQuarter:
		return "90"
	case StepQuarterBackwards:
		return "-90"
	case StepHalf:
		return "180"
	default:
		return "?"
	}
}

// offset is how many slots along the belt the source sticker sits.
func (s Step) offset() int {
	switch s {
	case StepQuarterBackwards:
		return 3
	case StepHalf:
		return 2
	default:
		return 1
	}
}

// beltSlot is one face of a belt and where step i of a layer lands on it.
type beltSlot struct {
	face Face
	at   func(n, layer, i int) (x, y int)
}

// belt describes the four faces a turn about one axis cycles through and
// the two end faces perpendicular to it. A forward quarter turn moves every
// slot's stickers one slot back: slots[k] takes slots[k+1].
type belt struct {
	slots [4]beltSlot
	near  Face // turned with layer 0
	far   Face // turned with layer N-1
}

var belts = [3]belt{
	AxisX: {
		slots: [4]beltSlot{
			{Up, func(n, layer, i int) (int, int) { return layer, i }},
			{Front, func(n, layer, i int) (int, int) { return layer, i }},
			{Down, func(n, layer, i int) (int, int) { return layer, i }},
			{Back, func(n, layer, i int) (int, int) { return layer, i }},
		},
		near: Left,
		far:  Right,
	},
	AxisY: {
		slots: [4]beltSlot{
			{Front, func(n, layer, i int) (int, int) { return i, layer }},
			{Left, func(n, layer, i int) (int, int) { return i, layer }},
			{Back, func(n, layer, i int) (int, int) { return n - 1 - i, n - 1 - layer }},
			{Right, func(n, layer, i int) (int, int) { return i, layer }},
		},
		near: Up,
		far:  Down,
	},
	AxisZ: {
		slots: [4]beltSlot{
			{Up, func(n, layer, i int) (int, int) { return n - 1 - i, layer }},
			{Left, func(n, layer, i int) (int, int) { return layer, i }},
			{Down, func(n, layer, i int) (int, int) { return i, n - 1 - layer }},
			{Right, func(n, layer, i int) (int, int) { return n - 1 - layer, n - 1 - i }},
		},
		near: Back,
		far:  Front,
	},
}

// cycle writes one layer of the belt from the snapshot.
func (b *belt) cycle(s *State, old Snapshot, layer int, step Step) {
	n := s.size
	off := step.offset()
	for i := 0; i < n; i++ {
		for k := 0; k < 4; k++ {
			dst := b.slots[k]
			src := b.slots[(k+off)%4]
			dx, dy := dst.at(n, layer, i)
			sx, sy := src.at(n, layer, i)
			s.faces[dst.face][dx][dy].Set(old[src.face][sx][sy])
		}
	}
}

// turnNear corrects the layer-0 end face; turnFar the layer N-1 one. The
// far face is seen from the opposite side, so quarter turns are mirrored.
func (b *belt) turnNear(s *State, old Snapshot, step Step) {
	switch step {
	case StepQuarter:
		rotateFace90(s, old, b.near)
	case StepQuarterBackwards:
		rotateFaceNegative90(s, old, b.near)
	case StepHalf:
		rotateFace180(s, old, b.near)
	}
}

func (b *belt) turnFar(s *State, old Snapshot, step Step) {
	switch step {
	case StepQuarter:
		rotateFaceNegative90(s, old, b.far)
	case StepQuarterBackwards:
		rotateFace90(s, old, b.far)
	case StepHalf:
		rotateFace180(s, old, b.far)
	}
}

// RotateLayer turns one layer about axis. The layer must lie in [0, N);
// callers that take untrusted input go through Dispatch, which validates.
func RotateLayer(s *State, axis Axis, layer int, step Step) {
	b := &belts[axis]
	old := s.Snapshot()
	b.cycle(s, old, layer, step)
	if layer == 0 {
		b.turnNear(s, old, step)
	} else if layer == s.size-1 {
		b.turnFar(s, old, step)
	}
}

// RotateCube turns the whole cube about axis: every layer's belt plus both
// end faces.
func RotateCube(s *State, axis Axis, step Step) {
	b := &belts[axis]
	old := s.Snapshot()
	for layer := 0; layer < s.size; layer++ {
		b.cycle(s, old, layer, step)
	}
	b.turnNear(s, old, step)
	b.turnFar(s, old, step)
}
