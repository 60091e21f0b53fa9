package nxcube

import "context"

// Tracker wraps a Cube and records every completed turn, whether it came
// from Apply or from a gesture, so it can be undone.
type Tracker struct {
	cube             *Cube
	history          []Rotation
	highest          int // most uniform faces seen; never goes backwards
	skipNext         bool
	progressCallback func(Progress)
}

// NewTracker starts tracking cube.
func NewTracker(cube *Cube) *Tracker {
	t := &Tracker{
		cube:    cube,
		highest: cube.Progress().UniformFaces,
	}
	cube.OnAfterRotate(t.record)
	return t
}

// SetProgressCallback sets a callback that fires when more faces are
// uniform than ever before.
func (t *Tracker) SetProgressCallback(cb func(Progress)) {
	t.progressCallback = cb
}

func (t *Tracker) record(ev RotationEvent) {
	if t.skipNext {
		t.skipNext = false
	} else if !ev.IsSettle() && ev.Rotation.Angle != 360 {
		t.history = append(t.history, ev.Rotation)
	}
	t.checkProgress()
}

// checkProgress fires the callback on a new high.
func (t *Tracker) checkProgress() {
	p := t.cube.Progress()
	if p.UniformFaces > t.highest {
		t.highest = p.UniformFaces
		if t.progressCallback != nil {
			t.progressCallback(p)
		}
	}
}

// Apply rotates the cube through rotations, stopping at the first error.
func (t *Tracker) Apply(ctx context.Context, rotations ...Rotation) error {
	for _, r := range rotations {
		if err := t.cube.Rotate(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

// Undo reverts the most recent turn. ok is false when there is nothing to
// undo.
func (t *Tracker) Undo(ctx context.Context) (undone Rotation, ok bool, err error) {
	if len(t.history) == 0 {
		return Rotation{}, false, nil
	}
	last := t.history[len(t.history)-1]

	t.skipNext = true
	if err := t.cube.Rotate(ctx, last.Inverse()); err != nil {
		// The turn was refused before it started, or its animation failed
		// after the state changed; only the former keeps the history entry.
		if t.skipNext {
			t.skipNext = false
			return Rotation{}, false, err
		}
		t.history = t.history[:len(t.history)-1]
		return last, true, err
	}
	t.history = t.history[:len(t.history)-1]
	return last, true, nil
}

// Reset restores a solved cube and clears the history.
func (t *Tracker) Reset() error {
	if err := t.cube.SetState(SolvedSnapshot(t.cube.Size())); err != nil {
		return err
	}
	t.history = nil
	t.highest = ProgressSolved
	return nil
}

// History returns the recorded turns, oldest first.
func (t *Tracker) History() []Rotation {
	return append([]Rotation(nil), t.history...)
}

// Progress returns the current progress.
func (t *Tracker) Progress() Progress {
	return t.cube.Progress()
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.State().String()
}
