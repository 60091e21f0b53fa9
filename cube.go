package nxcube

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
)

// Cube is the rotation engine behind an interactive NxNxN cube. It owns the
// sticker state and its batch, and allows a single rotation in flight at a
// time: a turn holds the guard from Begin until Turn.End.
//
// Create a Cube with New:
//
//	cube, err := nxcube.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cube.OnAfterRotate(func(ev nxcube.RotationEvent) {
//	    fmt.Println("Turned:", ev.Rotation.Notation())
//	})
//
//	err = cube.Rotate(ctx, nxcube.LayerRotation(nxcube.AxisX, 0, false))
type Cube struct {
	batch  *Batch
	state  *State
	config *config

	rotating atomic.Bool

	mu       sync.RWMutex
	onBefore []func(RotationEvent)
	onAfter  []func(RotationEvent)
	onSolved func()
}

// New creates a solved cube of the given size.
func New(size int, opts ...Option) (*Cube, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.speed <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSpeed, cfg.speed)
	}

	batch := NewBatch()
	state, err := NewState(batch, size)
	if err != nil {
		return nil, err
	}

	return &Cube{
		batch:  batch,
		state:  state,
		config: cfg,
	}, nil
}

// Size returns N.
func (c *Cube) Size() int {
	return c.state.size
}

// State returns the live sticker state. Writing to it directly bypasses the
// rotation guard.
func (c *Cube) State() *State {
	return c.state
}

// Batch returns the batch the sticker cells belong to.
func (c *Cube) Batch() *Batch {
	return c.batch
}

// Snapshot copies the current sticker labels.
func (c *Cube) Snapshot() Snapshot {
	return c.state.Snapshot()
}

// IsSolved returns true if every face shows a single label.
func (c *Cube) IsSolved() bool {
	return c.state.IsSolved()
}

// SetState overwrites every sticker with snap and flushes the changes.
// It fails with ErrRotationInProgress while a turn is in flight.
func (c *Cube) SetState(snap Snapshot) error {
	if !c.rotating.CompareAndSwap(false, true) {
		return ErrRotationInProgress
	}
	defer c.rotating.Store(false)

	if err := c.state.Restore(snap); err != nil {
		return err
	}
	c.batch.Flush()
	return nil
}

// Cell returns the sticker cell at (x, y) on face.
func (c *Cube) Cell(face Face, x, y int) *Cell[Face] {
	return c.state.Cell(face, x, y)
}

// Subscribe registers fn for the sticker at (x, y) on face and returns its
// current label. fn runs when a turn that changed the sticker is flushed.
func (c *Cube) Subscribe(face Face, x, y int, fn func(Face)) Face {
	return c.Cell(face, x, y).Subscribe(fn)
}

// IsRotating reports whether a turn holds the guard.
func (c *Cube) IsRotating() bool {
	return c.rotating.Load()
}

// Event callbacks

// OnBeforeRotate adds a callback that fires after the state changed and
// before the animation starts. Subscribers have not been notified yet.
func (c *Cube) OnBeforeRotate(cb func(RotationEvent)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onBefore = append(c.onBefore, cb)
}

// OnAfterRotate adds a callback that fires once the turn has been flushed.
func (c *Cube) OnAfterRotate(cb func(RotationEvent)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onAfter = append(c.onAfter, cb)
}

// OnSolved sets a callback that fires when a turn leaves a scrambled cube
// solved.
func (c *Cube) OnSolved(cb func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onSolved = cb
}

// Rotation

// Rotate runs a complete turn: Begin, the configured animator, End. The
// guard is released on every path. If the animator fails the new state is
// still flushed and the animator's error is returned.
func (c *Cube) Rotate(ctx context.Context, r Rotation) error {
	t, err := c.Begin(r)
	if err != nil {
		return err
	}
	defer t.End()

	if c.config.animator != nil {
		return c.config.animator.Animate(ctx, t.Event())
	}
	return nil
}

// Begin validates r, takes the guard and applies r to the state. The
// changes stay pending until the returned turn is ended.
func (c *Cube) Begin(r Rotation) (*Turn, error) {
	if err := r.Validate(c.state.size); err != nil {
		return nil, err
	}
	if !c.rotating.CompareAndSwap(false, true) {
		return nil, ErrRotationInProgress
	}
	return c.start(r, 0), nil
}

// start applies r with the guard already held. r is either validated or a
// zero-angle settle from a gesture.
func (c *Cube) start(r Rotation, from float64) *Turn {
	t := &Turn{
		cube:      c,
		event:     newRotationEvent(r, from, c.config.speed),
		wasSolved: c.state.IsSolved(),
	}
	apply(c.state, r.Normalize())

	c.mu.RLock()
	callbacks := slices.Clone(c.onBefore)
	c.mu.RUnlock()
	for _, cb := range callbacks {
		cb(t.event)
	}
	return t
}

func (c *Cube) tryAcquire() bool {
	return c.rotating.CompareAndSwap(false, true)
}

func (c *Cube) release() {
	c.rotating.Store(false)
}

// Turn is a rotation in flight. The state has already changed; End reveals
// it to subscribers and releases the guard.
type Turn struct {
	cube      *Cube
	event     RotationEvent
	wasSolved bool
	ended     bool
}

// Event returns the event describing the turn.
func (t *Turn) Event() RotationEvent {
	return t.event
}

// End flushes the pending sticker changes, fires the after-rotate callbacks
// and releases the guard. It returns the number of stickers notified.
// Calling End more than once has no effect.
func (t *Turn) End() int {
	if t.ended {
		return 0
	}
	t.ended = true
	c := t.cube
	defer c.release()

	notified := c.batch.Flush()

	c.mu.RLock()
	callbacks := slices.Clone(c.onAfter)
	solvedCallback := c.onSolved
	c.mu.RUnlock()

	for _, cb := range callbacks {
		cb(t.event)
	}
	if !t.wasSolved && solvedCallback != nil && c.state.IsSolved() {
		solvedCallback()
	}
	return notified
}
