package nxcube

import (
	"context"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator plays a turn between the state change and the flush. Animate
// blocks until the animation is over or ctx is done.
type Animator interface {
	Animate(ctx context.Context, ev RotationEvent) error
}

// AnimatorFunc adapts a function to the Animator interface.
type AnimatorFunc func(ctx context.Context, ev RotationEvent) error

// Animate calls f.
func (f AnimatorFunc) Animate(ctx context.Context, ev RotationEvent) error {
	return f(ctx, ev)
}

// Spin interpolates the angle of one turn from FromAngle to ToAngle over the
// event's Duration. Callers advance it with Update each frame.
type Spin struct {
	tween *gween.Tween
	to    float64
	done  bool
}

// NewSpin creates a spin for ev. A nil easing function means linear.
func NewSpin(ev RotationEvent, fn ease.TweenFunc) *Spin {
	if fn == nil {
		fn = ease.Linear
	}
	s := &Spin{to: ev.ToAngle}
	if ev.Duration <= 0 {
		s.done = true
		return s
	}
	s.tween = gween.New(float32(ev.FromAngle), float32(ev.ToAngle), float32(ev.Duration.Seconds()), fn)
	return s
}

// Update advances the spin by dt and returns the current angle. Once done,
// the angle is exactly the target.
func (s *Spin) Update(dt time.Duration) (angle float64, done bool) {
	if s.done {
		return s.to, true
	}
	v, finished := s.tween.Update(float32(dt.Seconds()))
	if finished {
		s.done = true
		return s.to, true
	}
	return float64(v), false
}

// Done reports whether the spin reached its target.
func (s *Spin) Done() bool {
	return s.done
}

// TweenAnimator plays turns on a ticker, reporting every frame's angle to
// OnFrame.
type TweenAnimator struct {
	FrameInterval time.Duration // defaults to 60 frames per second
	Easing        ease.TweenFunc
	OnFrame       func(ev RotationEvent, angle float64)
}

// Animate drives a Spin for ev until it finishes or ctx is done.
func (a *TweenAnimator) Animate(ctx context.Context, ev RotationEvent) error {
	interval := a.FrameInterval
	if interval <= 0 {
		interval = time.Second / 60
	}

	spin := NewSpin(ev, a.Easing)
	if spin.Done() {
		a.frame(ev, ev.ToAngle)
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			angle, done := spin.Update(now.Sub(last))
			last = now
			a.frame(ev, angle)
			if done {
				return nil
			}
		}
	}
}

func (a *TweenAnimator) frame(ev RotationEvent, angle float64) {
	if a.OnFrame != nil {
		a.OnFrame(ev, angle)
	}
}
