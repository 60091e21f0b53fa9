package nxcube

import "time"

// DefaultSpeed is how long a quarter turn is expected to animate.
const DefaultSpeed = 500 * time.Millisecond

// Option configures Cube behavior.
type Option func(*config)

type config struct {
	speed    time.Duration
	animator Animator
}

func defaultConfig() *config {
	return &config{
		speed: DefaultSpeed,
	}
}

// WithSpeed sets the duration of a quarter turn. Half turns take twice as
// long. New fails with ErrInvalidSpeed when d <= 0.
func WithSpeed(d time.Duration) Option {
	return func(c *config) {
		c.speed = d
	}
}

// WithAnimator sets the animator Rotate waits on between changing the state
// and flushing it to subscribers. Without one, Rotate flushes immediately.
func WithAnimator(a Animator) Option {
	return func(c *config) {
		c.animator = a
	}
}
