package nxcube

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// RotationEvent describes one turn to the presentation layer. It is sent
// before the animation starts and again after the new state is flushed.
type RotationEvent struct {
	ID       uuid.UUID
	Rotation Rotation

	// FromAngle is where the animation starts: 0 for programmatic turns,
	// the live drag angle for gestures.
	FromAngle float64
	// ToAngle is the signed target angle in degrees.
	ToAngle float64

	Speed    time.Duration // per quarter turn
	Duration time.Duration // estimated animation time
}

func newRotationEvent(r Rotation, from float64, speed time.Duration) RotationEvent {
	if r.Speed > 0 {
		speed = r.Speed
	}
	to := float64(r.SignedAngle())
	return RotationEvent{
		ID:        uuid.New(),
		Rotation:  r,
		FromAngle: from,
		ToAngle:   to,
		Speed:     speed,
		Duration:  time.Duration(float64(speed) * math.Abs(to-from) / 90),
	}
}

// IsSettle reports whether the event only animates a drag back to rest
// without changing the state.
func (e RotationEvent) IsSettle() bool {
	return e.Rotation.Angle == 0
}
