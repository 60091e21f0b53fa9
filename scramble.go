package nxcube

import "math/rand"

// Scramble returns n random layer turns for a cube of the given size. Two
// consecutive turns never share both axis and layer, so no turn cancels or
// merges with the one before it.
func Scramble(rng *rand.Rand, size, n int) []Rotation {
	if size < 1 || n <= 0 {
		return nil
	}

	rotations := make([]Rotation, 0, n)
	var prev *Rotation
	for len(rotations) < n {
		r := Rotation{
			Scope: ScopeLayer,
			Axis:  Axes[rng.Intn(len(Axes))],
			Layer: rng.Intn(size),
			Angle: 90,
		}
		if prev != nil && prev.Axis == r.Axis && prev.Layer == r.Layer {
			continue
		}
		switch rng.Intn(3) {
		case 0:
			r.Angle = 180
		case 1:
			r.Backwards = true
		}
		rotations = append(rotations, r)
		prev = &rotations[len(rotations)-1]
	}
	return rotations
}
