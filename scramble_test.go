package nxcube

import (
	"math/rand"
	"testing"
)

func TestScramble(t *testing.T) {
	for n := 1; n <= 5; n++ {
		rotations := Scramble(rand.New(rand.NewSource(42)), n, 50)
		if len(rotations) != 50 {
			t.Fatalf("n=%d: got %d rotations, want 50", n, len(rotations))
		}
		for i, r := range rotations {
			if err := r.Validate(n); err != nil {
				t.Errorf("n=%d: rotation %d (%s) invalid: %v", n, i, r, err)
			}
			if r.Scope != ScopeLayer || (r.Angle != 90 && r.Angle != 180) {
				t.Errorf("n=%d: rotation %d (%s) should be a layer quarter or half turn", n, i, r)
			}
			if i > 0 && rotations[i-1].Axis == r.Axis && rotations[i-1].Layer == r.Layer {
				t.Errorf("n=%d: rotations %d and %d turn the same layer", n, i-1, i)
			}
		}
	}
}

func TestScrambleDeterministic(t *testing.T) {
	a := Scramble(rand.New(rand.NewSource(3)), 4, 20)
	b := Scramble(rand.New(rand.NewSource(3)), 4, 20)
	if FormatRotations(a) != FormatRotations(b) {
		t.Error("same seed should give the same scramble")
	}
}

func TestScrambleEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if Scramble(rng, 3, 0) != nil || Scramble(rng, 0, 10) != nil {
		t.Error("empty scrambles should be nil")
	}
}
