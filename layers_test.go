package nxcube

import (
	"math/rand"
	"testing"
)

var steps = []Step{StepQuarter, StepQuarterBackwards, StepHalf}

func newTestState(t *testing.T, n int) *State {
	t.Helper()
	s, err := NewState(nil, n)
	if err != nil {
		t.Fatalf("NewState(%d): %v", n, err)
	}
	return s
}

// scrambledState returns a state with every sticker moved away from home
// by a fixed sequence, so face corrections are visible.
func scrambledState(t *testing.T, n int) *State {
	t.Helper()
	s := newTestState(t, n)
	for _, r := range Scramble(rand.New(rand.NewSource(int64(n))), n, 30) {
		if err := Dispatch(s, r); err != nil {
			t.Fatalf("Dispatch(%s): %v", r, err)
		}
	}
	s.Batch().Flush()
	return s
}

func TestQuarterTurnX_Layer0(t *testing.T) {
	s := newTestState(t, 2)
	RotateLayer(s, AxisX, 0, StepQuarter)

	for y := 0; y < 2; y++ {
		checks := []struct {
			face Face
			x    int
			want Face
		}{
			{Up, 0, Front},
			{Up, 1, Up},
			{Front, 0, Down},
			{Down, 0, Back},
			{Back, 0, Up},
			{Back, 1, Back},
		}
		for _, c := range checks {
			if got := s.Cell(c.face, c.x, y).Value(); got != c.want {
				t.Errorf("%s[%d][%d] = %s, want %s", c.face, c.x, y, got, c.want)
			}
		}
	}
	if !faceUniform(s.Snapshot()[Right]) {
		t.Error("x@0 should not touch the right face")
	}
}

func TestQuarterTurnY_Layer0(t *testing.T) {
	s := newTestState(t, 3)
	RotateLayer(s, AxisY, 0, StepQuarter)

	for i := 0; i < 3; i++ {
		if got := s.Cell(Front, i, 0).Value(); got != Left {
			t.Errorf("Front[%d][0] = %s, want L", i, got)
		}
		if got := s.Cell(Left, i, 0).Value(); got != Back {
			t.Errorf("Left[%d][0] = %s, want B", i, got)
		}
		if got := s.Cell(Back, i, 2).Value(); got != Right {
			t.Errorf("Back[%d][2] = %s, want R", i, got)
		}
		if got := s.Cell(Right, i, 0).Value(); got != Front {
			t.Errorf("Right[%d][0] = %s, want F", i, got)
		}
		if got := s.Cell(Front, i, 1).Value(); got != Front {
			t.Errorf("Front[%d][1] = %s, want F", i, got)
		}
	}
}

func TestQuarterTurnZ_Layer0(t *testing.T) {
	s := newTestState(t, 3)
	RotateLayer(s, AxisZ, 0, StepQuarter)

	for i := 0; i < 3; i++ {
		if got := s.Cell(Up, i, 0).Value(); got != Left {
			t.Errorf("Up[%d][0] = %s, want L", i, got)
		}
		if got := s.Cell(Left, 0, i).Value(); got != Down {
			t.Errorf("Left[0][%d] = %s, want D", i, got)
		}
		if got := s.Cell(Down, i, 2).Value(); got != Right {
			t.Errorf("Down[%d][2] = %s, want R", i, got)
		}
		if got := s.Cell(Right, 2, i).Value(); got != Up {
			t.Errorf("Right[2][%d] = %s, want U", i, got)
		}
	}
}

func TestNearFaceTurnsClockwise(t *testing.T) {
	s := newTestState(t, 2)
	snap := SolvedSnapshot(2)
	snap[Left][0][0] = Up
	snap[Left][1][0] = Down
	snap[Left][0][1] = Front
	snap[Left][1][1] = Back
	if err := s.Restore(snap); err != nil {
		t.Fatal(err)
	}

	RotateLayer(s, AxisX, 0, StepQuarter)

	want := map[[2]int]Face{
		{0, 0}: Down,
		{1, 0}: Back,
		{0, 1}: Up,
		{1, 1}: Front,
	}
	for pos, label := range want {
		if got := s.Cell(Left, pos[0], pos[1]).Value(); got != label {
			t.Errorf("Left[%d][%d] = %s, want %s", pos[0], pos[1], got, label)
			t.Log(s.String())
		}
	}
}

func TestFarFaceTurnsAgainstNear(t *testing.T) {
	// A forward turn of the far layer rotates the far face by -90.
	s := newTestState(t, 2)
	snap := SolvedSnapshot(2)
	snap[Right][0][0] = Up
	snap[Right][1][0] = Down
	snap[Right][0][1] = Front
	snap[Right][1][1] = Back
	if err := s.Restore(snap); err != nil {
		t.Fatal(err)
	}

	RotateLayer(s, AxisX, 1, StepQuarter)

	// new[x][y] = old[y][n-1-x]
	want := map[[2]int]Face{
		{0, 0}: Front,
		{1, 0}: Up,
		{0, 1}: Back,
		{1, 1}: Down,
	}
	for pos, label := range want {
		if got := s.Cell(Right, pos[0], pos[1]).Value(); got != label {
			t.Errorf("Right[%d][%d] = %s, want %s", pos[0], pos[1], got, label)
		}
	}
}

func TestHalfTurnSwapsOpposites_X(t *testing.T) {
	s := newTestState(t, 3)
	RotateLayer(s, AxisX, 1, StepHalf)

	opposite := map[Face]Face{Up: Down, Down: Up, Front: Back, Back: Front}
	for face, want := range opposite {
		for i := 0; i < 3; i++ {
			if got := s.Cell(face, 1, i).Value(); got != want {
				t.Errorf("%s[1][%d] = %s, want %s", face, i, got, want)
			}
		}
	}
}

func TestLayerTurnProperties(t *testing.T) {
	for n := 1; n <= 5; n++ {
		base := scrambledState(t, n).Snapshot()
		for _, axis := range Axes {
			for layer := 0; layer < n; layer++ {
				s := newTestState(t, n)
				if err := s.Restore(base); err != nil {
					t.Fatal(err)
				}

				for i := 0; i < 4; i++ {
					RotateLayer(s, axis, layer, StepQuarter)
				}
				if !s.Snapshot().Equal(base) {
					t.Errorf("n=%d %s@%d x4 should be identity", n, axis, layer)
				}

				RotateLayer(s, axis, layer, StepQuarter)
				RotateLayer(s, axis, layer, StepQuarterBackwards)
				if !s.Snapshot().Equal(base) {
					t.Errorf("n=%d %s@%d then %s'@%d should be identity", n, axis, layer, axis, layer)
				}

				RotateLayer(s, axis, layer, StepHalf)
				RotateLayer(s, axis, layer, StepHalf)
				if !s.Snapshot().Equal(base) {
					t.Errorf("n=%d %s2@%d x2 should be identity", n, axis, layer)
				}

				RotateLayer(s, axis, layer, StepHalf)
				half := s.Snapshot()
				if err := s.Restore(base); err != nil {
					t.Fatal(err)
				}
				RotateLayer(s, axis, layer, StepQuarter)
				RotateLayer(s, axis, layer, StepQuarter)
				if !s.Snapshot().Equal(half) {
					t.Errorf("n=%d %s2@%d should equal two quarter turns", n, axis, layer)
				}
			}
		}
	}
}

func TestTurnsConserveLabels(t *testing.T) {
	for n := 1; n <= 5; n++ {
		s := scrambledState(t, n)
		for _, axis := range Axes {
			for _, step := range steps {
				for layer := 0; layer < n; layer++ {
					RotateLayer(s, axis, layer, step)
				}
				RotateCube(s, axis, step)
			}
		}
		for face, count := range s.Snapshot().Labels() {
			if count != n*n {
				t.Errorf("n=%d: label %s appears %d times, want %d", n, face, count, n*n)
			}
		}
	}
}

func TestCubeTurnEqualsAllLayers(t *testing.T) {
	for n := 1; n <= 5; n++ {
		base := scrambledState(t, n).Snapshot()
		for _, axis := range Axes {
			for _, step := range steps {
				whole := newTestState(t, n)
				layers := newTestState(t, n)
				whole.Restore(base)
				layers.Restore(base)

				RotateCube(whole, axis, step)
				for layer := 0; layer < n; layer++ {
					RotateLayer(layers, axis, layer, step)
				}
				if n > 1 && !whole.Equal(layers) {
					t.Errorf("n=%d: cube %s %s differs from turning every layer", n, axis, step)
					t.Log(whole.String())
					t.Log(layers.String())
				}
			}
		}
	}
}

func TestCubeTurnKeepsSolved(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for _, axis := range Axes {
			for _, step := range steps {
				s := newTestState(t, n)
				RotateCube(s, axis, step)
				if !s.IsSolved() {
					t.Errorf("n=%d: cube %s %s should leave a solved cube solved", n, axis, step)
				}
			}
		}
	}
}

func TestLayerTurnWritesAreBatched(t *testing.T) {
	s := newTestState(t, 3)
	calls := 0
	s.Cell(Up, 0, 0).Subscribe(func(Face) { calls++ })

	RotateLayer(s, AxisX, 0, StepQuarter)
	if calls != 0 {
		t.Errorf("subscriber called %d times before flush", calls)
	}
	if s.Batch().Pending() == 0 {
		t.Error("turn should leave pending cells")
	}

	s.Batch().Flush()
	if calls != 1 {
		t.Errorf("subscriber called %d times after flush, want 1", calls)
	}
}
