package cli

import (
	"strings"
	"testing"

	"github.com/SeamusWaldron/nxcube"
)

func TestNetLayoutHit(t *testing.T) {
	l := netLayout{Size: 3, Left: 2, Top: 3}
	// Faces are 3*2+1 = 7 columns apart.
	tests := []struct {
		col, row int
		want     *nxcube.Target
	}{
		{9, 3, &nxcube.Target{Face: nxcube.Up, X: 0, Y: 0}},
		{14, 5, &nxcube.Target{Face: nxcube.Up, X: 2, Y: 2}},
		{2, 6, &nxcube.Target{Face: nxcube.Left, X: 0, Y: 0}},
		{3, 6, &nxcube.Target{Face: nxcube.Left, X: 0, Y: 0}},
		{4, 7, &nxcube.Target{Face: nxcube.Left, X: 1, Y: 1}},
		{11, 8, &nxcube.Target{Face: nxcube.Front, X: 1, Y: 2}},
		{16, 6, &nxcube.Target{Face: nxcube.Right, X: 0, Y: 0}},
		{27, 8, &nxcube.Target{Face: nxcube.Back, X: 2, Y: 2}},
		{9, 11, &nxcube.Target{Face: nxcube.Down, X: 0, Y: 2}},
		{8, 6, nil},  // gap between Left and Front
		{2, 3, nil},  // empty corner of the net
		{0, 0, nil},  // title area
		{40, 7, nil}, // right of the net
		{9, 12, nil}, // below the net
	}

	for _, tt := range tests {
		got := l.Hit(tt.col, tt.row)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("Hit(%d, %d) = %+v, want background", tt.col, tt.row, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Errorf("Hit(%d, %d) = %v, want %+v", tt.col, tt.row, got, *tt.want)
		}
	}
}

func TestNetLayoutGeometry(t *testing.T) {
	l := netLayout{Size: 2, Left: 4, Top: 1}
	if l.Width() != 4*2*2+3 || l.Height() != 6 {
		t.Errorf("size = %dx%d", l.Width(), l.Height())
	}

	p := l.Point(8, 3)
	if p.X != 2 || p.Y != 2 {
		t.Errorf("Point(8, 3) = %+v, want {2 2}", p)
	}
	b := l.Bounds()
	if b.Width != 9.5 || b.Height != 6 {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestRenderNet(t *testing.T) {
	l := netLayout{Size: 2}
	out := renderNet(l, nxcube.SolvedSnapshot(2), nil)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != l.Height() {
		t.Fatalf("rendered %d lines, want %d", len(lines), l.Height())
	}
	if got := strings.Count(out, "██"); got != 6*4 {
		t.Errorf("rendered %d stickers, want 24", got)
	}
}

func TestLayerHighlight(t *testing.T) {
	hl := layerHighlight(3, nxcube.LayerRotation(nxcube.AxisY, 0, false))
	if !hl(nxcube.Front, 1, 0) || hl(nxcube.Front, 1, 1) {
		t.Error("y@0 should highlight the top row of the front face only")
	}
	if !hl(nxcube.Up, 2, 2) {
		t.Error("y@0 should highlight the whole up face")
	}

	all := layerHighlight(3, nxcube.Z)
	if !all(nxcube.Down, 0, 0) {
		t.Error("whole-cube turns highlight every sticker")
	}
}
