package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/nxcube"
)

// netLayout places the six faces of the cube as an unfolded net:
//
//	  U
//	L F R B
//	  D
//
// Each sticker is stickerWidth terminal columns wide and one row tall, and
// neighbouring faces are separated by faceGap columns. Left and Top offset
// the net from the top-left corner of the terminal.
type netLayout struct {
	Size      int
	Left, Top int
}

const (
	stickerWidth = 2
	faceGap      = 1
)

// netSlots gives the column and row of each face in the net, in faces.
var netSlots = map[nxcube.Face][2]int{
	nxcube.Up:    {1, 0},
	nxcube.Left:  {0, 1},
	nxcube.Front: {1, 1},
	nxcube.Right: {2, 1},
	nxcube.Back:  {3, 1},
	nxcube.Down:  {1, 2},
}

// faceOrigin returns the terminal column and row of a face's top-left
// sticker.
func (l netLayout) faceOrigin(face nxcube.Face) (col, row int) {
	slot := netSlots[face]
	col = l.Left + slot[0]*(l.Size*stickerWidth+faceGap)
	row = l.Top + slot[1]*l.Size
	return col, row
}

// Width is the width of the net in columns.
func (l netLayout) Width() int {
	return 4*l.Size*stickerWidth + 3*faceGap
}

// Height is the height of the net in rows.
func (l netLayout) Height() int {
	return 3 * l.Size
}

// Hit returns the sticker at a terminal cell, or nil for the background.
func (l netLayout) Hit(col, row int) *nxcube.Target {
	for _, face := range nxcube.Faces {
		fc, fr := l.faceOrigin(face)
		if col < fc || row < fr {
			continue
		}
		x := (col - fc) / stickerWidth
		y := row - fr
		if x < l.Size && y < l.Size {
			return &nxcube.Target{Face: face, X: x, Y: y}
		}
	}
	return nil
}

// Point converts a terminal cell to gesture coordinates, measured in
// stickers from the net's top-left corner.
func (l netLayout) Point(col, row int) nxcube.Point {
	return nxcube.Point{
		X: float64(col-l.Left) / stickerWidth,
		Y: float64(row - l.Top),
	}
}

// Bounds returns the net size in gesture coordinates.
func (l netLayout) Bounds() nxcube.Bounds {
	return nxcube.Bounds{
		Width:  float64(l.Width()) / stickerWidth,
		Height: float64(l.Height()),
	}
}

// Sticker colours, standard scheme.
var stickerColors = map[nxcube.Face]lipgloss.Color{
	nxcube.Up:    lipgloss.Color("15"),  // white
	nxcube.Down:  lipgloss.Color("11"),  // yellow
	nxcube.Left:  lipgloss.Color("208"), // orange
	nxcube.Right: lipgloss.Color("196"), // red
	nxcube.Front: lipgloss.Color("40"),  // green
	nxcube.Back:  lipgloss.Color("27"),  // blue
}

func stickerStyle(label nxcube.Face, highlight bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(stickerColors[label])
	if highlight {
		return style.Background(lipgloss.Color("238"))
	}
	return style
}

// renderNet draws the stickers of grid. highlight reports stickers that
// belong to the layer being turned.
func renderNet(l netLayout, grid [6][][]nxcube.Face, highlight func(face nxcube.Face, x, y int) bool) string {
	width := l.Left + l.Width()
	lines := make([][]string, l.Top+l.Height())
	for i := range lines {
		lines[i] = make([]string, width)
		for j := range lines[i] {
			lines[i][j] = " "
		}
	}

	for _, face := range nxcube.Faces {
		fc, fr := l.faceOrigin(face)
		for y := 0; y < l.Size; y++ {
			for x := 0; x < l.Size; x++ {
				label := grid[face][x][y]
				lit := highlight != nil && highlight(face, x, y)
				col := fc + x*stickerWidth
				lines[fr+y][col] = stickerStyle(label, lit).Render(strings.Repeat("█", stickerWidth))
				for k := 1; k < stickerWidth; k++ {
					lines[fr+y][col+k] = ""
				}
			}
		}
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(strings.TrimRight(strings.Join(line, ""), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// layerHighlight returns a highlight func for the stickers r moves.
func layerHighlight(size int, r nxcube.Rotation) func(face nxcube.Face, x, y int) bool {
	return func(face nxcube.Face, x, y int) bool {
		if r.Scope == nxcube.ScopeCube {
			return true
		}
		return nxcube.StickerPosition(size, face, x, y).On(r.Axis) == r.Layer
	}
}
