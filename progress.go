package nxcube

import "fmt"

// ProgressSolved is the number of uniform faces on a solved cube.
const ProgressSolved = 6

// Progress reports which faces currently show a single label.
type Progress struct {
	Uniform      [6]bool
	UniformFaces int
}

// ProgressOf computes the progress of a snapshot.
func ProgressOf(snap Snapshot) Progress {
	var p Progress
	for _, face := range Faces {
		if faceUniform(snap[face]) {
			p.Uniform[face] = true
			p.UniformFaces++
		}
	}
	return p
}

func faceUniform(grid [][]Face) bool {
	if len(grid) == 0 {
		return true
	}
	want := grid[0][0]
	for x := range grid {
		for y := range grid[x] {
			if grid[x][y] != want {
				return false
			}
		}
	}
	return true
}

// IsComplete returns true if every face is uniform.
func (p Progress) IsComplete() bool {
	return p.UniformFaces == ProgressSolved
}

func (p Progress) String() string {
	return fmt.Sprintf("%d/%d faces", p.UniformFaces, ProgressSolved)
}

// Progress returns the cube's current progress.
func (c *Cube) Progress() Progress {
	return ProgressOf(c.state.Snapshot())
}
