package nxcube

import (
	"fmt"
	"strings"
)

// Grid is one face of the cube: Size x Size sticker cells indexed [x][y],
// x running left to right and y top to bottom as the face is drawn.
type Grid [][]*Cell[Face]

// State is the visible surface of an NxNxN cube. It owns one observable
// cell per sticker; rotations write through the cells so the owning Batch
// sees every changed sticker.
//
// Each face is indexed [x][y]:
//
//	[0][0]   [1][0]   ... [N-1][0]
//	[0][1]   [1][1]   ... [N-1][1]
//	...
//	[0][N-1] [1][N-1] ... [N-1][N-1]
type State struct {
	size  int
	batch *Batch
	faces [6]Grid
}

// NewState creates a solved cube of the given size whose cells belong to
// batch. It fails with ErrInvalidSize when size < 1.
func NewState(batch *Batch, size int) (*State, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if batch == nil {
		batch = NewBatch()
	}

	s := &State{size: size, batch: batch}
	for _, face := range Faces {
		grid := make(Grid, size)
		for x := 0; x < size; x++ {
			grid[x] = make([]*Cell[Face], size)
			for y := 0; y < size; y++ {
				grid[x][y] = NewCell(batch, face)
			}
		}
		s.faces[face] = grid
	}
	return s, nil
}

// Size returns N.
func (s *State) Size() int {
	return s.size
}

// Batch returns the batch that owns the state's cells.
func (s *State) Batch() *Batch {
	return s.batch
}

// Cell returns the sticker cell at (x, y) on face.
func (s *State) Cell(face Face, x, y int) *Cell[Face] {
	return s.faces[face][x][y]
}

// Face returns the grid of one face.
func (s *State) Face(face Face) Grid {
	return s.faces[face]
}

// Snapshot copies every sticker value.
func (s *State) Snapshot() Snapshot {
	var snap Snapshot
	for _, face := range Faces {
		rows := make([][]Face, s.size)
		for x := 0; x < s.size; x++ {
			rows[x] = make([]Face, s.size)
			for y := 0; y < s.size; y++ {
				rows[x][y] = s.faces[face][x][y].Value()
			}
		}
		snap[face] = rows
	}
	return snap
}

// Restore writes snap back into the cells. Stickers that already hold the
// snapshot's value are left untouched.
func (s *State) Restore(snap Snapshot) error {
	if snap.Size() != s.size {
		return fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, snap.Size(), s.size)
	}
	for _, face := range Faces {
		if len(snap[face]) != s.size {
			return fmt.Errorf("%w: face %s has %d columns", ErrSizeMismatch, face, len(snap[face]))
		}
		for x := 0; x < s.size; x++ {
			if len(snap[face][x]) != s.size {
				return fmt.Errorf("%w: face %s column %d has %d stickers", ErrSizeMismatch, face, x, len(snap[face][x]))
			}
		}
	}

	for _, face := range Faces {
		for x := 0; x < s.size; x++ {
			for y := 0; y < s.size; y++ {
				s.faces[face][x][y].Set(snap[face][x][y])
			}
		}
	}
	return nil
}

// IsSolved returns true if every face shows a single label.
func (s *State) IsSolved() bool {
	for _, face := range Faces {
		want := s.faces[face][0][0].Value()
		for x := 0; x < s.size; x++ {
			for y := 0; y < s.size; y++ {
				if s.faces[face][x][y].Value() != want {
					return false
				}
			}
		}
	}
	return true
}

// Equal reports whether both states show the same label on every sticker.
func (s *State) Equal(other *State) bool {
	if other == nil || other.size != s.size {
		return false
	}
	for _, face := range Faces {
		for x := 0; x < s.size; x++ {
			for y := 0; y < s.size; y++ {
				if s.faces[face][x][y].Value() != other.faces[face][x][y].Value() {
					return false
				}
			}
		}
	}
	return true
}

// String returns the cube as an unfolded net:
//
//	  U
//	L F R B
//	  D
func (s *State) String() string {
	return s.Snapshot().String()
}

// Snapshot is an immutable copy of the sticker labels, indexed
// [face][x][y] like State.
type Snapshot [6][][]Face

// SolvedSnapshot returns the labels of a solved cube of the given size.
func SolvedSnapshot(size int) Snapshot {
	var snap Snapshot
	for _, face := range Faces {
		rows := make([][]Face, size)
		for x := range rows {
			rows[x] = make([]Face, size)
			for y := range rows[x] {
				rows[x][y] = face
			}
		}
		snap[face] = rows
	}
	return snap
}

// Size returns N, or 0 for an empty snapshot.
func (s Snapshot) Size() int {
	return len(s[Up])
}

// At returns the label at (x, y) on face.
func (s Snapshot) At(face Face, x, y int) Face {
	return s[face][x][y]
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	var out Snapshot
	for _, face := range Faces {
		out[face] = make([][]Face, len(s[face]))
		for x := range s[face] {
			out[face][x] = append([]Face(nil), s[face][x]...)
		}
	}
	return out
}

// Equal reports whether both snapshots hold the same labels.
func (s Snapshot) Equal(other Snapshot) bool {
	for _, face := range Faces {
		if len(s[face]) != len(other[face]) {
			return false
		}
		for x := range s[face] {
			if len(s[face][x]) != len(other[face][x]) {
				return false
			}
			for y := range s[face][x] {
				if s[face][x][y] != other[face][x][y] {
					return false
				}
			}
		}
	}
	return true
}

// Labels counts how many stickers carry each label.
func (s Snapshot) Labels() map[Face]int {
	counts := make(map[Face]int, 6)
	for _, face := range Faces {
		for x := range s[face] {
			for y := range s[face][x] {
				counts[s[face][x][y]]++
			}
		}
	}
	return counts
}

// IsSolved returns true if every face shows a single label.
func (s Snapshot) IsSolved() bool {
	for _, face := range Faces {
		if len(s[face]) == 0 {
			continue
		}
		want := s[face][0][0]
		for x := range s[face] {
			for y := range s[face][x] {
				if s[face][x][y] != want {
					return false
				}
			}
		}
	}
	return true
}

func (s Snapshot) String() string {
	n := s.Size()
	var b strings.Builder
	indent := strings.Repeat("  ", n) + " "

	// U face (indented)
	for y := 0; y < n; y++ {
		b.WriteString(indent)
		s.writeRow(&b, Up, y)
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for y := 0; y < n; y++ {
		for i, face := range []Face{Left, Front, Right, Back} {
			if i > 0 {
				b.WriteString(" ")
			}
			s.writeRow(&b, face, y)
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for y := 0; y < n; y++ {
		b.WriteString(indent)
		s.writeRow(&b, Down, y)
		b.WriteString("\n")
	}

	return b.String()
}

func (s Snapshot) writeRow(b *strings.Builder, face Face, y int) {
	for x := 0; x < s.Size(); x++ {
		b.WriteString(s[face][x][y].String())
		b.WriteString(" ")
	}
}
