package nxcube

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SnapshotDocument is the text form of a Snapshot: for every face letter,
// the rows of the face top to bottom, each row spelled with face letters
// left to right. A solved 2x2 Up face is ["UU", "UU"].
type SnapshotDocument map[string][]string

// Document converts the snapshot to its text form.
func (s Snapshot) Document() SnapshotDocument {
	n := s.Size()
	doc := make(SnapshotDocument, 6)
	for _, face := range Faces {
		rows := make([]string, n)
		for y := 0; y < n; y++ {
			var b strings.Builder
			for x := 0; x < n; x++ {
				b.WriteString(s[face][x][y].String())
			}
			rows[y] = b.String()
		}
		doc[face.String()] = rows
	}
	return doc
}

// Snapshot parses the text form. Every face must be present and square,
// and all faces must share one size.
func (d SnapshotDocument) Snapshot() (Snapshot, error) {
	var snap Snapshot
	size := -1
	for _, face := range Faces {
		rows, ok := d[face.String()]
		if !ok {
			return Snapshot{}, fmt.Errorf("%w: missing face %s", ErrSizeMismatch, face)
		}
		if size == -1 {
			size = len(rows)
		}
		if len(rows) != size || size < 1 {
			return Snapshot{}, fmt.Errorf("%w: face %s has %d rows", ErrSizeMismatch, face, len(rows))
		}

		grid := make([][]Face, size)
		for x := range grid {
			grid[x] = make([]Face, size)
		}
		for y, row := range rows {
			if len(row) != size {
				return Snapshot{}, fmt.Errorf("%w: face %s row %d has %d stickers", ErrSizeMismatch, face, y, len(row))
			}
			for x, r := range row {
				label, ok := ParseFace(string(r))
				if !ok {
					return Snapshot{}, fmt.Errorf("%w: face %s row %d: unknown label %q", ErrInvalidNotation, face, y, r)
				}
				grid[x][y] = label
			}
		}
		snap[face] = grid
	}
	return snap, nil
}

// MarshalJSON encodes the snapshot as a SnapshotDocument.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Document())
}

// UnmarshalJSON decodes a SnapshotDocument.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var doc SnapshotDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	snap, err := doc.Snapshot()
	if err != nil {
		return err
	}
	*s = snap
	return nil
}

// MarshalYAML encodes the snapshot as a SnapshotDocument.
func (s Snapshot) MarshalYAML() (interface{}, error) {
	return s.Document(), nil
}
