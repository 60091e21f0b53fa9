package nxcube

// Face corrections applied to an end face when its outer layer turns.
// Each reads the snapshot and writes the live face; quarter turns are
// clockwise as seen from outside the face.

func rotateFace90(s *State, old Snapshot, face Face) {
	n := s.size
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			s.faces[face][x][y].Set(old[face][n-1-y][x])
		}
	}
}

func rotateFaceNegative90(s *State, old Snapshot, face Face) {
	n := s.size
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			s.faces[face][x][y].Set(old[face][y][n-1-x])
		}
	}
}

func rotateFace180(s *State, old Snapshot, face Face) {
	n := s.size
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			s.faces[face][x][y].Set(old[face][n-1-x][n-1-y])
		}
	}
}
