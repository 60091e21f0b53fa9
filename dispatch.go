package nxcube

// Dispatch applies r to s. The command is validated against the cube size
// before anything is written, so a failed Dispatch leaves s untouched.
// 270 degree turns run as 90 degree turns the other way; 360 degree turns
// are accepted and change nothing.
func Dispatch(s *State, r Rotation) error {
	if err := r.Validate(s.size); err != nil {
		return err
	}
	apply(s, r.Normalize())
	return nil
}

// apply runs a validated, normalized rotation.
func apply(s *State, r Rotation) {
	step, ok := r.step()
	if !ok {
		return
	}
	switch r.Scope {
	case ScopeLayer:
		RotateLayer(s, r.Axis, r.Layer, step)
	case ScopeCube:
		RotateCube(s, r.Axis, step)
	}
}
