package nxcube

// Predefined whole-cube rotations.
//
// Example:
//
//	cube.Rotate(ctx, nxcube.X)
var (
	X      = Rotation{Scope: ScopeCube, Axis: AxisX, Angle: 90}                  // whole cube about x
	XPrime = Rotation{Scope: ScopeCube, Axis: AxisX, Angle: 90, Backwards: true} // whole cube about x, backwards
	X2     = Rotation{Scope: ScopeCube, Axis: AxisX, Angle: 180}                 // whole cube about x, half turn

	Y      = Rotation{Scope: ScopeCube, Axis: AxisY, Angle: 90}
	YPrime = Rotation{Scope: ScopeCube, Axis: AxisY, Angle: 90, Backwards: true}
	Y2     = Rotation{Scope: ScopeCube, Axis: AxisY, Angle: 180}

	Z      = Rotation{Scope: ScopeCube, Axis: AxisZ, Angle: 90}
	ZPrime = Rotation{Scope: ScopeCube, Axis: AxisZ, Angle: 90, Backwards: true}
	Z2     = Rotation{Scope: ScopeCube, Axis: AxisZ, Angle: 180}
)

// InverseRotations returns the sequence that undoes rotations.
func InverseRotations(rotations []Rotation) []Rotation {
	out := make([]Rotation, len(rotations))
	for i, r := range rotations {
		out[len(rotations)-1-i] = r.Inverse()
	}
	return out
}
