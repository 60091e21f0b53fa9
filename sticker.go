package nxcube

// Cubie is the position of a small cube inside the NxNxN cube: X runs from
// the left face to the right face, Y from the up face to the down face and
// Z from the back face to the front face.
type Cubie struct {
	X, Y, Z int
}

// On returns the cubie's coordinate along axis, which is also the index of
// the layer it belongs to for turns about that axis.
func (c Cubie) On(axis Axis) int {
	switch axis {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	default:
		return c.Z
	}
}

// StickerPosition returns the cubie that carries sticker (x, y) of face on a
// cube of the given size.
func StickerPosition(size int, face Face, x, y int) Cubie {
	last := size - 1
	switch face {
	case Front:
		return Cubie{X: x, Y: y, Z: last}
	case Back:
		return Cubie{X: x, Y: last - y, Z: 0}
	case Left:
		return Cubie{X: 0, Y: y, Z: x}
	case Right:
		return Cubie{X: last, Y: y, Z: last - x}
	case Up:
		return Cubie{X: x, Y: 0, Z: y}
	default: // Down
		return Cubie{X: x, Y: last, Z: last - y}
	}
}
