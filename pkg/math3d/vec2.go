package math3d

// Vec2i is an integer pixel coordinate on a raster surface.
type Vec2i struct {
	X, Y int
}

// V2i creates a new Vec2i.
func V2i(x, y int) Vec2i {
	return Vec2i{x, y}
}

// Add returns the vector sum a + b.
func (a Vec2i) Add(b Vec2i) Vec2i {
	return Vec2i{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2i) Sub(b Vec2i) Vec2i {
	return Vec2i{a.X - b.X, a.Y - b.Y}
}

// At returns the component for axis 0 (X) or 1 (Y).
// Any other axis panics, the same as indexing past the end of an array.
func (a Vec2i) At(axis int) int {
	switch axis {
	case 0:
		return a.X
	case 1:
		return a.Y
	}
	panic("math3d: Vec2i axis out of range")
}

// Transpose swaps X and Y.
func (a Vec2i) Transpose() Vec2i {
	return Vec2i{a.Y, a.X}
}
