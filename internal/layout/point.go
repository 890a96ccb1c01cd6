package layout

// Point represents an (X, Y) pixel coordinate.
type Point struct {
	X, Y int
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height int
}

// ClampTo limits both dimensions to [0, limit].
func (s Size) ClampTo(limit Size) Size {
	return Size{
		Width:  Clamp(s.Width, 0, max(limit.Width, 0)),
		Height: Clamp(s.Height, 0, max(limit.Height, 0)),
	}
}
