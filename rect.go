package bezed

// Rect represents an axis-aligned rectangle.
// Min holds the minimum coordinates, Max the maximum.
// A zero-area rectangle is valid; it bounds a single point or an
// axis-aligned degenerate curve.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max on both axes.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: p1.Min(p2),
		Max: p1.Max(p2),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: r.Min.Min(other.Min),
		Max: r.Max.Max(other.Max),
	}
}

// UnionPoint returns the smallest rectangle containing r and the point p.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		Min: r.Min.Min(p),
		Max: r.Max.Max(p),
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Corners returns the four corners of the rectangle in counterclockwise
// order starting from Min.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}
