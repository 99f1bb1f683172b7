package bezed

import "math"

// Point represents a 2D position.
// Displacements between positions are Vec2 values; see vec.go.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point displaced by the vector v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// DistanceSquared returns the squared distance between two points.
// Faster than Distance when only comparing magnitudes.
func (p Point) DistanceSquared(q Point) float64 {
	return p.Sub(q).LengthSq()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Min returns the component-wise minimum of two points.
func (p Point) Min(q Point) Point {
	return Point{X: math.Min(p.X, q.X), Y: math.Min(p.Y, q.Y)}
}

// Max returns the component-wise maximum of two points.
func (p Point) Max(q Point) Point {
	return Point{X: math.Max(p.X, q.X), Y: math.Max(p.Y, q.Y)}
}
