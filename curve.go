package bezed

import "sort"

// Mode selects the evaluation algorithm for cubic Bezier curves.
// Both algorithms compute the same curve; they differ only in method.
// The editor lets the user flip between them at runtime, so Mode is
// threaded explicitly through every evaluation rather than held in
// global state.
type Mode int

const (
	// DeCasteljau evaluates by repeated linear interpolation between
	// control points. Numerically stable for all t.
	DeCasteljau Mode = iota
	// Bernstein evaluates as a weighted sum of the four cubic
	// Bernstein basis polynomials.
	Bernstein
)

// String returns the name of the evaluation mode.
func (m Mode) String() string {
	switch m {
	case DeCasteljau:
		return "de Casteljau"
	case Bernstein:
		return "Bernstein"
	default:
		return "unknown"
	}
}

// clamp01 clamps t to [0, 1]. Out-of-range parameters are clamped
// rather than rejected so a transient bad sample can never take the
// editor down.
func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// It appears here as the derivative of a cubic segment; the editor
// itself only ever manipulates cubics.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (clamped to [0, 1]).
func (q QuadBez) Eval(t float64) Point {
	t = clamp01(t)
	mt := 1.0 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start anchor, P1 and P2 are control handles, P3 is the end
// anchor. Only P0 and P3 lie on the curve.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Start returns the starting anchor of the curve.
func (c CubicBez) Start() Point {
	return c.P0
}

// End returns the ending anchor of the curve.
func (c CubicBez) End() Point {
	return c.P3
}

// Chord returns the displacement from the start anchor to the end anchor.
func (c CubicBez) Chord() Vec2 {
	return c.P3.Sub(c.P0)
}

// Eval evaluates the curve at parameter t using the given mode.
// t is clamped to [0, 1]. Both modes agree to within floating-point
// tolerance for every t; see EvalDeCasteljau and EvalBernstein.
func (c CubicBez) Eval(t float64, mode Mode) Point {
	if mode == Bernstein {
		return c.EvalBernstein(t)
	}
	return c.EvalDeCasteljau(t)
}

// EvalDeCasteljau evaluates the curve at parameter t (clamped to [0, 1])
// by de Casteljau's algorithm: three levels of pairwise linear
// interpolation collapse the four control points to a single point.
func (c CubicBez) EvalDeCasteljau(t float64) Point {
	t = clamp01(t)

	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)

	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)

	return p012.Lerp(p123, t)
}

// EvalBernstein evaluates the curve at parameter t (clamped to [0, 1])
// as the Bernstein-form weighted sum
//
//	(1-t)^3 P0 + 3(1-t)^2 t P1 + 3(1-t) t^2 P2 + t^3 P3.
func (c CubicBez) EvalBernstein(t float64) Point {
	t = clamp01(t)
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	b0 := mt3
	b1 := 3 * mt2 * t
	b2 := 3 * mt * t2
	b3 := t3

	return Point{
		X: b0*c.P0.X + b1*c.P1.X + b2*c.P2.X + b3*c.P3.X,
		Y: b0*c.P0.Y + b1*c.P1.Y + b2*c.P2.Y + b3*c.P3.Y,
	}
}

// Deriv returns the derivative curve (a quadratic Bezier).
// The derivative gives the velocity (tangent direction) at any point.
func (c CubicBez) Deriv() QuadBez {
	return QuadBez{
		P0: Point{X: 3 * (c.P1.X - c.P0.X), Y: 3 * (c.P1.Y - c.P0.Y)},
		P1: Point{X: 3 * (c.P2.X - c.P1.X), Y: 3 * (c.P2.Y - c.P1.Y)},
		P2: Point{X: 3 * (c.P3.X - c.P2.X), Y: 3 * (c.P3.Y - c.P2.Y)},
	}
}

// Tangent returns the tangent vector at parameter t.
func (c CubicBez) Tangent(t float64) Vec2 {
	p := c.Deriv().Eval(t)
	return Vec2{X: p.X, Y: p.Y}
}

// Normal returns the unit normal (perpendicular to the tangent) at
// parameter t. Returns the zero vector where the tangent vanishes.
func (c CubicBez) Normal(t float64) Vec2 {
	return c.Tangent(t).Perp().Normalize()
}

// Accel returns the second derivative vector at parameter t, used in
// curvature computation.
func (c CubicBez) Accel(t float64) Vec2 {
	t = clamp01(t)
	return Vec2{
		X: c.P0.X*(-6*t+6) + c.P1.X*(18*t-12) + c.P2.X*(-18*t+6) + c.P3.X*(6*t),
		Y: c.P0.Y*(-6*t+6) + c.P1.Y*(18*t-12) + c.P2.Y*(-18*t+6) + c.P3.Y*(6*t),
	}
}

// Extrema returns parameter values in [0, 1] where the derivative of
// either coordinate is zero. A cubic has up to 4 extrema (2 per axis).
// These are the only interior candidates for the curve's axis-aligned
// bounds, which is what makes the extrema-based bounding box exact.
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	// The derivative of each coordinate is a quadratic a*t^2 + b*t + c
	// with coefficients from the hodograph control values.
	// An identically zero derivative (constant coordinate) has no
	// extrema; skip that axis rather than report a spurious root.
	ax := d0.X - 2*d1.X + d2.X
	bx := 2 * (d1.X - d0.X)
	cx := d0.X
	if ax != 0 || bx != 0 || cx != 0 {
		result = append(result, SolveQuadraticInUnitInterval(ax, bx, cx)...)
	}

	ay := d0.Y - 2*d1.Y + d2.Y
	by := 2 * (d1.Y - d0.Y)
	cy := d0.Y
	if ay != 0 || by != 0 || cy != 0 {
		result = append(result, SolveQuadraticInUnitInterval(ay, by, cy)...)
	}

	sort.Float64s(result)
	return result
}

// BoundingBox returns the minimal axis-aligned bounding box of the
// whole curve for t in [0, 1]: the curve itself, not its control
// polygon. Control handles outside the returned box are normal.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)

	for _, t := range c.Extrema() {
		bbox = bbox.UnionPoint(c.EvalDeCasteljau(t))
	}

	return bbox
}
