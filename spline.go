package bezed

import "slices"

// Spline is an ordered sequence of control points defining a chain of
// cubic Bezier segments. Consecutive segments share their anchor: the
// first segment uses points 0..3, the second points 3..6, and so on.
// A spline with fewer than 4 points defines no segment; the trailing
// 1 or 2 points beyond the last complete segment define none either.
//
// The Editor owns its Spline exclusively; Spline does no locking.
type Spline struct {
	pts []Point
}

// NewSpline creates a spline from the given control points.
func NewSpline(pts ...Point) *Spline {
	return &Spline{pts: slices.Clone(pts)}
}

// Len returns the number of control points.
func (s *Spline) Len() int {
	return len(s.pts)
}

// At returns the control point at index i.
func (s *Spline) At(i int) Point {
	return s.pts[i]
}

// Points returns a copy of the control points.
func (s *Spline) Points() []Point {
	return slices.Clone(s.pts)
}

// Append adds a control point at the end of the sequence.
func (s *Spline) Append(p Point) {
	s.pts = append(s.pts, p)
}

// MoveTo sets the control point at index i to p.
// Out-of-range indices are ignored so a stale drag target can never
// corrupt the sequence. Reports whether a point was moved.
func (s *Spline) MoveTo(i int, p Point) bool {
	if i < 0 || i >= len(s.pts) {
		return false
	}
	s.pts[i] = p
	return true
}

// RemoveAt deletes the control point at index i; subsequent points
// shift down by one, which changes segment membership of every later
// point. Out-of-range indices are ignored. Reports whether a point was
// removed.
func (s *Spline) RemoveAt(i int) bool {
	if i < 0 || i >= len(s.pts) {
		return false
	}
	s.pts = slices.Delete(s.pts, i, i+1)
	return true
}

// NumSegments returns the number of complete cubic segments.
func (s *Spline) NumSegments() int {
	if len(s.pts) < 4 {
		return 0
	}
	return 1 + (len(s.pts)-4)/3
}

// Segment returns the i-th cubic segment as a value; it copies the
// four points rather than aliasing the spline's storage.
func (s *Spline) Segment(i int) CubicBez {
	base := i * 3
	return CubicBez{
		P0: s.pts[base],
		P1: s.pts[base+1],
		P2: s.pts[base+2],
		P3: s.pts[base+3],
	}
}

// SegmentsContaining returns the indices of the segments whose four
// control points include the control point at index pt. Shared anchors
// belong to two segments.
func (s *Spline) SegmentsContaining(pt int) []int {
	var out []int
	for i := 0; i < s.NumSegments(); i++ {
		base := i * 3
		if pt >= base && pt <= base+3 {
			out = append(out, i)
		}
	}
	return out
}

// Pick returns the index of the control point nearest to c among those
// within the pick radius, or false if none qualifies.
func (s *Spline) Pick(c Point, radius float64) (int, bool) {
	best := -1
	bestD := radius * radius
	for i, p := range s.pts {
		if d := p.DistanceSquared(c); d <= bestD {
			best = i
			bestD = d
		}
	}
	return best, best >= 0
}
