package bezed

import "iter"

// Polyline returns an iterator over n evenly spaced curve points at
// t = i/(n-1) for i in [0, n-1], evaluated with the given mode.
// The sequence is lazy, finite, and restartable: ranging over it twice
// yields the same points. n below 2 is raised to 2 so the polyline
// always has both anchors.
func (c CubicBez) Polyline(n int, mode Mode) iter.Seq[Point] {
	if n < 2 {
		n = 2
	}
	return func(yield func(Point) bool) {
		step := 1.0 / float64(n-1)
		for i := 0; i < n; i++ {
			if !yield(c.Eval(float64(i)*step, mode)) {
				return
			}
		}
	}
}

// AppendPolyline appends the n sample points of the curve to dst and
// returns the extended slice.
func (c CubicBez) AppendPolyline(dst []Point, n int, mode Mode) []Point {
	for p := range c.Polyline(n, mode) {
		dst = append(dst, p)
	}
	return dst
}
