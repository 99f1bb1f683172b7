package bezed

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const epsilon = 1e-9

// diff fails the test with a readable diff when want and got differ.
func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

// sCurve is the classic S-curve handle configuration used throughout
// the tests: both handles pull upward, anchors level.
func sCurve() CubicBez {
	return NewCubicBez(Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0))
}

// testSegments is a spread of segment shapes: symmetric, skewed,
// handle far outside the anchors, degenerate chord, and collinear.
func testSegments() map[string]CubicBez {
	return map[string]CubicBez{
		"s-curve":         sCurve(),
		"skewed":          NewCubicBez(Pt(10, 20), Pt(300, -40), Pt(-80, 150), Pt(200, 220)),
		"handles-outside": NewCubicBez(Pt(0, 0), Pt(500, 500), Pt(-400, 500), Pt(100, 0)),
		"closed-chord":    NewCubicBez(Pt(50, 50), Pt(150, 0), Pt(150, 100), Pt(50, 50)),
		"collinear-x":     NewCubicBez(Pt(0, 0), Pt(30, 0), Pt(70, 0), Pt(100, 0)),
		"single-point":    NewCubicBez(Pt(5, 5), Pt(5, 5), Pt(5, 5), Pt(5, 5)),
	}
}
