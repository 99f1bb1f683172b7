package bezed

import (
	"math"
	"testing"
)

func TestOrientedBoundingBox_AxisAlignedChordEqualsRect(t *testing.T) {
	// With a horizontal or vertical chord the oriented box must
	// enclose exactly the same region as the regular box.
	tests := []struct {
		name string
		seg  CubicBez
	}{
		{"horizontal chord", sCurve()},
		{"vertical chord", NewCubicBez(Pt(0, 0), Pt(100, 30), Pt(100, 70), Pt(0, 100))},
		{"collinear on x-axis", NewCubicBez(Pt(0, 0), Pt(30, 0), Pt(70, 0), Pt(100, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.seg.BoundingBox()
			obb := tt.seg.OrientedBoundingBox()

			got := NewRect(obb.Corners[0], obb.Corners[0])
			for _, c := range obb.Corners[1:] {
				got = got.UnionPoint(c)
			}

			if !pointsEqual(got.Min, want.Min, 1e-9) || !pointsEqual(got.Max, want.Max, 1e-9) {
				t.Errorf("oriented box %+v, regular box %+v", got, want)
			}
		})
	}
}

func TestOrientedBoundingBox_LocalFrameConsistency(t *testing.T) {
	// Transformed into its own chord frame, the oriented box must be
	// the regular box of the chord-frame curve. This ties the two box
	// algorithms together.
	for name, seg := range testSegments() {
		t.Run(name, func(t *testing.T) {
			obb := seg.OrientedBoundingBox()

			toLocal := Rotate(-obb.Angle)
			local := CubicBez{
				P0: toLocal.TransformPoint(seg.P0),
				P1: toLocal.TransformPoint(seg.P1),
				P2: toLocal.TransformPoint(seg.P2),
				P3: toLocal.TransformPoint(seg.P3),
			}
			want := local.BoundingBox()
			got := obb.LocalRect()

			if !pointsEqual(got.Min, want.Min, 1e-9) || !pointsEqual(got.Max, want.Max, 1e-9) {
				t.Errorf("LocalRect() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestOrientedBoundingBox_NeverLargerThanRegular(t *testing.T) {
	// The chord-aligned box is fit to the curve's own directionality,
	// so its area can never exceed the world-aligned box's area.
	for name, seg := range testSegments() {
		t.Run(name, func(t *testing.T) {
			regular := seg.BoundingBox().Area()
			tight := seg.OrientedBoundingBox().LocalRect().Area()
			if tight > regular+1e-9 {
				t.Errorf("oriented area %v exceeds regular area %v", tight, regular)
			}
		})
	}
}

func TestOrientedBoundingBox_DiagonalChordIsTighter(t *testing.T) {
	// A gentle arc along a 45-degree chord: the world-aligned box
	// wastes most of its area, the chord-aligned box hugs the curve.
	seg := NewCubicBez(Pt(0, 0), Pt(30, 40), Pt(70, 80), Pt(100, 100))

	regular := seg.BoundingBox().Area()
	tight := seg.OrientedBoundingBox().LocalRect().Area()

	if tight >= regular/2 {
		t.Errorf("expected a much tighter oriented box: tight %v, regular %v", tight, regular)
	}

	angle := seg.OrientedBoundingBox().Angle
	if math.Abs(angle-math.Pi/4) > epsilon {
		t.Errorf("Angle = %v, want pi/4", angle)
	}
}

func TestOrientedBoundingBox_DegenerateChord(t *testing.T) {
	// p0 == p3: no chord direction exists, so the frame falls back to
	// the world axes and the box matches the regular one.
	seg := testSegments()["closed-chord"]
	obb := seg.OrientedBoundingBox()

	if obb.Angle != 0 {
		t.Fatalf("Angle = %v, want 0 for degenerate chord", obb.Angle)
	}
	diff(t, seg.BoundingBox().Corners(), obb.Corners)
}

func TestOrientedBoundingBox_SinglePointDegenerates(t *testing.T) {
	seg := testSegments()["single-point"]
	obb := seg.OrientedBoundingBox()
	for _, c := range obb.Corners {
		if !pointsEqual(c, Pt(5, 5), epsilon) {
			t.Errorf("corner %v, want (5, 5)", c)
		}
	}
}

func TestOrientedBoundingBox_Idempotent(t *testing.T) {
	seg := testSegments()["skewed"]
	diff(t, seg.OrientedBoundingBox(), seg.OrientedBoundingBox())
}

func TestOrientedBoundingBox_CornersFormRectangle(t *testing.T) {
	for name, seg := range testSegments() {
		t.Run(name, func(t *testing.T) {
			c := seg.OrientedBoundingBox().Corners
			e0 := c[1].Sub(c[0])
			e1 := c[2].Sub(c[1])
			e2 := c[3].Sub(c[2])
			e3 := c[0].Sub(c[3])

			// Opposite edges cancel, adjacent edges are orthogonal.
			if s := e0.Add(e2); math.Abs(s.X) > 1e-9 || math.Abs(s.Y) > 1e-9 {
				t.Errorf("opposite edges not parallel: %v", s)
			}
			if s := e1.Add(e3); math.Abs(s.X) > 1e-9 || math.Abs(s.Y) > 1e-9 {
				t.Errorf("opposite edges not parallel: %v", s)
			}
			if d := e0.Dot(e1); math.Abs(d) > 1e-6 {
				t.Errorf("adjacent edges not orthogonal: dot = %v", d)
			}
		})
	}
}
