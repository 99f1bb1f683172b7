package bezed

import (
	"math"
	"testing"
)

func TestMatrix_Identity(t *testing.T) {
	p := Pt(3, 4)
	diff(t, p, Identity().TransformPoint(p))
}

func TestMatrix_Rotate(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		p     Point
		want  Point
	}{
		{"quarter turn", math.Pi / 2, Pt(1, 0), Pt(0, 1)},
		{"half turn", math.Pi, Pt(1, 0), Pt(-1, 0)},
		{"no turn", 0, Pt(2, 3), Pt(2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotate(tt.angle).TransformPoint(tt.p)
			if !pointsEqual(got, tt.want, epsilon) {
				t.Errorf("Rotate(%v).TransformPoint(%v) = %v, want %v", tt.angle, tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrix_RotateRoundTrip(t *testing.T) {
	// Rotating there and back must return the original point; this is
	// the identity the oriented-box construction leans on.
	p := Pt(123.4, -56.7)
	angle := 0.83

	got := Rotate(angle).TransformPoint(Rotate(-angle).TransformPoint(p))
	if !pointsEqual(got, p, epsilon) {
		t.Errorf("round trip = %v, want %v", got, p)
	}
}

func TestMatrix_MultiplyComposes(t *testing.T) {
	// Translate-then-scale as a single composed matrix.
	m := Scale(2, 2).Multiply(Translate(1, 1))
	got := m.TransformPoint(Pt(1, 1))
	diff(t, Pt(4, 4), got)
}

func TestMatrix_Invert(t *testing.T) {
	m := Translate(10, -5).Multiply(Rotate(0.4)).Multiply(Scale(3, 2))
	p := Pt(7, 11)

	got := m.Invert().TransformPoint(m.TransformPoint(p))
	if !pointsEqual(got, p, 1e-9) {
		t.Errorf("Invert round trip = %v, want %v", got, p)
	}
}

func TestMatrix_InvertSingular(t *testing.T) {
	// A non-invertible matrix falls back to identity.
	diff(t, Identity(), Scale(0, 0).Invert())
}
