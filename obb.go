package bezed

// OrientedBox is a bounding rectangle aligned to a curve segment's
// chord rather than to the world axes. Because it follows the curve's
// own directionality it is never larger in area than the axis-aligned
// BoundingBox, and it rotates with the segment as the user drags the
// anchors.
type OrientedBox struct {
	// Corners holds the four corners in world space, counterclockwise
	// starting from the local-frame minimum corner. The edge from
	// Corners[0] to Corners[1] runs along the chord direction.
	Corners [4]Point

	// Angle is the rotation of the local frame: the angle of the chord
	// P0->P3 measured from the world x-axis. Zero for a degenerate
	// chord.
	Angle float64
}

// LocalRect returns the box expressed in its own chord-aligned frame,
// where it is axis-aligned again.
func (b OrientedBox) LocalRect() Rect {
	toLocal := Rotate(-b.Angle)
	return NewRect(toLocal.TransformPoint(b.Corners[0]), toLocal.TransformPoint(b.Corners[2]))
}

// OrientedBoundingBox returns the minimal bounding box of the curve
// aligned to the chord P0->P3.
//
// The construction rotates the coordinate frame so the chord becomes
// the local x-axis, computes the exact axis-aligned curve box in that
// frame with the same extrema method as BoundingBox, and rotates the
// resulting corners back to world space.
//
// When P0 == P3 the chord direction is undefined; the box falls back
// to the world x-axis (identity rotation) and degenerates to the
// regular bounding box. When the chord is already horizontal or
// vertical the result encloses the same region as BoundingBox.
func (c CubicBez) OrientedBoundingBox() OrientedBox {
	angle := 0.0
	if chord := c.Chord(); chord.LengthSq() > 0 {
		angle = chord.Angle()
	}

	toLocal := Rotate(-angle)
	local := CubicBez{
		P0: toLocal.TransformPoint(c.P0),
		P1: toLocal.TransformPoint(c.P1),
		P2: toLocal.TransformPoint(c.P2),
		P3: toLocal.TransformPoint(c.P3),
	}

	r := local.BoundingBox()

	toWorld := Rotate(angle)
	var b OrientedBox
	b.Angle = angle
	for i, p := range r.Corners() {
		b.Corners[i] = toWorld.TransformPoint(p)
	}
	return b
}
