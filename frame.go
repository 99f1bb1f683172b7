package bezed

// Frame is the renderable description the editor hands to the shell
// once per input/render cycle. It is plain data; the shell decides
// colors, stroke widths, and marker shapes.
type Frame struct {
	// Markers holds every control point, in insertion order.
	Markers []Point

	// Hovered is the index into Markers of the currently hovered
	// control point, or -1 when none is within the pick radius.
	Hovered int

	// Handles holds the anchor-to-handle segments of each complete
	// segment's control polygon (P0->P1 and P3->P2).
	Handles []Handle

	// Polylines holds one sampled polyline per complete segment.
	Polylines [][]Point

	// Boxes holds the bounding volumes per complete segment, in
	// segment order. Empty unless box display is enabled.
	Boxes []SegmentBoxes

	// Mode is the evaluation algorithm currently in effect, for UI
	// display.
	Mode Mode

	// GridVisible reports whether the shell should draw its reference
	// grid.
	GridVisible bool
}

// Handle is one anchor-to-control-handle line of a segment's control
// polygon.
type Handle struct {
	Anchor, Control Point
}

// SegmentBoxes pairs the two bounding volumes of one segment.
type SegmentBoxes struct {
	// Bounds is the axis-aligned box of the curve.
	Bounds Rect
	// Tight is the chord-aligned box of the curve.
	Tight OrientedBox
}
