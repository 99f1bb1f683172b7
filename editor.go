package bezed

import "log/slog"

// interaction states. A drag holds the index of the grabbed control
// point; everything else is Idle.
const noDrag = -1

// Editor is the interaction state machine of the spline editor. It
// owns the Spline exclusively, turns raw cursor input into edits, and
// produces a Frame for the shell to render.
//
// Editor is single-threaded by design: the shell applies one batch of
// input events per frame, in occurrence order, then asks for the
// Frame. No method may be called concurrently.
type Editor struct {
	spline *Spline

	mode      Mode
	showGrid  bool
	showBoxes bool

	pickRadius  float64
	sampleCount int

	cursor Point
	drag   int // index being dragged, or noDrag

	// Curve geometry is rebuilt lazily: mutations and mode toggles set
	// dirty, and Render reuses the cached polylines and boxes until
	// then.
	dirty     bool
	polylines [][]Point
	boxes     []SegmentBoxes
}

// NewEditor creates an empty editor.
func NewEditor(opts ...EditorOption) *Editor {
	o := defaultEditorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Editor{
		spline:      NewSpline(),
		mode:        o.mode,
		pickRadius:  o.pickRadius,
		sampleCount: o.sampleCount,
		drag:        noDrag,
		dirty:       true,
	}
}

// Spline returns the editor's control-point sequence.
func (e *Editor) Spline() *Spline {
	return e.spline
}

// Mode returns the evaluation mode currently in effect.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Dragging returns the index of the control point being dragged and
// true, or -1 and false when idle.
func (e *Editor) Dragging() (int, bool) {
	if e.drag == noDrag {
		return -1, false
	}
	return e.drag, true
}

// Hover returns the index of the control point within the pick radius
// of c, preferring the nearest, or -1 and false if none qualifies.
func (e *Editor) Hover(c Point) (int, bool) {
	if i, ok := e.spline.Pick(c, e.pickRadius); ok {
		return i, true
	}
	return -1, false
}

// Pointer reports the current cursor position. While a drag is in
// flight the grabbed control point follows the cursor; otherwise this
// only updates hover state.
func (e *Editor) Pointer(c Point) {
	e.cursor = c
	if e.drag == noDrag {
		return
	}
	if !e.spline.MoveTo(e.drag, c) {
		// The dragged point no longer exists; treat as released.
		e.drag = noDrag
		return
	}
	e.dirty = true
}

// Handle applies one edge-triggered input event.
func (e *Editor) Handle(ev Event) {
	e.cursor = ev.At
	switch ev.Kind {
	case PrimaryPressed:
		e.primaryPressed(ev.At)
	case PrimaryReleased:
		e.drag = noDrag
	case SecondaryPressed:
		e.secondaryPressed(ev.At)
	case ToggleGrid:
		e.showGrid = !e.showGrid
	case ToggleBoxes:
		e.showBoxes = !e.showBoxes
	case ToggleAlgorithm:
		if e.mode == DeCasteljau {
			e.mode = Bernstein
		} else {
			e.mode = DeCasteljau
		}
		e.dirty = true
		Logger().Info("evaluation mode toggled", slog.String("mode", e.mode.String()))
	}
}

// primaryPressed grabs the hovered control point, or appends a new one
// at the cursor when nothing is hovered.
func (e *Editor) primaryPressed(at Point) {
	if i, ok := e.spline.Pick(at, e.pickRadius); ok {
		e.drag = i
		Logger().Debug("drag started", slog.Int("index", i))
		return
	}
	e.spline.Append(at)
	e.dirty = true
	Logger().Debug("control point added",
		slog.Float64("x", at.X), slog.Float64("y", at.Y),
		slog.Int("count", e.spline.Len()))
}

// secondaryPressed deletes the hovered control point, if any.
// Subsequent indices shift down by one; an in-flight drag target is
// re-pointed or, if it was the deleted point, implicitly released.
func (e *Editor) secondaryPressed(at Point) {
	i, ok := e.spline.Pick(at, e.pickRadius)
	if !ok {
		return
	}
	e.spline.RemoveAt(i)
	e.dirty = true
	switch {
	case e.drag == i:
		e.drag = noDrag
	case e.drag > i:
		e.drag--
	}
	Logger().Debug("control point removed",
		slog.Int("index", i), slog.Int("count", e.spline.Len()))
}

// Step applies one frame's worth of input: the cursor position first,
// then the event batch in occurrence order, and returns the resulting
// Frame. Event order matters within a batch: a press ahead of the
// cursor update decides whether the motion drags an existing point.
func (e *Editor) Step(cursor Point, kinds ...EventKind) Frame {
	e.Pointer(cursor)
	for _, k := range kinds {
		e.Handle(Event{Kind: k, At: cursor})
	}
	return e.Render()
}

// Render rebuilds curve geometry if anything changed since the last
// call and returns the frame description for the shell.
func (e *Editor) Render() Frame {
	if e.dirty {
		e.rebuild()
	}

	f := Frame{
		Markers:     e.spline.Points(),
		Hovered:     -1,
		Polylines:   e.polylines,
		Mode:        e.mode,
		GridVisible: e.showGrid,
	}
	if i, ok := e.spline.Pick(e.cursor, e.pickRadius); ok {
		f.Hovered = i
	}
	if e.showBoxes {
		f.Boxes = e.boxes
	}
	for i := 0; i < e.spline.NumSegments(); i++ {
		seg := e.spline.Segment(i)
		f.Handles = append(f.Handles,
			Handle{Anchor: seg.P0, Control: seg.P1},
			Handle{Anchor: seg.P3, Control: seg.P2},
		)
	}
	return f
}

// rebuild recomputes the per-segment polylines and bounding volumes.
func (e *Editor) rebuild() {
	n := e.spline.NumSegments()
	e.polylines = make([][]Point, 0, n)
	e.boxes = make([]SegmentBoxes, 0, n)

	for i := 0; i < n; i++ {
		seg := e.spline.Segment(i)
		e.polylines = append(e.polylines, seg.AppendPolyline(nil, e.sampleCount, e.mode))
		e.boxes = append(e.boxes, SegmentBoxes{
			Bounds: seg.BoundingBox(),
			Tight:  seg.OrientedBoundingBox(),
		})
	}
	e.dirty = false
}
