// Package bezed implements the geometric core of an interactive
// piecewise cubic Bezier spline editor.
//
// # Overview
//
// bezed covers the three parts of a spline editor with real
// algorithmic content: curve evaluation, bounding-volume construction,
// and the hit-testing state machine that turns cursor input into edits
// of a control-point sequence. Window creation, input polling, and
// drawing are the shell's job; bezed consumes edge-triggered events
// and produces a renderable Frame of polylines, markers, and box
// corners.
//
// # Quick Start
//
//	import "github.com/gogpu/bezed"
//
//	ed := bezed.NewEditor()
//
//	// One logical frame: cursor position plus the event batch.
//	frame := ed.Step(bezed.Pt(120, 80), bezed.PrimaryPressed)
//
//	// Hand frame.Markers, frame.Polylines, frame.Boxes ... to the renderer.
//
// # Curves
//
// A segment is a cubic Bezier over four consecutive control points;
// consecutive segments share their anchor. Every segment can be
// evaluated with de Casteljau's algorithm or in Bernstein form. The
// two agree to floating-point tolerance and are selected by a Mode
// value threaded through each call, never by global state.
//
// Bounding volumes are exact for the curve itself, not its control
// polygon: extrema come from solving the derivative's quadratic per
// axis. The oriented variant aligns to the segment's chord and is
// never larger in area than the axis-aligned box.
//
// # Snapshots
//
// RenderFrame rasterizes a Frame into an image for headless shells,
// golden tests, and the bezeddemo command.
package bezed
