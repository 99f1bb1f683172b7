package bezed

// EditorOption configures an Editor during creation.
//
// Example:
//
//	// Defaults: pick radius 10, 64 samples per segment, de Casteljau.
//	ed := bezed.NewEditor()
//
//	// Coarser sampling and a larger pick target:
//	ed := bezed.NewEditor(bezed.WithPickRadius(16), bezed.WithSampleCount(32))
type EditorOption func(*editorOptions)

type editorOptions struct {
	pickRadius  float64
	sampleCount int
	mode        Mode
}

func defaultEditorOptions() editorOptions {
	return editorOptions{
		pickRadius:  DefaultPickRadius,
		sampleCount: DefaultSampleCount,
		mode:        DeCasteljau,
	}
}

// DefaultPickRadius is the hover distance, in control-point coordinate
// space, within which a control point can be grabbed or deleted.
const DefaultPickRadius = 10.0

// DefaultSampleCount is the number of polyline samples per segment.
const DefaultSampleCount = 64

// WithPickRadius sets the hover/pick radius. Values <= 0 are ignored.
func WithPickRadius(r float64) EditorOption {
	return func(o *editorOptions) {
		if r > 0 {
			o.pickRadius = r
		}
	}
}

// WithSampleCount sets the number of polyline samples per segment.
// Values below 2 are ignored.
func WithSampleCount(n int) EditorOption {
	return func(o *editorOptions) {
		if n >= 2 {
			o.sampleCount = n
		}
	}
}

// WithMode sets the initial curve evaluation mode.
func WithMode(m Mode) EditorOption {
	return func(o *editorOptions) {
		o.mode = m
	}
}
