package bezed

// EventKind identifies an edge-triggered input event delivered by the
// shell. Each event is delivered once per physical transition; the
// shell never repeats a press while the button stays down.
type EventKind int

const (
	// PrimaryPressed is the primary (left) button going down.
	PrimaryPressed EventKind = iota
	// PrimaryReleased is the primary button going up.
	PrimaryReleased
	// SecondaryPressed is the secondary (right) button going down.
	SecondaryPressed
	// ToggleGrid flips grid visibility.
	ToggleGrid
	// ToggleBoxes flips bounding-box visibility.
	ToggleBoxes
	// ToggleAlgorithm flips the curve evaluation mode.
	ToggleAlgorithm
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case PrimaryPressed:
		return "primary-pressed"
	case PrimaryReleased:
		return "primary-released"
	case SecondaryPressed:
		return "secondary-pressed"
	case ToggleGrid:
		return "toggle-grid"
	case ToggleBoxes:
		return "toggle-boxes"
	case ToggleAlgorithm:
		return "toggle-algorithm"
	default:
		return "unknown"
	}
}

// Event is a single input event with the cursor position at the time
// it occurred. The cursor is in the same coordinate space as the
// spline's control points.
type Event struct {
	Kind EventKind
	At   Point
}
