package gesture

import "time"

// Event is an input delivered to a [Tracker] through [Apply].
type Event interface {
	event()
}

type (
	// Wheel is one wheel notch at Cursor. Positive Direction zooms in.
	Wheel struct {
		Cursor    Point
		Direction float64
	}

	DragStart struct{ Pointer Point }
	DragMove  struct{ Pointer Point }
	DragEnd   struct{}

	PinchStart struct{ A, B Point }
	PinchMove  struct{ A, B Point }

	// Release is a pointer or mouse button release.
	Release struct{ At time.Time }

	DoubleActivate struct{}
	Reset          struct{}

	// TouchStart, TouchMove and TouchEnd carry the full list of active touch points, as browsers report them.
	TouchStart struct{ Points []Point }
	TouchMove  struct{ Points []Point }
	TouchEnd   struct {
		Remaining []Point
		At        time.Time
	}
)

func (Wheel) event()          {}
func (DragStart) event()      {}
func (DragMove) event()       {}
func (DragEnd) event()        {}
func (PinchStart) event()     {}
func (PinchMove) event()      {}
func (Release) event()        {}
func (DoubleActivate) event() {}
func (Reset) event()          {}
func (TouchStart) event()     {}
func (TouchMove) event()      {}
func (TouchEnd) event()       {}

// Apply returns t updated by e. Unknown events leave t unchanged.
func Apply(t Tracker, e Event) Tracker {
	switch e := e.(type) {
	case Wheel:
		return t.Wheel(e.Cursor, e.Direction)
	case DragStart:
		return t.DragStart(e.Pointer)
	case DragMove:
		return t.DragMove(e.Pointer)
	case DragEnd:
		return t.DragEnd()
	case PinchStart:
		return t.PinchStart(e.A, e.B)
	case PinchMove:
		return t.PinchMove(e.A, e.B)
	case Release:
		return t.Release(e.At)
	case DoubleActivate:
		return t.DoubleActivate()
	case Reset:
		return t.Reset()
	case TouchStart:
		return t.Touches(e.Points)
	case TouchMove:
		return t.TouchMove(e.Points)
	case TouchEnd:
		return t.TouchEnd(e.Remaining, e.At)
	default:
		return t
	}
}
