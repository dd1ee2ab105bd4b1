package gesture

import "time"

const (
	MinScale = 1.0
	MaxScale = 4.0

	// ZoomInFactor and ZoomOutFactor are applied per wheel notch.
	ZoomInFactor  = 1.1
	ZoomOutFactor = 0.9

	// PanLimit bounds each translation axis to ±PanLimit*Scale.
	PanLimit = 100.0

	WheelTransition = 100 * time.Millisecond
	ResetTransition = 300 * time.Millisecond
)

// Mode is the interaction the tracker is currently in.
type Mode int

const (
	ModeIdle Mode = iota
	ModePan
	ModePinch
)

func (m Mode) String() string {
	switch m {
	case ModePan:
		return "pan"
	case ModePinch:
		return "pinch"
	default:
		return "idle"
	}
}

// Tracker holds the view transform of one zoom session and the state of the gesture in progress.
//
// Methods have value receivers and return the updated tracker.
type Tracker struct {
	Viewport  Viewport
	Transform Transform

	// Transition is the animation hint for the most recent update. Zero means apply immediately.
	Transition time.Duration

	mode              Mode
	dragOrigin        Point
	referenceDistance float64
	tap               TapDetector
}

// New returns an idle tracker at the identity transform.
func New(vp Viewport) Tracker {
	return Tracker{Viewport: vp, Transform: Identity()}
}

// Mode returns the active interaction mode.
func (t Tracker) Mode() Mode { return t.mode }

// ReferenceDistance returns the pinch distance the next pinch frame is measured against.
func (t Tracker) ReferenceDistance() float64 { return t.referenceDistance }

// Tap returns the double-activation detector state.
func (t Tracker) Tap() TapDetector { return t.tap }

// Zoomed reports whether the image is scaled above [MinScale].
func (t Tracker) Zoomed() bool { return t.Transform.Scale > MinScale }

// Cursor returns the CSS cursor for the current state.
func (t Tracker) Cursor() string {
	switch {
	case t.mode == ModePan:
		return "grabbing"
	case t.Zoomed():
		return "grab"
	default:
		return "default"
	}
}

// Resize changes the viewport. The transform is kept.
func (t Tracker) Resize(vp Viewport) Tracker {
	t.Viewport = vp
	return t
}

// Wheel zooms one notch about cursor. A positive direction zooms in, anything else zooms out.
func (t Tracker) Wheel(cursor Point, direction float64) Tracker {
	if !cursor.finite() || !isFinite(direction) {
		return t
	}

	factor := ZoomOutFactor
	if direction > 0 {
		factor = ZoomInFactor
	}

	t = t.zoomAbout(cursor, t.Transform.Scale*factor)
	t.Transition = WheelTransition
	return t
}

// DragStart begins panning from p. It does nothing unless the image is zoomed.
func (t Tracker) DragStart(p Point) Tracker {
	if !t.Zoomed() || !p.finite() {
		return t
	}
	t.mode = ModePan
	t.dragOrigin = p.Sub(t.Transform.Translate())
	return t
}

// DragMove pans so the point grabbed at DragStart follows p.
func (t Tracker) DragMove(p Point) Tracker {
	if t.mode != ModePan || !p.finite() {
		return t
	}
	next := p.Sub(t.dragOrigin)
	t.Transform.TranslateX = next.X
	t.Transform.TranslateY = next.Y
	t.Transform = clampTranslate(t.Transform)
	t.Transition = 0
	return t
}

// DragEnd leaves pan mode. The transform is unchanged.
func (t Tracker) DragEnd() Tracker {
	if t.mode == ModePan {
		t.mode = ModeIdle
	}
	return t
}

// PinchStart records the distance between a and b as the pinch reference.
func (t Tracker) PinchStart(a, b Point) Tracker {
	if !a.finite() || !b.finite() {
		return t
	}
	t.mode = ModePinch
	t.referenceDistance = a.Dist(b)
	return t
}

// PinchMove scales by the ratio of the current distance to the previous frame's distance, keeping the midpoint of
// a and b fixed. A zero reference distance skips the scale update for this frame.
func (t Tracker) PinchMove(a, b Point) Tracker {
	if t.mode != ModePinch || !a.finite() || !b.finite() {
		return t
	}

	current := a.Dist(b)
	if t.referenceDistance > 0 {
		ratio := current / t.referenceDistance
		t = t.zoomAbout(a.Mid(b), t.Transform.Scale*ratio)
		t.Transition = 0
	}
	t.referenceDistance = current
	return t
}

// PinchEnd leaves pinch mode. The transform is unchanged.
func (t Tracker) PinchEnd() Tracker {
	if t.mode == ModePinch {
		t.mode = ModeIdle
		t.referenceDistance = 0
	}
	return t
}

// Release ends any drag or pinch and feeds the release time to the double-activation detector.
func (t Tracker) Release(at time.Time) Tracker {
	t = t.DragEnd().PinchEnd()

	tap, double := t.tap.Release(at)
	if double {
		t = t.DoubleActivate()
		tap = tap.Settle()
	}
	t.tap = tap
	return t
}

// DoubleActivate resets the transform with a [ResetTransition] hint.
func (t Tracker) DoubleActivate() Tracker {
	t = t.Reset()
	t.Transition = ResetTransition
	return t
}

// Reset drops any gesture in progress and returns to the identity transform.
func (t Tracker) Reset() Tracker {
	return New(t.Viewport)
}

// Touches routes a touch start by pointer count: one pointer starts a drag, two start a pinch. Pointers beyond the
// second are ignored.
func (t Tracker) Touches(points []Point) Tracker {
	switch n := len(points); {
	case n == 1:
		t = t.PinchEnd()
		return t.DragStart(points[0])
	case n >= 2:
		t = t.DragEnd()
		return t.PinchStart(points[0], points[1])
	default:
		return t
	}
}

// TouchMove routes a touch move to the active mode. A pointer count that does not match the mode is ignored.
func (t Tracker) TouchMove(points []Point) Tracker {
	switch {
	case t.mode == ModePinch && len(points) >= 2:
		return t.PinchMove(points[0], points[1])
	case t.mode == ModePan && len(points) == 1:
		return t.DragMove(points[0])
	default:
		return t
	}
}

// TouchEnd handles a lifted pointer with remaining still down. Going from two pointers to one resumes panning with the
// remaining pointer; only the last lifted pointer counts as a release.
func (t Tracker) TouchEnd(remaining []Point, at time.Time) Tracker {
	if len(remaining) == 0 {
		return t.Release(at)
	}
	t = t.PinchEnd()
	if len(remaining) == 1 {
		return t.DragStart(remaining[0])
	}
	return t.PinchStart(remaining[0], remaining[1])
}

// zoomAbout sets the scale to target (clamped) and shifts the translation so focus stays under the same pixel.
func (t Tracker) zoomAbout(focus Point, target float64) Tracker {
	if !isFinite(target) {
		return t
	}
	scale := t.Transform.Scale
	next := clamp(target, MinScale, MaxScale)
	k := next / scale

	offset := focus.Sub(t.Viewport.Center())
	tr := t.Transform.Translate()
	tr = tr.Add(tr.Mul(k).Sub(tr).Add(offset.Mul(k - 1)))

	t.Transform = clampTranslate(Transform{Scale: next, TranslateX: tr.X, TranslateY: tr.Y})
	return t
}

func clampTranslate(tr Transform) Transform {
	limit := PanLimit * tr.Scale
	tr.TranslateX = clamp(tr.TranslateX, -limit, limit)
	tr.TranslateY = clamp(tr.TranslateY, -limit, limit)
	return tr
}
