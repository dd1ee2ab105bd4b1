package gesture

// Image is the picture shown in the zoom viewer.
type Image struct {
	Src     string
	ZoomSrc string // high resolution source, preferred when set
	Alt     string
}

// Source returns the URL the viewer should load.
func (i Image) Source() string {
	if i.ZoomSrc != "" {
		return i.ZoomSrc
	}
	return i.Src
}

// Label returns the accessible label for the zoomed image.
func (i Image) Label() string {
	alt := i.Alt
	if alt == "" {
		alt = "Portfolio Image"
	}
	return "Zoomed view of " + alt
}

// Viewer is a zoom session: an open/closed modal that owns one [Tracker].
type Viewer struct {
	tracker Tracker
	image   Image
	active  bool
}

// NewViewer returns a closed viewer for the given viewport.
func NewViewer(vp Viewport) *Viewer {
	return &Viewer{tracker: New(vp)}
}

// Open starts a session for img with a fresh tracker.
func (v *Viewer) Open(img Image) {
	v.image = img
	v.active = true
	v.tracker = v.tracker.Reset()
}

// Close ends the session, discarding any gesture in progress.
func (v *Viewer) Close() {
	v.image = Image{}
	v.active = false
	v.tracker = v.tracker.Reset()
}

// Active reports whether a session is open.
func (v *Viewer) Active() bool { return v.active }

// Image returns the image of the open session.
func (v *Viewer) Image() Image { return v.image }

// Tracker returns a copy of the session's tracker.
func (v *Viewer) Tracker() Tracker { return v.tracker }

// Transform returns the current view transform.
func (v *Viewer) Transform() Transform { return v.tracker.Transform }

// Resize updates the viewport of the session.
func (v *Viewer) Resize(vp Viewport) {
	v.tracker = v.tracker.Resize(vp)
}

// Handle applies e to the session and returns the resulting transform. Events are dropped while closed.
func (v *Viewer) Handle(e Event) Transform {
	if v.active {
		v.tracker = Apply(v.tracker, e)
	}
	return v.tracker.Transform
}

// Key handles a keyboard key by its DOM name and reports whether it was consumed. Escape closes an open viewer.
func (v *Viewer) Key(name string) bool {
	if name == "Escape" && v.active {
		v.Close()
		return true
	}
	return false
}
