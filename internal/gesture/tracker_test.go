package gesture

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

var testViewport = Viewport{Width: 800, Height: 600}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// zoomedTo returns a tracker pinched to exactly scale 2 about the viewport center.
func zoomedTo2(t *testing.T) Tracker {
	t.Helper()
	tr := New(testViewport)
	tr = tr.PinchStart(Point{300, 300}, Point{500, 300})
	tr = tr.PinchMove(Point{200, 300}, Point{600, 300})
	if !approx(tr.Transform.Scale, 2) {
		t.Fatalf("expected scale 2 after pinch, got %v", tr.Transform.Scale)
	}
	return tr.PinchEnd()
}

func TestTracker(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		tr := New(testViewport)
		if !tr.Transform.IsIdentity() {
			t.Errorf("expected identity transform, got %+v", tr.Transform)
		}
		if tr.Mode() != ModeIdle {
			t.Errorf("expected idle mode, got %v", tr.Mode())
		}
	})

	t.Run("Wheel", func(t *testing.T) {
		t.Run("zooms in about the center without translating", func(t *testing.T) {
			tr := New(testViewport).Wheel(Point{400, 300}, 1)
			if !approx(tr.Transform.Scale, 1.1) {
				t.Errorf("expected scale 1.1, got %v", tr.Transform.Scale)
			}
			if tr.Transform.TranslateX != 0 || tr.Transform.TranslateY != 0 {
				t.Errorf("expected no translation, got %+v", tr.Transform)
			}
			if tr.Transition != WheelTransition {
				t.Errorf("expected wheel transition hint, got %v", tr.Transition)
			}
		})

		t.Run("recenters toward the cursor", func(t *testing.T) {
			tr := New(testViewport).Wheel(Point{500, 250}, 1)
			if !approx(tr.Transform.TranslateX, 10) {
				t.Errorf("expected translateX 10, got %v", tr.Transform.TranslateX)
			}
			if !approx(tr.Transform.TranslateY, -5) {
				t.Errorf("expected translateY -5, got %v", tr.Transform.TranslateY)
			}
		})

		t.Run("zooming out at minimum scale is a no-op", func(t *testing.T) {
			tr := New(testViewport).Wheel(Point{100, 100}, -1)
			if !tr.Transform.IsIdentity() {
				t.Errorf("expected identity transform, got %+v", tr.Transform)
			}
		})

		t.Run("zero direction zooms out", func(t *testing.T) {
			tr := zoomedTo2(t).Wheel(Point{400, 300}, 0)
			if !approx(tr.Transform.Scale, 1.8) {
				t.Errorf("expected scale 1.8, got %v", tr.Transform.Scale)
			}
		})

		t.Run("saturates at maximum scale", func(t *testing.T) {
			tr := New(testViewport)
			for range 30 {
				tr = tr.Wheel(Point{400, 300}, 1)
			}
			if tr.Transform.Scale != MaxScale {
				t.Errorf("expected scale %v, got %v", MaxScale, tr.Transform.Scale)
			}
		})

		t.Run("ignores non-finite cursor", func(t *testing.T) {
			tr := New(testViewport).Wheel(Point{math.NaN(), 0}, 1)
			if !tr.Transform.IsIdentity() {
				t.Errorf("expected identity transform, got %+v", tr.Transform)
			}
		})

		t.Run("does not mutate the receiver", func(t *testing.T) {
			before := New(testViewport)
			_ = before.Wheel(Point{400, 300}, 1)
			if !before.Transform.IsIdentity() {
				t.Errorf("expected receiver to be unchanged, got %+v", before.Transform)
			}
		})
	})

	t.Run("Drag", func(t *testing.T) {
		t.Run("is ignored when not zoomed", func(t *testing.T) {
			tr := New(testViewport).DragStart(Point{10, 10})
			if tr.Mode() != ModeIdle {
				t.Errorf("expected idle mode, got %v", tr.Mode())
			}
			tr = tr.DragMove(Point{60, 60})
			if !tr.Transform.IsIdentity() {
				t.Errorf("expected identity transform, got %+v", tr.Transform)
			}
		})

		t.Run("pans relative to the grab point", func(t *testing.T) {
			tr := zoomedTo2(t).DragStart(Point{100, 100})
			if tr.Mode() != ModePan {
				t.Fatalf("expected pan mode, got %v", tr.Mode())
			}
			if tr.Cursor() != "grabbing" {
				t.Errorf("expected grabbing cursor, got %s", tr.Cursor())
			}

			tr = tr.DragMove(Point{150, 120})
			if tr.Transform.TranslateX != 50 || tr.Transform.TranslateY != 20 {
				t.Errorf("expected translate (50, 20), got %+v", tr.Transform)
			}
			if tr.Transition != 0 {
				t.Errorf("expected no transition while dragging, got %v", tr.Transition)
			}
		})

		t.Run("clamps to the pan limit", func(t *testing.T) {
			tr := zoomedTo2(t).DragStart(Point{100, 100}).DragMove(Point{1000, -1000})
			if tr.Transform.TranslateX != 200 || tr.Transform.TranslateY != -200 {
				t.Errorf("expected translate (200, -200), got %+v", tr.Transform)
			}
		})

		t.Run("DragEnd keeps the transform", func(t *testing.T) {
			tr := zoomedTo2(t).DragStart(Point{0, 0}).DragMove(Point{30, 40})
			ended := tr.DragEnd()
			if ended.Mode() != ModeIdle {
				t.Errorf("expected idle mode, got %v", ended.Mode())
			}
			if ended.Transform != tr.Transform {
				t.Errorf("expected transform %+v, got %+v", tr.Transform, ended.Transform)
			}
			if ended.Cursor() != "grab" {
				t.Errorf("expected grab cursor, got %s", ended.Cursor())
			}
		})

		t.Run("DragMove without DragStart is ignored", func(t *testing.T) {
			tr := zoomedTo2(t)
			moved := tr.DragMove(Point{300, 300})
			if moved.Transform != tr.Transform {
				t.Errorf("expected transform unchanged, got %+v", moved.Transform)
			}
		})
	})

	t.Run("Pinch", func(t *testing.T) {
		t.Run("records the reference distance", func(t *testing.T) {
			tr := New(testViewport).PinchStart(Point{0, 0}, Point{30, 40})
			if tr.ReferenceDistance() != 50 {
				t.Errorf("expected reference distance 50, got %v", tr.ReferenceDistance())
			}
			if tr.Mode() != ModePinch {
				t.Errorf("expected pinch mode, got %v", tr.Mode())
			}
		})

		t.Run("scales frame to frame", func(t *testing.T) {
			tr := New(testViewport).PinchStart(Point{350, 300}, Point{450, 300})
			tr = tr.PinchMove(Point{325, 300}, Point{475, 300})
			if !approx(tr.Transform.Scale, 1.5) {
				t.Fatalf("expected scale 1.5, got %v", tr.Transform.Scale)
			}
			if tr.ReferenceDistance() != 150 {
				t.Errorf("expected reference distance 150, got %v", tr.ReferenceDistance())
			}

			tr = tr.PinchMove(Point{250, 300}, Point{550, 300})
			if !approx(tr.Transform.Scale, 3) {
				t.Errorf("expected scale 3, got %v", tr.Transform.Scale)
			}
		})

		t.Run("recenters about the midpoint", func(t *testing.T) {
			tr := New(testViewport).PinchStart(Point{450, 300}, Point{550, 300})
			tr = tr.PinchMove(Point{400, 300}, Point{600, 300})
			if !approx(tr.Transform.TranslateX, 100) {
				t.Errorf("expected translateX 100, got %v", tr.Transform.TranslateX)
			}
			if tr.Transform.TranslateY != 0 {
				t.Errorf("expected translateY 0, got %v", tr.Transform.TranslateY)
			}
		})

		t.Run("zero reference distance leaves scale unchanged", func(t *testing.T) {
			tr := zoomedTo2(t).PinchStart(Point{200, 200}, Point{200, 200})
			moved := tr.PinchMove(Point{100, 200}, Point{300, 200})
			if moved.Transform != tr.Transform {
				t.Errorf("expected transform unchanged, got %+v", moved.Transform)
			}
			if moved.ReferenceDistance() != 200 {
				t.Errorf("expected reference refreshed to 200, got %v", moved.ReferenceDistance())
			}
			if math.IsNaN(moved.Transform.Scale) || math.IsInf(moved.Transform.Scale, 0) {
				t.Errorf("expected finite scale, got %v", moved.Transform.Scale)
			}
		})

		t.Run("PinchMove outside pinch mode is ignored", func(t *testing.T) {
			tr := New(testViewport).PinchMove(Point{0, 0}, Point{500, 0})
			if !tr.Transform.IsIdentity() {
				t.Errorf("expected identity transform, got %+v", tr.Transform)
			}
		})
	})

	t.Run("DoubleActivate resets from any state", func(t *testing.T) {
		tr := zoomedTo2(t).DragStart(Point{0, 0}).DragMove(Point{90, -70})
		tr = tr.DoubleActivate()
		if !tr.Transform.IsIdentity() {
			t.Errorf("expected identity transform, got %+v", tr.Transform)
		}
		if tr.Mode() != ModeIdle {
			t.Errorf("expected idle mode, got %v", tr.Mode())
		}
		if tr.Transition != ResetTransition {
			t.Errorf("expected reset transition hint, got %v", tr.Transition)
		}
	})

	t.Run("Release", func(t *testing.T) {
		t0 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

		t.Run("two releases within the window reset", func(t *testing.T) {
			tr := zoomedTo2(t).Release(t0)
			if tr.Transform.IsIdentity() {
				t.Fatal("expected a single release to keep the zoom")
			}
			tr = tr.Release(t0.Add(200 * time.Millisecond))
			if !tr.Transform.IsIdentity() {
				t.Errorf("expected identity transform, got %+v", tr.Transform)
			}
			if tr.Tap().State != TapIdle {
				t.Errorf("expected tap state idle after reset, got %v", tr.Tap().State)
			}
		})

		t.Run("releases too far apart do not reset", func(t *testing.T) {
			tr := zoomedTo2(t).Release(t0).Release(t0.Add(DoubleTapWindow))
			if tr.Transform.IsIdentity() {
				t.Error("expected zoom to survive slow releases")
			}
			if tr.Tap().State != TapSingle {
				t.Errorf("expected tap state single, got %v", tr.Tap().State)
			}
		})

		t.Run("a third quick release starts a new sequence", func(t *testing.T) {
			tr := New(testViewport).Release(t0).Release(t0.Add(100 * time.Millisecond))
			tr = tr.Wheel(Point{400, 300}, 1)
			tr = tr.Release(t0.Add(200 * time.Millisecond))
			if tr.Transform.IsIdentity() {
				t.Error("expected third release to only arm the detector")
			}
		})

		t.Run("ends drag mode", func(t *testing.T) {
			tr := zoomedTo2(t).DragStart(Point{1, 1}).Release(t0)
			if tr.Mode() != ModeIdle {
				t.Errorf("expected idle mode, got %v", tr.Mode())
			}
		})
	})

	t.Run("Touches", func(t *testing.T) {
		t.Run("one pointer at scale 1 stays idle", func(t *testing.T) {
			tr := New(testViewport).Touches([]Point{{10, 10}})
			if tr.Mode() != ModeIdle {
				t.Errorf("expected idle mode, got %v", tr.Mode())
			}
		})

		t.Run("two pointers start a pinch", func(t *testing.T) {
			tr := New(testViewport).Touches([]Point{{0, 0}, {0, 100}})
			if tr.Mode() != ModePinch {
				t.Errorf("expected pinch mode, got %v", tr.Mode())
			}
		})

		t.Run("extra pointers are ignored", func(t *testing.T) {
			tr := New(testViewport).Touches([]Point{{350, 300}, {450, 300}, {0, 0}})
			tr = tr.TouchMove([]Point{{300, 300}, {500, 300}, {9, 9}})
			if !approx(tr.Transform.Scale, 2) {
				t.Errorf("expected scale 2, got %v", tr.Transform.Scale)
			}
		})

		t.Run("lifting to one pointer resumes panning when zoomed", func(t *testing.T) {
			tr := New(testViewport).Touches([]Point{{350, 300}, {450, 300}})
			tr = tr.TouchMove([]Point{{300, 300}, {500, 300}})
			tr = tr.TouchEnd([]Point{{500, 300}}, time.Now())
			if tr.Mode() != ModePan {
				t.Fatalf("expected pan mode, got %v", tr.Mode())
			}
			if tr.Tap().State != TapIdle {
				t.Errorf("expected partial lift not to count as a release, got %v", tr.Tap().State)
			}
			tr = tr.TouchMove([]Point{{520, 310}})
			if tr.Transform.TranslateX != 20 || tr.Transform.TranslateY != 10 {
				t.Errorf("expected translate (20, 10), got %+v", tr.Transform)
			}
		})

		t.Run("lifting the last pointer releases", func(t *testing.T) {
			tr := New(testViewport).Touches([]Point{{1, 1}}).TouchEnd(nil, time.Now())
			if tr.Tap().State != TapSingle {
				t.Errorf("expected tap state single, got %v", tr.Tap().State)
			}
		})
	})

	t.Run("Reset keeps the viewport", func(t *testing.T) {
		tr := zoomedTo2(t).Reset()
		if tr.Viewport != testViewport {
			t.Errorf("expected viewport %+v, got %+v", testViewport, tr.Viewport)
		}
		if !tr.Transform.IsIdentity() {
			t.Errorf("expected identity transform, got %+v", tr.Transform)
		}
	})
}

func TestTrackerInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randPoint := func() Point {
		return Point{rng.Float64()*1200 - 200, rng.Float64()*1000 - 200}
	}

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := New(testViewport)

	for i := range 5000 {
		var e Event
		switch rng.Intn(9) {
		case 0:
			e = Wheel{Cursor: randPoint(), Direction: rng.Float64()*2 - 1}
		case 1:
			e = DragStart{Pointer: randPoint()}
		case 2, 3:
			e = DragMove{Pointer: randPoint()}
		case 4:
			e = PinchStart{A: randPoint(), B: randPoint()}
		case 5, 6:
			e = PinchMove{A: randPoint(), B: randPoint()}
		case 7:
			e = Release{At: t0.Add(time.Duration(i) * 150 * time.Millisecond)}
		case 8:
			e = DragEnd{}
		}

		tr = Apply(tr, e)
		s := tr.Transform.Scale
		if s < MinScale || s > MaxScale {
			t.Fatalf("step %d (%T): scale %v out of range", i, e, s)
		}
		limit := PanLimit * s
		if math.Abs(tr.Transform.TranslateX) > limit || math.Abs(tr.Transform.TranslateY) > limit {
			t.Fatalf("step %d (%T): translation %+v exceeds %v", i, e, tr.Transform, limit)
		}
	}
}
