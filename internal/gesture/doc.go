// Package gesture turns pointer, wheel and touch input into the view transform of the image zoom viewer.
//
// # Transform
//
// A [Transform] is a scale in [MinScale, MaxScale] plus a translation whose magnitude on each axis never exceeds
// [PanLimit] * Scale. It renders as CSS via [Transform.CSS], in the order the browser applies it: the translation is
// scaled with the image.
//
// # Tracker
//
// [Tracker] is a value. Every operation returns the updated tracker and leaves the receiver untouched, so a host
// drives it as (state, event) -> state:
//
//	t := gesture.New(gesture.Viewport{Width: 800, Height: 600})
//	t = t.Wheel(gesture.Point{X: 400, Y: 300}, +1)
//	t = gesture.Apply(t, gesture.DragStart{Pointer: p})
//
// Wheel and pinch zoom keep the point under the cursor (or the pinch midpoint) fixed. Pinch scaling is incremental:
// each frame scales by the ratio to the previous frame's distance.
//
// Only one interaction mode is active at a time ([ModeIdle], [ModePan], [ModePinch]); the mode changes when the
// pointer count changes.
//
// # Double activation
//
// Two releases less than [DoubleTapWindow] apart reset the transform and set a [ResetTransition] hint.
//
// # Viewer
//
// [Viewer] owns one tracker per zoom session. Opening or closing the viewer resets the tracker; events delivered
// while the viewer is closed are dropped.
package gesture
