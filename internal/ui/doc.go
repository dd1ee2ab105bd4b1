// Package ui implements the terminal zoom preview using bubbletea's Elm architecture.
//
// The preview has two views:
//  1. [PickerView] : Browse the portfolio images
//  2. [ZoomView] : Inspect one image through a [gesture.Viewer]
//
// The zoom view renders a generated picture through the inverse of the viewer's transform, so each terminal cell shows
// the part of the image that lands on it. Mouse input is translated into gesture events: the wheel zooms about the
// cursor, a left drag pans once zoomed, and two releases within [gesture.DoubleTapWindow] reset the view.
//
// Keyboard bindings (+/-, r, o, esc, q) are described with charmbracelet/bubbles/key and shown with
// charmbracelet/bubbles/help.
package ui
