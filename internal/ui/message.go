package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/launchora/internal/gesture"
)

// cellPoint returns the center of the terminal cell at (x, y), relative to the picture whose first row is top.
func cellPoint(x, y, top int) gesture.Point {
	return gesture.Point{X: float64(x) + 0.5, Y: float64(y-top) + 0.5}
}

// mouseEvent translates a bubbletea mouse message into a gesture event. The picture starts at row top.
func mouseEvent(msg tea.MouseMsg, top int, at time.Time) (gesture.Event, bool) {
	p := cellPoint(msg.X, msg.Y, top)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return gesture.Wheel{Cursor: p, Direction: 1}, true
		case tea.MouseButtonWheelDown:
			return gesture.Wheel{Cursor: p, Direction: -1}, true
		case tea.MouseButtonLeft:
			return gesture.DragStart{Pointer: p}, true
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			return gesture.DragMove{Pointer: p}, true
		}
	case tea.MouseActionRelease:
		return gesture.Release{At: at}, true
	}
	return nil, false
}
