package gesture

import "time"

// DoubleTapWindow is the longest gap between two releases that still counts as a double activation.
const DoubleTapWindow = 300 * time.Millisecond

// TapState is the position of the release sequence in the double-activation state machine.
type TapState int

const (
	TapIdle TapState = iota
	TapSingle
	TapDouble
)

func (s TapState) String() string {
	switch s {
	case TapSingle:
		return "single"
	case TapDouble:
		return "double"
	default:
		return "idle"
	}
}

// TapDetector recognizes two releases within [DoubleTapWindow].
type TapDetector struct {
	State TapState
	last  time.Time
}

// Release records a release at at and reports whether it completes a double activation.
func (d TapDetector) Release(at time.Time) (TapDetector, bool) {
	if d.State == TapSingle {
		gap := at.Sub(d.last)
		if gap >= 0 && gap < DoubleTapWindow {
			return TapDetector{State: TapDouble}, true
		}
	}
	return TapDetector{State: TapSingle, last: at}, false
}

// Settle returns the detector to idle once a double activation has been handled.
func (d TapDetector) Settle() TapDetector {
	return TapDetector{}
}
