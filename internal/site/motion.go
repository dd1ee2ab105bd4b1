package site

import (
	"math"
	"time"
)

const (
	ScrollDuration  = 800 * time.Millisecond
	NavbarOffset    = 80
	CounterDuration = 2000 * time.Millisecond
	FrameInterval   = 16 * time.Millisecond
	ParallaxSpeed   = 0.5
)

// EaseInOutCubic maps progress p in [0, 1] onto the cubic ease-in-out curve. p is clamped.
func EaseInOutCubic(p float64) float64 {
	p = math.Min(math.Max(p, 0), 1)
	if p < 0.5 {
		return 4 * p * p * p
	}
	return 1 - math.Pow(-2*p+2, 3)/2
}

// ScrollTarget returns the scroll position that puts an element at elementTop just below the navbar.
func ScrollTarget(elementTop float64) float64 {
	return elementTop - NavbarOffset
}

// ScrollPosition returns the scroll position elapsed into a smooth scroll from start to target.
func ScrollPosition(start, target float64, elapsed time.Duration) float64 {
	p := float64(elapsed) / float64(ScrollDuration)
	return start + (target-start)*EaseInOutCubic(p)
}

// CounterFrames returns the displayed values of a stat counter counting up to target, one per frame. Intermediate
// values are floored; the last frame is always target.
func CounterFrames(target int) []int {
	if target <= 0 {
		return []int{target}
	}

	increment := float64(target) / (float64(CounterDuration) / float64(FrameInterval))
	var frames []int
	for current := increment; current < float64(target); current += increment {
		frames = append(frames, int(math.Floor(current)))
	}
	return append(frames, target)
}

// ParallaxOffset returns the vertical offset of a parallax layer. A zero speed uses [ParallaxSpeed].
func ParallaxOffset(scrollTop, speed float64) float64 {
	if speed == 0 {
		speed = ParallaxSpeed
	}
	return -(scrollTop * speed)
}
