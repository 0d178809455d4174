package glide

import (
	"image"
)

// TouchTracker turns pointer samples, a position and whether it is pressed,
// into touches. Backends without touch phases, such as mice, use it.
type TouchTracker struct {
	down bool
	last image.Point
}

// Update returns the touch for a sample, and false if the sample is not a
// touch: a release while not pressed, or a press that did not move.
func (tt *TouchTracker) Update(p image.Point, pressed bool, msec uint32) (Touch, bool) {
	switch {
	case pressed && !tt.down:
		tt.down = true
		tt.last = p
		return Touch{p, TouchDown, msec}, true
	case pressed:
		if p == tt.last {
			return Touch{}, false
		}
		tt.last = p
		return Touch{p, TouchMove, msec}, true
	case tt.down:
		tt.down = false
		return Touch{p, TouchUp, msec}, true
	}
	return Touch{}, false
}

// Pressed returns whether a gesture is in progress.
func (tt *TouchTracker) Pressed() bool {
	return tt.down
}
