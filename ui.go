package glide

import (
	"image"
)

// Phase is the stage of a touch gesture.
type Phase byte

const (
	TouchDown = Phase(iota)
	TouchMove
	TouchUp
	TouchCancel // gesture ended without a release, its target must forget it
)

func (p Phase) String() string {
	switch p {
	case TouchDown:
		return "down"
	case TouchMove:
		return "move"
	case TouchUp:
		return "up"
	case TouchCancel:
		return "cancel"
	}
	return "invalid"
}

// Touch is a single touch sample. Point is relative to the UI receiving it.
type Touch struct {
	image.Point
	Phase Phase
	Msec  uint32 // timestamp from the driver
}

// Event is returned by callbacks on UIs.
type Event struct {
	Consumed bool // whether event was consumed, and should not be further handled by upper UI's
	NeedDraw bool // whether UI now needs a draw
}

type Result struct {
	Hit      UI   // the UI where the event ended up
	Consumed bool // whether event was consumed, and should not be further handled by upper UI's
}

type State byte

const (
	Dirty    = State(iota) // UI itself needs draw; kids will also get a draw call, with force set.
	DirtyKid               // UI itself does not need draw, but one of its children does, so pass the call on.
	Clean                  // UI does not need draw.

	// order is important, Clean is highest and means least amount of work
)

// UI is a widget in a window. UIs are wrapped in a Kid that holds their position and draw state.
type UI interface {
	// Draw paints the UI on img, with its top-left at orig. With force set, the UI must draw itself entirely.
	Draw(w *Window, self *Kid, img *image.RGBA, orig image.Point, force bool)

	// Touch handles a touch sample. t.Point is relative to self.R.Min.
	// Touches may lie outside self.R: the UI that accepted a TouchDown keeps receiving the gesture.
	Touch(w *Window, self *Kid, t Touch) (r Result)

	// Mark looks for o in this UI, and marks it and the path to it as needing a draw.
	Mark(self *Kid, o UI) (marked bool)

	// Print line about ui that includes self.R and is prefixed with indent spaces, following by a Print on each child.
	Print(self *Kid, indent int)
}

// tapper recognizes taps: a press followed by a release inside the UI.
type tapper struct {
	pressed bool
}

// touch updates the press state for t, marking self for drawing when it
// changes, and returns whether t completes a tap.
func (tp *tapper) touch(self *Kid, t Touch) (tapped bool) {
	switch t.Phase {
	case TouchDown:
		tp.pressed = true
		self.Draw = Dirty
	case TouchUp:
		if !tp.pressed {
			return false
		}
		tp.pressed = false
		self.Draw = Dirty
		return t.Point.In(rect(self.R.Size()))
	case TouchCancel:
		if tp.pressed {
			tp.pressed = false
			self.Draw = Dirty
		}
	}
	return false
}
