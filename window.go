package glide

import (
	"image"
	"log"
)

// Window is the root of a widget tree: a canvas the size of the window, and
// the popup that may be open on top of it.
type Window struct {
	Name   string
	Top    Kid     // holds Canvas, Top.R is the window area
	Canvas *Canvas // root canvas
	Glide  *Glide  // set by Glide.SetWindow

	popup *popup
}

// NewWindow returns an empty window of width by height.
func NewWindow(name string, width, height int, background Color) *Window {
	c := &Canvas{Background: background}
	w := &Window{Name: name, Canvas: c}
	w.Top = Kid{UI: c, ID: name, R: image.Rect(0, 0, width, height), Alpha: 255}
	c.owner = &w.Top
	return w
}

func (w *Window) Size() image.Point {
	return w.Top.R.Size()
}

// Resize changes the window area, the kids keep their position.
func (w *Window) Resize(width, height int) {
	w.Top.R = image.Rect(0, 0, width, height)
	w.Top.Draw = Dirty
}

// Screen returns the size of the display the window is shown on, or the window
// size when it is not shown.
func (w *Window) Screen() image.Point {
	if w.Glide != nil {
		return w.Glide.ScreenSize()
	}
	return w.Size()
}

// Touch dispatches t, in window coordinates, to the widget tree.
func (w *Window) Touch(t Touch) (r Result) {
	if w.Glide != nil && w.Glide.DebugTouch {
		log.Printf("glide: touch %s %v msec %d\n", t.Phase, t.Point, t.Msec)
	}
	r = w.Top.UI.Touch(w, &w.Top, t)
	return
}

// MarkDraw schedules a draw of o.
func (w *Window) MarkDraw(o UI) bool {
	return w.Top.UI.Mark(&w.Top, o)
}

// Dirty returns whether a draw is pending.
func (w *Window) Dirty() bool {
	return w.Top.Draw != Clean
}

// ChildByName returns the first kid with id.
func (w *Window) ChildByName(id string) *Kid {
	return w.Canvas.Kid(id)
}

func (w *Window) Print() {
	w.Top.UI.Print(&w.Top, 0)
}

func (w *Window) debugDraw(what string, self *Kid) {
	if w != nil && w.Glide != nil && w.Glide.DebugDraw {
		log.Printf("glide: Draw %s %q %s draw=%d\n", what, self.ID, self.R, self.Draw)
	}
}
