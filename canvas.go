package glide

import (
	"fmt"
	"image"
)

// Canvas places kids at absolute positions. Kids later in Kids are drawn over
// earlier ones, and are hit first.
// Change Kids only through Add and Remove.
type Canvas struct {
	Kids       []*Kid
	Background Color

	// Modal, when set, receives every new gesture regardless of where it starts.
	Modal *Kid

	owner        *Kid // kid holding this canvas, not owning
	captured     *Kid // receives the rest of the current gesture
	kidsReversed []*Kid
	index        map[string][]*Kid
}

var _ UI = &Canvas{}

func (ui *Canvas) ensure() {
	if len(ui.kidsReversed) == len(ui.Kids) {
		return
	}
	ui.kidsReversed = make([]*Kid, len(ui.Kids))
	for i, k := range ui.Kids {
		ui.kidsReversed[len(ui.Kids)-1-i] = k
	}
}

// Add attaches k on top of the existing kids.
func (ui *Canvas) Add(k *Kid) error {
	if k == nil || k.UI == nil {
		return fmt.Errorf("%w: nil kid", ErrArgument)
	}
	if k.parent != nil {
		return fmt.Errorf("%w: kid %q already attached", ErrArgument, k.ID)
	}
	k.parent = ui
	k.Draw = Dirty
	ui.Kids = append(ui.Kids, k)
	ui.kidsReversed = nil
	if k.ID != "" {
		if ui.index == nil {
			ui.index = map[string][]*Kid{}
		}
		ui.index[k.ID] = append(ui.index[k.ID], k)
	}
	if ui.owner != nil && ui.owner.Draw == Clean {
		ui.owner.Draw = DirtyKid
	}
	return nil
}

// Remove detaches the first kid with id, returning it, or nil if there is none.
func (ui *Canvas) Remove(id string) *Kid {
	k := ui.Kid(id)
	if k != nil {
		ui.RemoveKid(k)
	}
	return k
}

// RemoveKid detaches k. A gesture captured by k ends without further touches.
func (ui *Canvas) RemoveKid(k *Kid) bool {
	for i, kk := range ui.Kids {
		if kk != k {
			continue
		}
		ui.Kids = append(ui.Kids[:i:i], ui.Kids[i+1:]...)
		ui.kidsReversed = nil
		if l := ui.index[k.ID]; len(l) > 0 {
			for j, x := range l {
				if x == k {
					l = append(l[:j:j], l[j+1:]...)
					break
				}
			}
			if len(l) == 0 {
				delete(ui.index, k.ID)
			} else {
				ui.index[k.ID] = l
			}
		}
		if ui.captured == k {
			ui.captured = nil
		}
		if ui.Modal == k {
			ui.Modal = nil
		}
		k.parent = nil
		// the area the kid covered must be repainted
		if ui.owner != nil {
			ui.owner.Draw = Dirty
		}
		return true
	}
	return false
}

// Kid returns the first kid with id, in paint order.
func (ui *Canvas) Kid(id string) *Kid {
	if l := ui.index[id]; len(l) > 0 {
		return l[0]
	}
	return nil
}

// KidAt returns the topmost visible kid containing p, or the modal kid if set.
// The kid may be disabled.
func (ui *Canvas) KidAt(p image.Point) *Kid {
	if ui.Modal != nil {
		return ui.Modal
	}
	ui.ensure()
	for _, k := range ui.kidsReversed {
		if !k.Hidden && p.In(k.R) {
			return k
		}
	}
	return nil
}

// Captured returns the kid receiving the current gesture, if any.
func (ui *Canvas) Captured() *Kid {
	return ui.captured
}

func (ui *Canvas) cancelTouch(w *Window, t Touch) {
	k := ui.captured
	if k == nil {
		return
	}
	ui.captured = nil
	t.Phase = TouchCancel
	t.Point = t.Point.Sub(k.R.Min)
	k.UI.Touch(w, k, t)
	ui.dirtied(k)
}

func (ui *Canvas) dirtied(k *Kid) {
	if k.Draw != Clean && k.parent == ui && ui.owner != nil && ui.owner.Draw == Clean {
		ui.owner.Draw = DirtyKid
	}
}

func (ui *Canvas) deliver(w *Window, k *Kid, t Touch) (r Result) {
	t.Point = t.Point.Sub(k.R.Min)
	r = k.UI.Touch(w, k, t)
	ui.dirtied(k)
	return
}

func (ui *Canvas) Draw(w *Window, self *Kid, img *image.RGBA, orig image.Point, force bool) {
	KidsDraw(w, self, ui.Kids, ui.Background, img, orig, force)
}

// Touch sends a gesture to the kid hit by its TouchDown. A new TouchDown
// while a gesture is in progress first cancels that gesture.
func (ui *Canvas) Touch(w *Window, self *Kid, t Touch) (r Result) {
	switch t.Phase {
	case TouchDown:
		ui.cancelTouch(w, t)
		k := ui.KidAt(t.Point)
		if k == nil {
			return
		}
		if k.Disabled {
			r.Hit = k.UI
			r.Consumed = true
			return
		}
		ui.captured = k
		return ui.deliver(w, k, t)
	case TouchMove:
		if ui.captured == nil {
			return
		}
		return ui.deliver(w, ui.captured, t)
	case TouchUp:
		k := ui.captured
		if k == nil {
			return
		}
		ui.captured = nil
		return ui.deliver(w, k, t)
	case TouchCancel:
		ui.cancelTouch(w, t)
	}
	return
}

func (ui *Canvas) Mark(self *Kid, o UI) (marked bool) {
	return KidsMark(self, ui.Kids, o)
}

func (ui *Canvas) Print(self *Kid, indent int) {
	PrintUI("Canvas", self, indent)
	KidsPrint(ui.Kids, indent+1)
}
