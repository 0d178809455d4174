package glide

import (
	"fmt"
	"image"
)

// RadiobuttonSize is the natural width and height of a Radiobutton.
const RadiobuttonSize = 32

// Radiobutton is one of a Group of which at most one is checked.
type Radiobutton struct {
	Value          string
	Checked        bool
	GroupName      string
	Group          []*Radiobutton // including this one, set by the loader for equal GroupName
	ShowBackground bool

	Color                Color // background
	OutlineColor         Color
	SelectedColor        Color // the dot
	SelectedOutlineColor Color

	Changed func(value string) (e Event) // only the change function of the newly checked radiobutton in the group will be called

	tapper
}

var _ UI = &Radiobutton{}

func NewRadiobutton(value string) *Radiobutton {
	return &Radiobutton{
		Value:                value,
		ShowBackground:       true,
		Color:                White,
		OutlineColor:         0x666666ff,
		SelectedColor:        0x3272dcff,
		SelectedOutlineColor: 0x2a5fb8ff,
	}
}

func (ui *Radiobutton) Draw(w *Window, self *Kid, img *image.RGBA, orig image.Point, force bool) {
	w.debugDraw("Radiobutton", self)

	r := rect(pt(minimum(self.R.Dx(), self.R.Dy()))).Add(orig)
	if ui.ShowBackground {
		bg := ui.Color
		if ui.pressed {
			bg = bg.blend(Black, 32)
		}
		fillCircle(img, r, bg)
	}
	drawRing(img, r, BorderSize, ui.OutlineColor)
	if ui.Checked {
		cr := r.Inset(r.Dx() / 4)
		fillCircle(img, cr, ui.SelectedColor)
		drawRing(img, cr, BorderSize, ui.SelectedOutlineColor)
	}
}

// Check checks ui and unchecks the rest of its group, marking those that changed for drawing.
// It returns whether ui was not checked before.
func (ui *Radiobutton) Check(w *Window) bool {
	for _, o := range ui.Group {
		if o != ui && o.Checked {
			o.Checked = false
			if w != nil {
				w.MarkDraw(o)
			}
		}
	}
	if ui.Checked {
		return false
	}
	ui.Checked = true
	if w != nil {
		w.MarkDraw(ui)
	}
	return true
}

func (ui *Radiobutton) Touch(w *Window, self *Kid, t Touch) (r Result) {
	r.Hit = ui
	r.Consumed = true
	if !ui.touch(self, t) {
		return
	}
	if ui.Check(w) && ui.Changed != nil {
		propagateEvent(self, &r, ui.Changed(ui.Value))
	}
	return
}

func (ui *Radiobutton) Mark(self *Kid, o UI) (marked bool) {
	return self.Mark(o)
}

func (ui *Radiobutton) Print(self *Kid, indent int) {
	PrintUI(fmt.Sprintf("Radiobutton %q group %q", ui.Value, ui.GroupName), self, indent)
}
