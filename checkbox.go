package glide

import (
	"image"
)

// CheckboxSize is the natural width and height of a Checkbox.
const CheckboxSize = 32

type Checkbox struct {
	Checked     bool
	Background  Color
	BorderColor Color
	CheckColor  Color
	Changed     func(checked bool) (e Event) // called after a tap toggled Checked

	tapper
}

var _ UI = &Checkbox{}

func NewCheckbox(checked bool) *Checkbox {
	return &Checkbox{
		Checked:     checked,
		Background:  White,
		BorderColor: 0x666666ff,
		CheckColor:  0x333333ff,
	}
}

func (ui *Checkbox) box(self *Kid) image.Rectangle {
	size := minimum(self.R.Dx(), self.R.Dy())
	return rect(pt(size))
}

func (ui *Checkbox) Draw(w *Window, self *Kid, img *image.RGBA, orig image.Point, force bool) {
	w.debugDraw("Checkbox", self)

	r := ui.box(self).Add(orig)
	bg := ui.Background
	if ui.pressed {
		bg = bg.blend(Black, 32)
	}
	color := ui.CheckColor
	if self.Disabled {
		color = color.blend(White, 128)
	}
	fillRounded(img, r, Radius, bg)
	drawRoundedBorder(img, r, BorderSize, Radius, ui.BorderColor)
	if ui.Checked {
		drawCheck(img, r.Inset(r.Dx()/5), color)
	}
}

func (ui *Checkbox) Touch(w *Window, self *Kid, t Touch) (r Result) {
	r.Hit = ui
	r.Consumed = true
	if !ui.touch(self, t) {
		return
	}
	ui.Checked = !ui.Checked
	if ui.Changed != nil {
		propagateEvent(self, &r, ui.Changed(ui.Checked))
	}
	return
}

func (ui *Checkbox) Mark(self *Kid, o UI) (marked bool) {
	return self.Mark(o)
}

func (ui *Checkbox) Print(self *Kid, indent int) {
	PrintUI("Checkbox", self, indent)
}
