package glide

import (
	"fmt"
	"image"
)

// Button is a rounded button with text, possibly multiple lines.
// While pressed, its face is tinted with TintColor.
type Button struct {
	Text              string
	Font              *Font // default font if nil
	FontColor         Color
	DisabledFontColor Color // for text while the kid is disabled
	TintColor         Color
	TintAmount        int // 0 to 256, how much of TintColor is mixed in while pressed
	Background        Color
	BorderColor       Color
	Click             func() (e Event) // called on a tap

	tapper
}

var _ UI = &Button{}

// NewButton returns a button with the default colors.
func NewButton(text string) *Button {
	return &Button{
		Text:              text,
		FontColor:         0x333333ff,
		DisabledFontColor: 0x888888ff,
		TintColor:         Black,
		TintAmount:        64,
		Background:        0xf8f8f8ff,
		BorderColor:       0xbbbbbbff,
	}
}

func (ui *Button) Draw(w *Window, self *Kid, img *image.RGBA, orig image.Point, force bool) {
	w.debugDraw("Button", self)

	r := rect(self.R.Size()).Add(orig)
	bg := ui.Background
	if ui.pressed {
		bg = bg.blend(ui.TintColor, ui.TintAmount)
	}
	fillRounded(img, r, Radius, bg)
	drawRoundedBorder(img, r, BorderSize, Radius, ui.BorderColor)

	color := ui.FontColor
	if self.Disabled {
		color = ui.DisabledFontColor
	}
	hit := image.ZP
	if ui.pressed {
		hit = image.Pt(0, 1)
	}
	drawText(img, r.Inset(BorderSize).Add(hit), w.font(ui.Font), color, ui.Text, HalignCenter, ValignMiddle)
}

func (ui *Button) Touch(w *Window, self *Kid, t Touch) (r Result) {
	r.Hit = ui
	r.Consumed = true
	if ui.touch(self, t) && ui.Click != nil {
		propagateEvent(self, &r, ui.Click())
	}
	return
}

func (ui *Button) Mark(self *Kid, o UI) (marked bool) {
	return self.Mark(o)
}

func (ui *Button) Print(self *Kid, indent int) {
	PrintUI(fmt.Sprintf("Button %q", ui.Text), self, indent)
}
