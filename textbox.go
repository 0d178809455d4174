package glide

import (
	"fmt"
	"image"
	"strings"
	"unicode/utf8"
)

// TextBox shows a single line of text in a box. There is no text entry, set Tap
// to show a keyboard and update Text.
type TextBox struct {
	Text        string
	Password    bool // draw a '*' for each character
	Font        *Font
	FontColor   Color
	Halign      Halign
	Background  Color
	BorderColor Color
	Padding     Space
	Tap         func() (e Event) // called on a tap

	tapper
}

var _ UI = &TextBox{}

func NewTextBox(text string) *TextBox {
	return &TextBox{
		Text:        text,
		FontColor:   Black,
		Background:  White,
		BorderColor: 0x666666ff,
		Padding:     SpaceXY(6, 0),
	}
}

// NewPasswordBox returns a TextBox that hides its text.
func NewPasswordBox(text string) *TextBox {
	ui := NewTextBox(text)
	ui.Password = true
	return ui
}

func (ui *TextBox) shown() string {
	if ui.Password {
		return strings.Repeat("*", utf8.RuneCountInString(ui.Text))
	}
	return ui.Text
}

func (ui *TextBox) Draw(w *Window, self *Kid, img *image.RGBA, orig image.Point, force bool) {
	w.debugDraw("TextBox", self)

	r := rect(self.R.Size()).Add(orig)
	fill(img, r, ui.Background)
	border := ui.BorderColor
	if ui.pressed {
		border = 0x3272dcff
	}
	drawBorder(img, r, BorderSize, border)
	drawText(img, ui.Padding.Inset(r.Inset(BorderSize)), w.font(ui.Font), ui.FontColor, ui.shown(), ui.Halign, ValignMiddle)
}

func (ui *TextBox) Touch(w *Window, self *Kid, t Touch) (r Result) {
	r.Hit = ui
	r.Consumed = true
	if ui.touch(self, t) && ui.Tap != nil {
		propagateEvent(self, &r, ui.Tap())
	}
	return
}

func (ui *TextBox) Mark(self *Kid, o UI) (marked bool) {
	return self.Mark(o)
}

func (ui *TextBox) Print(self *Kid, indent int) {
	kind := "TextBox"
	if ui.Password {
		kind = "PasswordBox"
	}
	PrintUI(fmt.Sprintf("%s %q", kind, ui.shown()), self, indent)
}
