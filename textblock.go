package glide

import (
	"fmt"
	"image"
	"strings"
)

// TextBlock draws text, wrapped at glyph boundary to fit its width.
type TextBlock struct {
	Text          string
	Font          *Font
	FontColor     Color
	Halign        Halign
	Valign        Valign
	BackColor     Color
	ShowBackColor bool
	Click         func() (e Event) // called on a tap

	tapper
}

var _ UI = &TextBlock{}

func NewTextBlock(text string) *TextBlock {
	return &TextBlock{
		Text:      text,
		FontColor: Black,
		Valign:    ValignTop,
		BackColor: White,
	}
}

// wrap breaks text into lines no wider than width, at newlines and where a
// glyph would not fit. A line has at least one glyph.
func wrap(font *Font, text string, width int) (lines []string) {
	s := 0
	x := 0
	for i, c := range text {
		if c == '\n' {
			lines = append(lines, text[s:i])
			s = i + 1
			x = 0
			continue
		}
		dx := font.StringWidth(string(c))
		x += dx
		if i-s == 0 || x <= width {
			continue
		}
		lines = append(lines, text[s:i])
		s = i
		x = dx
	}
	if s < len(text) || s == 0 {
		lines = append(lines, text[s:])
	}
	return
}

func (ui *TextBlock) Draw(w *Window, self *Kid, img *image.RGBA, orig image.Point, force bool) {
	w.debugDraw("TextBlock", self)

	r := rect(self.R.Size()).Add(orig)
	if ui.ShowBackColor {
		fill(img, r, ui.BackColor)
	}
	font := w.font(ui.Font)
	text := strings.Join(wrap(font, ui.Text, r.Dx()), "\n")
	drawText(img, r, font, ui.FontColor, text, ui.Halign, ui.Valign)
}

func (ui *TextBlock) Touch(w *Window, self *Kid, t Touch) (r Result) {
	r.Hit = ui
	if ui.Click == nil {
		return
	}
	r.Consumed = true
	if ui.touch(self, t) {
		propagateEvent(self, &r, ui.Click())
	}
	return
}

func (ui *TextBlock) Mark(self *Kid, o UI) (marked bool) {
	return self.Mark(o)
}

func (ui *TextBlock) Print(self *Kid, indent int) {
	PrintUI(fmt.Sprintf("TextBlock %q", ui.Text), self, indent)
}
