package glide

import (
	"fmt"
	"image"
	"log"
)

// Dropdown shows the selected option, and opens a List of its options when tapped.
type Dropdown struct {
	Text        string // shown, the label of the selected option after a selection
	Value       string
	Selected    int // index in Options, -1 if none
	Options     []Option
	Font        *Font
	FontColor   Color
	Background  Color
	BorderColor Color
	Padding     Space

	Changed func(index int, o Option) (e Event) // called after an option was tapped in the list
	Tap     func() (e Event)                    // if set, called on a tap instead of opening the list

	tapper
}

var _ UI = &Dropdown{}

func NewDropdown(text string, options []Option) *Dropdown {
	return &Dropdown{
		Text:        text,
		Selected:    -1,
		Options:     options,
		FontColor:   0x333333ff,
		Background:  White,
		BorderColor: 0x666666ff,
		Padding:     SpaceXY(8, 0),
	}
}

// Open opens a list with the options in w, as wide as self.
func (ui *Dropdown) Open(w *Window, self *Kid) error {
	l, err := NewList(ui.Options, self.R.Dx(), w.Screen(), w.font(ui.Font))
	if err != nil {
		return err
	}
	l.FontColor = ui.FontColor
	if ui.Selected > 0 {
		l.ScrollTo(ui.Selected * l.RowHeight())
	}
	return w.OpenList(ui, l)
}

func (ui *Dropdown) Draw(w *Window, self *Kid, img *image.RGBA, orig image.Point, force bool) {
	w.debugDraw("Dropdown", self)

	r := rect(self.R.Size()).Add(orig)
	bg := ui.Background
	if ui.pressed {
		bg = bg.blend(Black, 32)
	}
	fillRounded(img, r, Radius, bg)
	drawRoundedBorder(img, r, BorderSize, Radius, ui.BorderColor)

	// arrow in a square at the right
	a := r.Dy() / 3
	ar := image.Rect(r.Max.X-r.Dy()+a, r.Min.Y+a, r.Max.X-a, r.Max.Y-a)
	if ar.Dx() > 0 && ar.Min.X > r.Min.X {
		s := newShape(ar)
		s.triangle(image.Pt(0, 0), image.Pt(ar.Dx(), 0), image.Pt(ar.Dx()/2, ar.Dy()))
		s.paint(img, ui.BorderColor)
	}

	text := ui.Padding.Inset(r)
	text.Max.X = minimum(text.Max.X, r.Max.X-r.Dy())
	drawText(img, text, w.font(ui.Font), ui.FontColor, ui.Text, HalignLeft, ValignMiddle)
}

func (ui *Dropdown) Touch(w *Window, self *Kid, t Touch) (r Result) {
	r.Hit = ui
	r.Consumed = true
	if !ui.touch(self, t) {
		return
	}
	if ui.Tap != nil {
		propagateEvent(self, &r, ui.Tap())
		return
	}
	if err := ui.Open(w, self); err != nil {
		log.Printf("glide: dropdown %q: open list: %s\n", self.ID, err)
	}
	return
}

func (ui *Dropdown) Mark(self *Kid, o UI) (marked bool) {
	return self.Mark(o)
}

func (ui *Dropdown) Print(self *Kid, indent int) {
	PrintUI(fmt.Sprintf("Dropdown %q options=%d", ui.Text, len(ui.Options)), self, indent)
}
