package glide

import (
	"fmt"
	"image"
)

// ProgressBar fills a part of its area proportional to Value/MaxValue, starting
// at the side opposite of Direction.
type ProgressBar struct {
	Value       int
	MaxValue    int
	Direction   Direction
	Background  Color
	BarColor    Color
	BorderColor Color
}

var _ UI = &ProgressBar{}

func NewProgressBar(value, max int) *ProgressBar {
	return &ProgressBar{
		Value:       value,
		MaxValue:    max,
		Background:  0xf4f4f4ff,
		BarColor:    0x28a745ff,
		BorderColor: 0xbbbbbbff,
	}
}

// bar returns the filled part of r.
func (ui *ProgressBar) bar(r image.Rectangle) image.Rectangle {
	if ui.MaxValue <= 0 {
		return image.Rectangle{r.Min, r.Min}
	}
	v := clamp(ui.Value, 0, ui.MaxValue)
	w := r.Dx() * v / ui.MaxValue
	h := r.Dy() * v / ui.MaxValue
	switch ui.Direction {
	case DirectionLeft:
		r.Min.X = r.Max.X - w
	case DirectionUp:
		r.Min.Y = r.Max.Y - h
	case DirectionDown:
		r.Max.Y = r.Min.Y + h
	default:
		r.Max.X = r.Min.X + w
	}
	return r
}

func (ui *ProgressBar) Draw(w *Window, self *Kid, img *image.RGBA, orig image.Point, force bool) {
	w.debugDraw("ProgressBar", self)

	r := rect(self.R.Size()).Add(orig)
	fill(img, r, ui.Background)
	fill(img, ui.bar(r.Inset(BorderSize)), ui.BarColor)
	drawBorder(img, r, BorderSize, ui.BorderColor)
}

func (ui *ProgressBar) Touch(w *Window, self *Kid, t Touch) (r Result) {
	r.Hit = ui
	return
}

func (ui *ProgressBar) Mark(self *Kid, o UI) (marked bool) {
	return self.Mark(o)
}

func (ui *ProgressBar) Print(self *Kid, indent int) {
	PrintUI(fmt.Sprintf("ProgressBar %d/%d", ui.Value, ui.MaxValue), self, indent)
}
