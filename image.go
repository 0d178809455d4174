package glide

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Image draws an image scaled to the kid, centered. With Stretch, the aspect
// ratio is not kept.
type Image struct {
	Image   image.Image
	Stretch bool

	// cached result of the last scale
	scaled  image.Image
	scaledR image.Point
	scaledS bool
	scaledI image.Image
}

var _ UI = &Image{}

func (ui *Image) scale(size image.Point) image.Image {
	if ui.scaled != nil && ui.scaledR == size && ui.scaledS == ui.Stretch && ui.scaledI == ui.Image {
		return ui.scaled
	}
	b := ui.Image.Bounds().Size()
	switch {
	case b == size:
		ui.scaled = ui.Image
	case ui.Stretch:
		ui.scaled = imaging.Resize(ui.Image, size.X, size.Y, imaging.Linear)
	default:
		ui.scaled = imaging.Fit(ui.Image, size.X, size.Y, imaging.Linear)
	}
	ui.scaledR = size
	ui.scaledS = ui.Stretch
	ui.scaledI = ui.Image
	return ui.scaled
}

func (ui *Image) Draw(w *Window, self *Kid, img *image.RGBA, orig image.Point, force bool) {
	w.debugDraw("Image", self)

	size := self.R.Size()
	if ui.Image == nil || size.X <= 0 || size.Y <= 0 {
		return
	}
	src := ui.scale(size)
	sb := src.Bounds()
	p := orig.Add(size.Sub(sb.Size()).Div(2))
	draw.Draw(img, image.Rectangle{p, p.Add(sb.Size())}, src, sb.Min, draw.Over)
}

func (ui *Image) Touch(w *Window, self *Kid, t Touch) (r Result) {
	r.Hit = ui
	return
}

func (ui *Image) Mark(self *Kid, o UI) (marked bool) {
	return self.Mark(o)
}

func (ui *Image) Print(self *Kid, indent int) {
	s := "Image"
	if ui.Image != nil {
		s = fmt.Sprintf("Image %v", ui.Image.Bounds().Size())
	}
	PrintUI(s, self, indent)
}
