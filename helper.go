package glide

import (
	"image"
	"image/draw"
	"strings"
)

const (
	BorderSize = 1
	Radius     = 5 // of rounded corners
)

func pt(v int) image.Point {
	return image.Point{v, v}
}

func rect(p image.Point) image.Rectangle {
	return image.Rectangle{image.ZP, p}
}

func maximum(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minimum(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// clamp v to [lo, hi]; hi wins when lo > hi.
func clamp(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func fill(img *image.RGBA, r image.Rectangle, c Color) {
	if c.Alpha() == 0 {
		return
	}
	op := draw.Src
	if c.Alpha() != 0xff {
		op = draw.Over
	}
	draw.Draw(img, r, c.uniform(), image.ZP, op)
}

// drawBorder draws a border of width n on the inside of r.
func drawBorder(img *image.RGBA, r image.Rectangle, n int, c Color) {
	if n <= 0 || r.Empty() {
		return
	}
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+n), c)
	fill(img, image.Rect(r.Min.X, r.Max.Y-n, r.Max.X, r.Max.Y), c)
	fill(img, image.Rect(r.Min.X, r.Min.Y+n, r.Min.X+n, r.Max.Y-n), c)
	fill(img, image.Rect(r.Max.X-n, r.Min.Y+n, r.Max.X, r.Max.Y-n), c)
}

// drawText draws text, which may span multiple lines, aligned within r.
func drawText(img *image.RGBA, r image.Rectangle, font *Font, c Color, text string, halign Halign, valign Valign) {
	if font == nil || text == "" {
		return
	}
	lines := strings.Split(text, "\n")
	height := font.Height()
	y := r.Min.Y
	switch valign {
	case ValignMiddle:
		y += (r.Dy() - len(lines)*height) / 2
	case ValignBottom:
		y = r.Max.Y - len(lines)*height
	}
	clip := img.SubImage(r).(*image.RGBA)
	for _, line := range lines {
		x := r.Min.X
		switch halign {
		case HalignCenter:
			x += (r.Dx() - font.StringWidth(line)) / 2
		case HalignRight:
			x = r.Max.X - font.StringWidth(line)
		}
		font.draw(clip, image.Pt(x, y), c, line)
		y += height
	}
}
