package glide

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points to approximate a quarter circle.
const kappa = 0.5522847498

// shape rasterizes a closed path in the coordinate space of r and paints it on img.
type shape struct {
	z *vector.Rasterizer
	r image.Rectangle
}

func newShape(r image.Rectangle) *shape {
	return &shape{vector.NewRasterizer(r.Dx(), r.Dy()), r}
}

func (s *shape) paint(img *image.RGBA, c Color) {
	if s.r.In(img.Rect) {
		s.z.Draw(img, s.r, c.uniform(), image.ZP)
		return
	}
	// the rasterizer does not clip, go through a mask
	mask := image.NewAlpha(rect(s.r.Size()))
	s.z.Draw(mask, mask.Rect, image.Opaque, image.ZP)
	draw.DrawMask(img, s.r, c.uniform(), image.ZP, mask, image.ZP, draw.Over)
}

// circle adds a circle; reverse winds it the other way, which cuts it out of a same-centered larger circle.
func (s *shape) circle(cx, cy, radius float32, reverse bool) {
	k := radius * kappa
	z := s.z
	z.MoveTo(cx+radius, cy)
	if reverse {
		z.CubeTo(cx+radius, cy-k, cx+k, cy-radius, cx, cy-radius)
		z.CubeTo(cx-k, cy-radius, cx-radius, cy-k, cx-radius, cy)
		z.CubeTo(cx-radius, cy+k, cx-k, cy+radius, cx, cy+radius)
		z.CubeTo(cx+k, cy+radius, cx+radius, cy+k, cx+radius, cy)
	} else {
		z.CubeTo(cx+radius, cy+k, cx+k, cy+radius, cx, cy+radius)
		z.CubeTo(cx-k, cy+radius, cx-radius, cy+k, cx-radius, cy)
		z.CubeTo(cx-radius, cy-k, cx-k, cy-radius, cx, cy-radius)
		z.CubeTo(cx+k, cy-radius, cx+radius, cy-k, cx+radius, cy)
	}
	z.ClosePath()
}

// roundedRect adds a rectangle of w by h with corners of the given radius.
func (s *shape) roundedRect(w, h, radius float32) {
	k := radius * kappa
	z := s.z
	z.MoveTo(radius, 0)
	z.LineTo(w-radius, 0)
	z.CubeTo(w-radius+k, 0, w, radius-k, w, radius)
	z.LineTo(w, h-radius)
	z.CubeTo(w, h-radius+k, w-radius+k, h, w-radius, h)
	z.LineTo(radius, h)
	z.CubeTo(radius-k, h, 0, h-radius+k, 0, h-radius)
	z.LineTo(0, radius)
	z.CubeTo(0, radius-k, radius-k, 0, radius, 0)
	z.ClosePath()
}

// segment adds a line of the given thickness from (x0,y0) to (x1,y1) as a quad.
func (s *shape) segment(x0, y0, x1, y1, thickness float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*thickness/2, dx/l*thickness/2
	z := s.z
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

func (s *shape) triangle(a, b, c image.Point) {
	z := s.z
	z.MoveTo(float32(a.X), float32(a.Y))
	z.LineTo(float32(b.X), float32(b.Y))
	z.LineTo(float32(c.X), float32(c.Y))
	z.ClosePath()
}

// fillCircle paints a filled circle inscribed in r.
func fillCircle(img *image.RGBA, r image.Rectangle, c Color) {
	if r.Empty() {
		return
	}
	s := newShape(r)
	radius := float32(minimum(r.Dx(), r.Dy())) / 2
	s.circle(float32(r.Dx())/2, float32(r.Dy())/2, radius, false)
	s.paint(img, c)
}

// drawRing paints a circle outline of width n inscribed in r.
func drawRing(img *image.RGBA, r image.Rectangle, n int, c Color) {
	if r.Empty() {
		return
	}
	s := newShape(r)
	cx, cy := float32(r.Dx())/2, float32(r.Dy())/2
	radius := float32(minimum(r.Dx(), r.Dy())) / 2
	s.circle(cx, cy, radius, false)
	if inner := radius - float32(n); inner > 0 {
		s.circle(cx, cy, inner, true)
	}
	s.paint(img, c)
}

// fillRounded paints r with rounded corners.
func fillRounded(img *image.RGBA, r image.Rectangle, radius int, c Color) {
	if r.Empty() {
		return
	}
	radius = minimum(radius, minimum(r.Dx(), r.Dy())/2)
	s := newShape(r)
	s.roundedRect(float32(r.Dx()), float32(r.Dy()), float32(radius))
	s.paint(img, c)
}

// drawRoundedBorder draws a border of width n with rounded corners, on the inside of r.
func drawRoundedBorder(img *image.RGBA, r image.Rectangle, n, radius int, c Color) {
	if r.Empty() {
		return
	}
	radius = minimum(radius, minimum(r.Dx(), r.Dy())/2)
	s := newShape(r)
	w, h := float32(r.Dx()), float32(r.Dy())
	s.roundedRect(w, h, float32(radius))
	// inner outline, wound the other way
	fn := float32(n)
	ir := maximumf(0, float32(radius)-fn)
	k := ir * kappa
	z := s.z
	z.MoveTo(fn+ir, fn)
	z.CubeTo(fn+ir-k, fn, fn, fn+ir-k, fn, fn+ir)
	z.LineTo(fn, h-fn-ir)
	z.CubeTo(fn, h-fn-ir+k, fn+ir-k, h-fn, fn+ir, h-fn)
	z.LineTo(w-fn-ir, h-fn)
	z.CubeTo(w-fn-ir+k, h-fn, w-fn, h-fn-ir+k, w-fn, h-fn-ir)
	z.LineTo(w-fn, fn+ir)
	z.CubeTo(w-fn, fn+ir-k, w-fn-ir+k, fn, w-fn-ir, fn)
	z.ClosePath()
	s.paint(img, c)
}

// drawCheck paints a check mark inside r.
func drawCheck(img *image.RGBA, r image.Rectangle, c Color) {
	if r.Empty() {
		return
	}
	s := newShape(r)
	w, h := float32(r.Dx()), float32(r.Dy())
	thickness := maximumf(1.5, w/6)
	s.segment(0, 2*h/3, w/3, h, thickness)
	s.segment(w/3, h, w, 0, thickness)
	s.paint(img, c)
}

func maximumf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
