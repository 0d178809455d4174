package glide

import (
	"image"
	"image/draw"
)

// MemDisplay is a display in memory, for tests and headless use.
type MemDisplay struct {
	Image   *image.RGBA
	Flushes int // number of Flush calls
}

func NewMemDisplay(width, height int) *MemDisplay {
	return &MemDisplay{Image: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (d *MemDisplay) Size() image.Point {
	return d.Image.Rect.Size()
}

func (d *MemDisplay) Flush(img *image.RGBA, r image.Rectangle) error {
	draw.Draw(d.Image, r, img, r.Min, draw.Src)
	d.Flushes++
	return nil
}
