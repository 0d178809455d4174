package glide

import (
	"image"
)

// Space is the padding around content, as used by text widgets.
type Space struct {
	Top, Right, Bottom, Left int
}

func (s Space) Inset(r image.Rectangle) image.Rectangle {
	return image.Rect(r.Min.X+s.Left, r.Min.Y+s.Top, r.Max.X-s.Right, r.Max.Y-s.Bottom)
}

func SpaceXY(x, y int) Space {
	return Space{y, x, y, x}
}
