package glide

import (
	"fmt"
	"image"
	"image/color"
)

// Color is 0xRRGGBBAA, not premultiplied, like draw.Color.
type Color uint32

const (
	Black       Color = 0x000000ff
	White       Color = 0xffffffff
	Transparent Color = 0x00000000
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xff)
}

func (c Color) channels() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	cr, cg, cb, ca := c.channels()
	a = uint32(ca) * 0x101
	r = uint32(cr) * 0x101 * a / 0xffff
	g = uint32(cg) * 0x101 * a / 0xffff
	b = uint32(cb) * 0x101 * a / 0xffff
	return
}

func (c Color) Alpha() uint8 {
	return uint8(c)
}

func (c Color) WithAlpha(a uint8) Color {
	return c&^0xff | Color(a)
}

// Hex returns the color as lower-case "rrggbb", the form ToColor parses.
func (c Color) Hex() string {
	return fmt.Sprintf("%06x", uint32(c)>>8)
}

func (c Color) String() string {
	return fmt.Sprintf("%08x", uint32(c))
}

func (c Color) uniform() *image.Uniform {
	return image.NewUniform(color.Color(c))
}

// blend mixes c toward o by amount/256, keeping c's alpha.
func (c Color) blend(o Color, amount int) Color {
	amount = clamp(amount, 0, 256)
	cr, cg, cb, ca := c.channels()
	or, og, ob, _ := o.channels()
	mix := func(a, b uint8) uint8 {
		return uint8((int(a)*(256-amount) + int(b)*amount) / 256)
	}
	return RGB(mix(cr, or), mix(cg, og), mix(cb, ob)).WithAlpha(ca)
}
