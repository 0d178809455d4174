// Package fbdev shows glide windows on a Linux framebuffer device, and reads
// touches from an evdev touchscreen.
package fbdev

import (
	"encoding/binary"
	"fmt"
	"image"

	"github.com/mjl-/glide"
)

// Bitfield is the position of a color channel in a pixel.
type Bitfield struct {
	Offset uint32
	Length uint32
}

// PixelFormat describes how a pixel is stored in framebuffer memory, little-endian.
type PixelFormat struct {
	BitsPerPixel int
	Red          Bitfield
	Green        Bitfield
	Blue         Bitfield
}

var (
	RGB565   = PixelFormat{16, Bitfield{11, 5}, Bitfield{5, 6}, Bitfield{0, 5}}
	XRGB8888 = PixelFormat{32, Bitfield{16, 8}, Bitfield{8, 8}, Bitfield{0, 8}}
)

func (f PixelFormat) check() error {
	if f.BitsPerPixel != 16 && f.BitsPerPixel != 32 {
		return fmt.Errorf("unsupported bits per pixel %d", f.BitsPerPixel)
	}
	for _, b := range []Bitfield{f.Red, f.Green, f.Blue} {
		if b.Length > 8 || b.Offset+b.Length > uint32(f.BitsPerPixel) {
			return fmt.Errorf("unsupported color bitfield %+v", b)
		}
	}
	return nil
}

func channel(v uint8, b Bitfield) uint32 {
	return uint32(v) >> (8 - b.Length) << b.Offset
}

// Pack returns the pixel value for a color.
func (f PixelFormat) Pack(r, g, b uint8) uint32 {
	return channel(r, f.Red) | channel(g, f.Green) | channel(b, f.Blue)
}

// Convert writes the pixels of r in img to dst, framebuffer memory with
// stride bytes per line. Alpha is ignored.
func (f PixelFormat) Convert(dst []byte, stride int, img *image.RGBA, r image.Rectangle) {
	r = r.Intersect(img.Rect)
	bpp := f.BitsPerPixel / 8
	for y := r.Min.Y; y < r.Max.Y; y++ {
		s := img.PixOffset(r.Min.X, y)
		o := y*stride + r.Min.X*bpp
		for x := r.Min.X; x < r.Max.X; x++ {
			v := f.Pack(img.Pix[s], img.Pix[s+1], img.Pix[s+2])
			if bpp == 2 {
				binary.LittleEndian.PutUint16(dst[o:], uint16(v))
			} else {
				binary.LittleEndian.PutUint32(dst[o:], v)
			}
			s += 4
			o += bpp
		}
	}
}

// Linux input event types and codes.
const (
	evSyn = 0x00
	evKey = 0x01
	evAbs = 0x03

	synReport = 0x00
	btnTouch  = 0x14a

	absX            = 0x00
	absY            = 0x01
	absMTPositionX  = 0x35
	absMTPositionY  = 0x36
	absMTTrackingID = 0x39
)

// Event is a Linux input_event.
type Event struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

// ParseEvent parses a little-endian input_event from b, whose timeval fields are
// timevalSize bytes, 16 on 64-bit systems and 8 on 32-bit systems.
func ParseEvent(b []byte, timevalSize int) (e Event, err error) {
	if len(b) < timevalSize+8 {
		return e, fmt.Errorf("short input event, %d bytes", len(b))
	}
	switch timevalSize {
	case 16:
		e.Sec = int64(binary.LittleEndian.Uint64(b[0:]))
		e.Usec = int64(binary.LittleEndian.Uint64(b[8:]))
	case 8:
		e.Sec = int64(int32(binary.LittleEndian.Uint32(b[0:])))
		e.Usec = int64(int32(binary.LittleEndian.Uint32(b[4:])))
	default:
		return e, fmt.Errorf("bad timeval size %d", timevalSize)
	}
	b = b[timevalSize:]
	e.Type = binary.LittleEndian.Uint16(b[0:])
	e.Code = binary.LittleEndian.Uint16(b[2:])
	e.Value = int32(binary.LittleEndian.Uint32(b[4:]))
	return e, nil
}

// Axis is the range a touchscreen reports for a coordinate.
type Axis struct {
	Min, Max int32
}

func (a Axis) scale(v int32, size int) int {
	var p int
	if a.Max <= a.Min {
		p = int(v)
	} else {
		p = int(int64(v-a.Min) * int64(size-1) / int64(a.Max-a.Min))
	}
	if p < 0 {
		return 0
	}
	if p >= size {
		return size - 1
	}
	return p
}

// Decoder turns input events from a single-touch or multi-touch screen into touches.
// Coordinates are scaled from the axis ranges to the screen.
type Decoder struct {
	X, Y   Axis
	Screen image.Point

	tracker glide.TouchTracker
	x, y    int32
	down    bool
}

// Event processes e. At each report, it returns the touch, if any.
func (d *Decoder) Event(e Event) (glide.Touch, bool) {
	switch e.Type {
	case evAbs:
		switch e.Code {
		case absX, absMTPositionX:
			d.x = e.Value
		case absY, absMTPositionY:
			d.y = e.Value
		case absMTTrackingID:
			d.down = e.Value >= 0
		}
	case evKey:
		if e.Code == btnTouch {
			d.down = e.Value != 0
		}
	case evSyn:
		if e.Code == synReport {
			p := image.Pt(d.X.scale(d.x, d.Screen.X), d.Y.scale(d.y, d.Screen.Y))
			msec := uint32(e.Sec*1000 + e.Usec/1000)
			return d.tracker.Update(p, d.down, msec)
		}
	}
	return glide.Touch{}, false
}
