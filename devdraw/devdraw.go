// Package devdraw shows glide windows with plan9port devdraw, and turns
// mouse button 1 into touches.
package devdraw

import (
	"fmt"
	"image"
	"io"
	"log"

	"9fans.net/go/draw"

	"github.com/mjl-/glide"
)

// Display is a devdraw window, implementing glide.Display.
type Display struct {
	Done chan struct{} // closed when the window is closed

	display  *draw.Display
	mousectl *draw.Mousectl
	errch    chan error
	img      *draw.Image // screen-sized, pixels are loaded here before drawing on the window
	buf      []byte
}

var _ glide.Display = &Display{}

// New opens a window of size with label.
func New(label string, size image.Point) (*Display, error) {
	errch := make(chan error, 1)
	display, err := draw.Init(errch, "", label, fmt.Sprintf("%dx%d", size.X, size.Y))
	if err != nil {
		return nil, fmt.Errorf("devdraw init: %w", err)
	}
	d := &Display{
		Done:     make(chan struct{}),
		display:  display,
		mousectl: display.InitMouse(),
		errch:    errch,
	}
	return d, nil
}

func (d *Display) Size() image.Point {
	return d.display.ScreenImage.R.Size()
}

// Flush loads the pixels of r in img, and draws them on the window.
func (d *Display) Flush(img *image.RGBA, r image.Rectangle) error {
	r = r.Intersect(img.Rect)
	if r.Empty() {
		return nil
	}
	if d.img == nil || d.img.R != img.Rect {
		if d.img != nil {
			d.img.Free()
		}
		// image.RGBA is r,g,b,a in memory, devdraw calls that ABGR32
		ni, err := d.display.AllocImage(img.Rect, draw.ABGR32, false, draw.White)
		if err != nil {
			return fmt.Errorf("allocimage: %w", err)
		}
		d.img = ni
	}
	d.buf = rows(d.buf[:0], img, r)
	if _, err := d.img.Load(r, d.buf); err != nil {
		return fmt.Errorf("load image: %w", err)
	}
	screen := d.display.ScreenImage
	screen.Draw(r.Add(screen.R.Min), d.img, nil, r.Min)
	return d.display.Flush()
}

// rows appends the pixels of r in img to buf, without the stride gaps.
func rows(buf []byte, img *image.RGBA, r image.Rectangle) []byte {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		buf = append(buf, img.Pix[i:i+4*r.Dx()]...)
	}
	return buf
}

// touch converts a mouse sample, in screen coordinates, to a touch relative to origin.
func touch(tt *glide.TouchTracker, m draw.Mouse, origin image.Point) (glide.Touch, bool) {
	return tt.Update(m.Point.Sub(origin), m.Buttons&1 != 0, m.Msec)
}

// Start forwards mouse button 1 as touches to g, and resizes g's screen with the window.
// Done is closed when the window goes away.
func (d *Display) Start(g *glide.Glide) {
	go func() {
		var tt glide.TouchTracker
		for {
			select {
			case m := <-d.mousectl.C:
				if t, ok := touch(&tt, m, d.display.ScreenImage.R.Min); ok {
					g.Inputs <- glide.Input{Type: glide.InputTouch, Touch: t}
				}
			case <-d.mousectl.Resize:
				g.Inputs <- glide.Input{Type: glide.InputFunc, Func: func() {
					if err := d.display.Attach(draw.Refmesg); err != nil {
						log.Printf("glide: attach after resize: %s\n", err)
						return
					}
					if err := g.SetScreenSize(d.Size()); err != nil {
						log.Printf("glide: resize: %s\n", err)
					}
				}}
			case err := <-d.errch:
				if err == io.EOF {
					// devdraw disappeared, typically because the window was closed
					close(d.Done)
					return
				}
				g.Inputs <- glide.Input{Type: glide.InputError, Error: err}
			}
		}
	}()
}

func (d *Display) Close() error {
	return d.display.Close()
}
