// Package ebitensim runs glide windows in a desktop window with ebiten, taking
// touches from a touchscreen or the left mouse button.
package ebitensim

import (
	"image"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mjl-/glide"
)

// Simulator implements glide.Display and ebiten.Game.
type Simulator struct {
	size   image.Point
	inputs chan<- glide.Input
	start  time.Time

	mu    sync.Mutex
	frame []byte // rgba pixels of the last flush
	dirty bool

	img      *ebiten.Image
	tracker  glide.TouchTracker
	touchID  ebiten.TouchID
	touching bool
}

var _ glide.Display = &Simulator{}
var _ ebiten.Game = &Simulator{}

// New returns a simulator for a display of size.
func New(size image.Point) *Simulator {
	return &Simulator{
		size:  size,
		frame: make([]byte, 4*size.X*size.Y),
		start: time.Now(),
	}
}

func (s *Simulator) Size() image.Point {
	return s.size
}

// Flush copies img for the next ebiten draw. It is called from the glide event loop.
func (s *Simulator) Flush(img *image.RGBA, r image.Rectangle) error {
	r = r.Intersect(img.Rect).Intersect(image.Rectangle{image.ZP, s.size})
	s.mu.Lock()
	defer s.mu.Unlock()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		o := 4 * (y*s.size.X + r.Min.X)
		copy(s.frame[o:o+4*r.Dx()], img.Pix[i:i+4*r.Dx()])
	}
	s.dirty = true
	return nil
}

// pointer returns the position of the tracked touch, or else of the mouse, and whether it is pressed.
func (s *Simulator) pointer() (image.Point, bool) {
	if !s.touching {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			s.touchID = ids[0]
			s.touching = true
		}
	}
	if s.touching {
		if inpututil.IsTouchJustReleased(s.touchID) {
			s.touching = false
			x, y := inpututil.TouchPositionInPreviousTick(s.touchID)
			return image.Pt(x, y), false
		}
		x, y := ebiten.TouchPosition(s.touchID)
		return image.Pt(x, y), true
	}
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// Update sends touches to glide.
func (s *Simulator) Update() error {
	p, pressed := s.pointer()
	msec := uint32(time.Since(s.start) / time.Millisecond)
	if t, ok := s.tracker.Update(p, pressed, msec); ok && s.inputs != nil {
		s.inputs <- glide.Input{Type: glide.InputTouch, Touch: t}
	}
	return nil
}

func (s *Simulator) Draw(screen *ebiten.Image) {
	if s.img == nil {
		s.img = ebiten.NewImage(s.size.X, s.size.Y)
	}
	s.mu.Lock()
	if s.dirty {
		s.img.WritePixels(s.frame)
		s.dirty = false
	}
	s.mu.Unlock()
	screen.DrawImage(s.img, nil)
}

func (s *Simulator) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.size.X, s.size.Y
}

// Run shows the window and sends touches to inputs until the window is
// closed. It must be called from the main goroutine.
func (s *Simulator) Run(title string, scale int, inputs chan<- glide.Input) error {
	s.inputs = inputs
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(s.size.X*scale, s.size.Y*scale)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(s)
}
