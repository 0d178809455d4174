package glide

import (
	"fmt"
	"image"
	"log"
	"sync"
	"time"
)

// Display shows frames. Flush is called with the screen image and the part of
// it that changed.
type Display interface {
	Size() image.Point
	Flush(img *image.RGBA, r image.Rectangle) error
}

type InputType byte

const (
	InputTouch = InputType(iota)
	InputFunc
	InputError
)

// Input is an event for Glide.Input, as produced by backends.
type Input struct {
	Type  InputType
	Touch Touch
	Func  func()
	Error error
}

// Options change the behaviour of New.
type Options struct {
	FitToScreen bool       // grow windows smaller than the screen to the screen size
	Fonts       *Resources // DefaultResources if nil
	Background  Color      // of the screen outside the window, white if zero
}

// Glide shows one window at a time on a display and feeds it touches.
// All methods must be called from the goroutine that runs the event loop,
// typically:
//
//	for {
//		select {
//		case e := <-g.Inputs:
//			g.Input(e)
//		}
//	}
type Glide struct {
	Inputs      chan Input  // backends send touches and errors here
	Call        chan func() // functions sent here will go through Inputs and run by Input() in the main event loop. for code that changes UI state.
	Display     Display
	Fonts       *Resources
	FitToScreen bool
	Background  Color

	DebugDraw  bool // UIs print each draw they do
	DebugTouch bool // print each touch dispatched
	LogTiming  bool // print time spent drawing and flushing

	screen    *image.RGBA
	window    *Window
	stop      chan struct{}
	closeOnce sync.Once
}

// New returns a Glide showing on display.
func New(display Display, opts *Options) (*Glide, error) {
	if opts == nil {
		opts = &Options{}
	}
	if display == nil {
		return nil, fmt.Errorf("%w: nil display", ErrArgument)
	}
	size := display.Size()
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%w: display size %v", ErrArgument, size)
	}
	fonts := opts.Fonts
	if fonts == nil {
		var err error
		fonts, err = DefaultResources()
		if err != nil {
			return nil, err
		}
	}
	g := &Glide{
		Inputs:      make(chan Input, 1),
		Call:        make(chan func(), 1),
		Display:     display,
		Fonts:       fonts,
		FitToScreen: opts.FitToScreen,
		Background:  opts.Background,
		screen:      image.NewRGBA(rect(size)),
		stop:        make(chan struct{}),
	}
	if g.Background == 0 {
		g.Background = White
	}

	go func() {
		for {
			select {
			case fn := <-g.Call:
				select {
				case g.Inputs <- Input{Type: InputFunc, Func: fn}:
				case <-g.stop:
					return
				}
			case <-g.stop:
				return
			}
		}
	}()

	return g, nil
}

// Close stops forwarding Call. It does not close the display.
func (g *Glide) Close() {
	g.closeOnce.Do(func() {
		close(g.stop)
	})
}

func (g *Glide) ScreenSize() image.Point {
	return g.screen.Rect.Size()
}

// Screen returns the image windows are drawn on.
func (g *Glide) Screen() *image.RGBA {
	return g.screen
}

// SetScreenSize replaces the screen image, after the display changed size.
// With FitToScreen, a window smaller than the new size grows to it.
func (g *Glide) SetScreenSize(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("%w: screen size %v", ErrArgument, size)
	}
	g.screen = image.NewRGBA(rect(size))
	if w := g.window; w != nil {
		if ws := w.Size(); g.FitToScreen && (ws.X < size.X || ws.Y < size.Y) {
			w.Resize(size.X, size.Y)
		}
		w.Top.Draw = Dirty
	}
	return nil
}

// SetWindow makes w the window that is shown and receives touches, and draws it.
// A popup open on the previous window is closed.
func (g *Glide) SetWindow(w *Window) {
	if old := g.window; old != nil && old != w {
		old.CloseList()
		old.Glide = nil
	}
	g.window = w
	if w != nil {
		w.Glide = g
		w.Top.Draw = Dirty
	}
	g.Render()
}

func (g *Glide) Window() *Window {
	return g.window
}

// ChildByName looks up a kid in the current window.
func (g *Glide) ChildByName(id string) *Kid {
	if g.window == nil {
		return nil
	}
	return g.window.ChildByName(id)
}

// Input handles an event from Inputs.
func (g *Glide) Input(e Input) {
	switch e.Type {
	case InputTouch:
		g.Touch(e.Touch)
	case InputFunc:
		e.Func()
		g.Render()
	case InputError:
		log.Printf("glide: error from backend: %s\n", e.Error)
	}
}

// Touch dispatches t to the window and draws what changed.
func (g *Glide) Touch(t Touch) {
	if g.window == nil {
		return
	}
	g.window.Touch(t)
	g.Render()
}

// MarkDraw schedules a draw of ui, for the next Render.
func (g *Glide) MarkDraw(ui UI) {
	if g.window != nil {
		g.window.MarkDraw(ui)
	}
}

// Render draws what changed in the window and flushes it to the display.
// Without changes it does nothing, so marks made before a render are drawn and flushed once.
func (g *Glide) Render() {
	w := g.window
	if w == nil || w.Top.Draw == Clean {
		return
	}
	var t0, t1 time.Time
	if g.LogTiming {
		t0 = time.Now()
	}
	force := w.Top.Draw == Dirty
	if force {
		fill(g.screen, g.screen.Rect, g.Background)
	}
	clip := g.screen.SubImage(w.Top.R).(*image.RGBA)
	w.Top.UI.Draw(w, &w.Top, clip, image.ZP, force)
	w.Top.Draw = Clean
	if g.LogTiming {
		t1 = time.Now()
	}
	if err := g.Display.Flush(g.screen, g.screen.Rect); err != nil {
		log.Printf("glide: flush: %s\n", err)
	}
	if g.LogTiming {
		t2 := time.Now()
		log.Printf("glide: time draw: draw %d µs flush %d µs\n", t1.Sub(t0)/time.Microsecond, t2.Sub(t1)/time.Microsecond)
	}
}
