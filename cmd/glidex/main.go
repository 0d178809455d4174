// Command glidex shows a glide markup file on a display.
//
// Backends: devdraw (plan9port), fbdev (linux framebuffer and evdev
// touchscreen), ebiten (desktop simulator) and mem (no display, for writing a
// screenshot with -png).
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/mjl-/glide"
	"github.com/mjl-/glide/devdraw"
	"github.com/mjl-/glide/ebitensim"
)

//go:embed sample.xml
var sample string

var (
	backend   = flag.String("backend", "ebiten", "display to use: devdraw, fbdev, ebiten, mem")
	sizeFlag  = flag.String("size", "480x272", "display size for devdraw, ebiten and mem")
	fit       = flag.Bool("fit", false, "grow windows smaller than the display to the display size")
	fbPath    = flag.String("fb", "/dev/fb0", "framebuffer device for fbdev")
	touchPath = flag.String("touch", "/dev/input/event0", "touchscreen device for fbdev")
	scale     = flag.Int("scale", 2, "window scale for ebiten")
	pngPath   = flag.String("png", "", "write the rendered screen to this file and exit")
	debug     = flag.Bool("debug", false, "log draws and touches")
)

func check(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %s\n", msg, err)
	}
}

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		log.Println("usage: glidex [flags] [file.xml]")
		flag.PrintDefaults()
	}
	flag.Parse()
	args := flag.Args()
	if len(args) > 1 {
		flag.Usage()
		os.Exit(2)
	}

	markup := sample
	if len(args) == 1 {
		buf, err := os.ReadFile(args[0])
		check(err, "read markup")
		markup = string(buf)
	}

	var size image.Point
	_, err := fmt.Sscanf(*sizeFlag, "%dx%d", &size.X, &size.Y)
	check(err, "parse -size")

	var display glide.Display
	var start func(g *glide.Glide)
	var done <-chan struct{}
	var sim *ebitensim.Simulator
	switch *backend {
	case "mem":
		display = glide.NewMemDisplay(size.X, size.Y)
		start = func(g *glide.Glide) {}
	case "devdraw":
		d, err := devdraw.New("glidex", size)
		check(err, "devdraw")
		display = d
		start = d.Start
		done = d.Done
	case "fbdev":
		display, start = openFbdev(*fbPath, *touchPath)
	case "ebiten":
		sim = ebitensim.New(size)
		display = sim
		start = func(g *glide.Glide) {}
	default:
		log.Fatalf("unknown backend %q\n", *backend)
	}

	g, err := glide.New(display, &glide.Options{FitToScreen: *fit})
	check(err, "new glide")
	g.DebugDraw = *debug
	g.DebugTouch = *debug

	w, err := g.LoadWindow(markup)
	check(err, "load window")
	wire(g, w)
	g.SetWindow(w)
	if *debug {
		w.Print()
	}

	if *pngPath != "" {
		f, err := os.Create(*pngPath)
		check(err, "create png")
		check(png.Encode(f, g.Screen()), "write png")
		check(f.Close(), "close png")
		return
	}

	start(g)
	if sim != nil {
		go loop(g, nil)
		check(sim.Run("glidex", *scale, g.Inputs), "run simulator")
		return
	}
	loop(g, done)
}

func loop(g *glide.Glide, done <-chan struct{}) {
	for {
		select {
		case e := <-g.Inputs:
			g.Input(e)
		case <-done:
			return
		}
	}
}

// wire sets callbacks on the widgets of the sample markup, where present.
func wire(g *glide.Glide, w *glide.Window) {
	if d, ok := uiOf[*glide.Dropdown](w, "fruit"); ok {
		d.Changed = func(index int, o glide.Option) (e glide.Event) {
			log.Printf("fruit %d: %s (%s)\n", index, o.Label, o.Value)
			return
		}
	}
	progress, _ := uiOf[*glide.ProgressBar](w, "progress")
	if b, ok := uiOf[*glide.Button](w, "ok"); ok {
		b.Click = func() (e glide.Event) {
			if progress != nil {
				progress.Value = (progress.Value + 10) % (progress.MaxValue + 10)
				g.MarkDraw(progress)
			}
			return
		}
	}
	if b, ok := uiOf[*glide.Button](w, "reset"); ok {
		b.Click = func() (e glide.Event) {
			if progress != nil {
				progress.Value = 0
				g.MarkDraw(progress)
			}
			return
		}
	}
	for _, name := range []string{"small", "large"} {
		if rb, ok := uiOf[*glide.Radiobutton](w, name); ok {
			rb.Changed = func(value string) (e glide.Event) {
				log.Printf("size %s\n", value)
				return
			}
		}
	}
}

func uiOf[T glide.UI](w *glide.Window, name string) (T, bool) {
	var zero T
	k := w.ChildByName(name)
	if k == nil {
		return zero, false
	}
	ui, ok := k.UI.(T)
	return ui, ok
}
