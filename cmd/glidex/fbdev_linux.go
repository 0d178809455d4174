package main

import (
	"log"

	"github.com/mjl-/glide"
	"github.com/mjl-/glide/fbdev"
)

func openFbdev(fbPath, touchPath string) (glide.Display, func(g *glide.Glide)) {
	fb, err := fbdev.Open(fbPath)
	check(err, "open framebuffer")
	ts, err := fbdev.OpenTouch(touchPath, fb.Size())
	if err != nil {
		log.Printf("no touchscreen: %s\n", err)
		return fb, func(g *glide.Glide) {}
	}
	return fb, func(g *glide.Glide) {
		ts.Start(g.Inputs)
	}
}
