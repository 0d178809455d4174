//go:build !linux

package main

import (
	"log"

	"github.com/mjl-/glide"
)

func openFbdev(fbPath, touchPath string) (glide.Display, func(g *glide.Glide)) {
	log.Fatalf("fbdev backend is only available on linux\n")
	return nil, nil
}
