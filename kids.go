package glide

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
)

// Kid holds a UI and its position and draw state within a Canvas.
type Kid struct {
	UI UI

	ID       string          // Name from the markup, may be empty.
	R        image.Rectangle // Relative to the parent.
	Hidden   bool            // Hidden kids are neither drawn nor hit.
	Disabled bool            // Disabled kids are drawn, but swallow touches.
	Alpha    uint8           // 255 is opaque.
	Draw     State

	parent *Canvas // set while attached, not owning
}

// NewKid returns an opaque visible kid at r.
func NewKid(id string, r image.Rectangle, ui UI) *Kid {
	return &Kid{UI: ui, ID: id, R: r, Alpha: 255}
}

// Mark checks if o is its UI, and if so marks it as needing a draw.
func (k *Kid) Mark(o UI) (marked bool) {
	if o != k.UI {
		return false
	}
	k.Draw = Dirty
	return true
}

// Attached returns whether the kid is currently in a canvas.
func (k *Kid) Attached() bool {
	return k.parent != nil
}

func propagateEvent(self *Kid, r *Result, e Event) {
	if e.NeedDraw {
		self.Draw = Dirty
	}
	r.Consumed = e.Consumed || r.Consumed
}

// KidsDraw draws kids on img, at their positions offset by orig.
// With a full draw the background is painted first. Otherwise only the area of
// dirty kids is repainted, including every other kid that overlaps that area.
func KidsDraw(w *Window, self *Kid, kids []*Kid, background Color, img *image.RGBA, orig image.Point, force bool) {
	w.debugDraw("Kids", self)

	if force || self.Draw == Dirty {
		fill(img, rect(self.R.Size()).Add(orig), background)
		for _, k := range kids {
			if !k.Hidden {
				kidDraw(w, k, img, orig, true)
			}
			k.Draw = Clean
		}
		self.Draw = Clean
		return
	}
	if self.Draw == Clean {
		return
	}

	for _, k := range kids {
		if k.Draw == Clean {
			continue
		}
		r := k.R.Add(orig).Intersect(img.Rect)
		if r.Empty() {
			k.Draw = Clean
			continue
		}
		clip := img.SubImage(r).(*image.RGBA)
		fill(clip, r, background)
		for _, kk := range kids {
			if kk.Hidden || !kk.R.Add(orig).Overlaps(r) {
				continue
			}
			kidDraw(w, kk, clip, orig, true)
		}
		k.Draw = Clean
	}
	self.Draw = Clean
}

func kidDraw(w *Window, k *Kid, img *image.RGBA, orig image.Point, force bool) {
	if k.Alpha == 255 {
		k.UI.Draw(w, k, img, orig.Add(k.R.Min), force)
		return
	}
	if k.Alpha == 0 {
		return
	}
	// translucent: draw the kid on a scratch image and blend it in
	r := k.R.Add(orig).Intersect(img.Rect)
	if r.Empty() {
		return
	}
	scratch := image.NewRGBA(r)
	draw.Draw(scratch, r, img, r.Min, draw.Src)
	k.UI.Draw(w, k, scratch, orig.Add(k.R.Min), force)
	draw.DrawMask(img, r, scratch, r.Min, image.NewUniform(color.Alpha{A: k.Alpha}), image.ZP, draw.Over)
}

// KidsMark marks o if it is self or one of the kids, and marks self DirtyKid when it is found in a kid.
func KidsMark(self *Kid, kids []*Kid, o UI) (marked bool) {
	if self.Mark(o) {
		return true
	}
	for _, k := range kids {
		if !k.UI.Mark(k, o) {
			continue
		}
		if self.Draw == Clean {
			self.Draw = DirtyKid
		}
		return true
	}
	return false
}

func KidsPrint(kids []*Kid, indent int) {
	for _, k := range kids {
		k.UI.Print(k, indent)
	}
}

func PrintUI(s string, self *Kid, indent int) {
	indentStr := ""
	if indent > 0 {
		indentStr = fmt.Sprintf("%*s", indent*2, " ")
	}
	log.Printf("glide: %s%s %q r %v draw=%d\n", indentStr, s, self.ID, self.R, self.Draw)
}
