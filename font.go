package glide

import (
	"fmt"
	"image"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font is a named face in the resource table.
type Font struct {
	Name string
	Face font.Face
}

// Height is the line height in pixels.
func (f *Font) Height() int {
	return f.Face.Metrics().Height.Ceil()
}

func (f *Font) Ascent() int {
	return f.Face.Metrics().Ascent.Ceil()
}

func (f *Font) StringWidth(s string) int {
	return font.MeasureString(f.Face, s).Ceil()
}

// draw draws s with the top-left of its line box at p.
func (f *Font) draw(img *image.RGBA, p image.Point, c Color, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  c.uniform(),
		Face: f.Face,
		Dot:  fixed.P(p.X, p.Y+f.Ascent()),
	}
	d.DrawString(s)
}

// Resources holds the fonts and bitmaps that markup refers to by index or name.
type Resources struct {
	Fonts       []*Font
	DefaultFont int // index used when markup names no font
	Bitmaps     map[string]image.Image
}

var defaultSizes = []float64{8, 10, 12, 14, 16, 18, 20, 24, 32, 48}

// DefaultResources returns the Go fonts: "regular8" to "regular48" at indices
// 0 to 9, "bold8" to "bold48" at 10 to 19, and "basic", the 7x13 fixed font, at 20.
func DefaultResources() (*Resources, error) {
	res := &Resources{
		DefaultFont: 4,
		Bitmaps:     map[string]image.Image{},
	}
	for _, ttf := range []struct {
		name string
		data []byte
	}{
		{"regular", goregular.TTF},
		{"bold", gobold.TTF},
	} {
		f, err := opentype.Parse(ttf.data)
		if err != nil {
			return nil, fmt.Errorf("parsing font %s: %w", ttf.name, err)
		}
		for _, size := range defaultSizes {
			face, err := opentype.NewFace(f, &opentype.FaceOptions{
				Size:    size,
				DPI:     72,
				Hinting: font.HintingFull,
			})
			if err != nil {
				return nil, fmt.Errorf("face %s %v: %w", ttf.name, size, err)
			}
			res.Fonts = append(res.Fonts, &Font{fmt.Sprintf("%s%d", ttf.name, int(size)), face})
		}
	}
	res.Fonts = append(res.Fonts, basicFont)
	return res, nil
}

// Font looks up a font by decimal index or by name.
func (r *Resources) Font(s string) (*Font, error) {
	if i, err := strconv.Atoi(s); err == nil {
		if i < 0 || i >= len(r.Fonts) {
			return nil, fmt.Errorf("%w: font index %d", ErrResourceNotFound, i)
		}
		return r.Fonts[i], nil
	}
	for _, f := range r.Fonts {
		if f.Name == s {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: font %q", ErrResourceNotFound, s)
}

// Default returns the default font, or nil without fonts.
func (r *Resources) Default() *Font {
	if r.DefaultFont < 0 || r.DefaultFont >= len(r.Fonts) {
		return nil
	}
	return r.Fonts[r.DefaultFont]
}

func (r *Resources) Bitmap(name string) (image.Image, error) {
	img, ok := r.Bitmaps[name]
	if !ok {
		return nil, fmt.Errorf("%w: bitmap %q", ErrResourceNotFound, name)
	}
	return img, nil
}

// font returns f, or the default font when f is nil.
func (w *Window) font(f *Font) *Font {
	if f != nil {
		return f
	}
	if w != nil && w.Glide != nil {
		if d := w.Glide.Fonts.Default(); d != nil {
			return d
		}
	}
	return basicFont
}

var basicFont = &Font{"basic", basicfont.Face7x13}
