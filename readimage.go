package glide

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
)

// ReadImage decodes a PNG, JPEG or GIF image from f. The returned image is ready for use in an Image UI.
func ReadImage(f io.Reader) (image.Image, error) {
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// ReadImagePath opens path and decodes it, applying the EXIF orientation of JPEG files.
func ReadImagePath(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return img, nil
}

// LoadBitmaps reads the images at paths into r.Bitmaps, keyed by name, for Image Src attributes.
func (r *Resources) LoadBitmaps(paths map[string]string) error {
	if r.Bitmaps == nil {
		r.Bitmaps = map[string]image.Image{}
	}
	for name, path := range paths {
		img, err := ReadImagePath(path)
		if err != nil {
			return err
		}
		r.Bitmaps[name] = img
	}
	return nil
}
