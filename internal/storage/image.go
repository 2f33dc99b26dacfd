package storage

import (
	"bytes"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	// Uploaded images are bounded to this edge length before storage.
	maxDimension = 1600

	webpQuality = 85
)

// ProcessImage decodes an uploaded image, scales it down to fit
// maxDimension (never up), and re-encodes it as WebP.
func ProcessImage(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := FitWithin(bounds.Dx(), bounds.Dy(), maxDimension)

	img := src
	if w != bounds.Dx() || h != bounds.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// FitWithin returns the dimensions of w x h scaled to fit inside a
// max x max square, preserving aspect ratio. Images already inside the
// box keep their size.
func FitWithin(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}

	if w >= h {
		scaled := h * max / w
		if scaled < 1 {
			scaled = 1
		}
		return max, scaled
	}

	scaled := w * max / h
	if scaled < 1 {
		scaled = 1
	}
	return scaled, max
}
