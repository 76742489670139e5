package asset

import (
	"image"
	_ "image/png" // PNG decoder for Decode
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Decode decodes an asset image in any registered format (PNG by default).
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

// Thumbnail scales img down to fit within size, preserving aspect ratio.
// Images that already fit are returned unchanged; Thumbnail never enlarges.
// A non-positive size component leaves that dimension unbounded.
func Thumbnail(img image.Image, size image.Point) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return img
	}

	scale := 1.0
	if size.X > 0 && w > size.X {
		scale = float64(size.X) / float64(w)
	}
	if size.Y > 0 && h > size.Y {
		scale = math.Min(scale, float64(size.Y)/float64(h))
	}
	if scale >= 1 {
		return img
	}

	nw := fit(float64(w)*scale, size.X)
	nh := fit(float64(h)*scale, size.Y)

	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	// Catmull-Rom gives smooth downscaling of emoji bitmaps.
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// fit rounds a scaled dimension to at least 1 and at most limit.
func fit(v float64, limit int) int {
	n := max(int(math.Round(v)), 1)
	if limit > 0 && n > limit {
		n = limit
	}
	return n
}
