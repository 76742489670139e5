package fontface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Sentinel errors for the fontface package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontface: empty font data")

	// ErrInvalidSize is returned for a non-positive face size.
	ErrInvalidSize = errors.New("fontface: size must be positive")
)

// Metrics holds font metrics at the face size, in pixels.
type Metrics struct {
	// Ascent is the distance from the top of the line box to the baseline.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the line
	// box (positive).
	Descent float64

	// Height is the recommended distance between consecutive baselines.
	Height float64
}

// LineHeight returns the height of the line box (ascent + descent).
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent
}

// Face is a font at a fixed size.
type Face struct {
	face    font.Face
	shaper  *shaper
	size    float64
	metrics Metrics
}

// New parses TrueType or OpenType font data and creates a face of the given
// size in pixels (72 DPI).
func New(data []byte, size float64, opts ...Option) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, ErrInvalidSize
	}

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontface: failed to parse font: %w", err)
	}

	otFace, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: mapHinting(config.hinting),
	})
	if err != nil {
		return nil, fmt.Errorf("fontface: failed to create face: %w", err)
	}

	f := &Face{face: otFace, size: size}

	m := otFace.Metrics()
	f.metrics = Metrics{
		Ascent:  fixedToFloat64(m.Ascent),
		Descent: fixedToFloat64(m.Descent),
		Height:  fixedToFloat64(m.Height),
	}

	if config.shaping {
		f.shaper, err = newShaper(data, config.language)
		if err != nil {
			_ = otFace.Close()
			return nil, err
		}
	}
	return f, nil
}

// Size returns the size of the face in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the font metrics at the face size.
func (f *Face) Metrics() Metrics {
	return f.metrics
}

// Measure returns the advance width of s and the height of its line box.
// The width is the distance Draw moves the pen.
func (f *Face) Measure(s string) (width, height float64) {
	height = math.Ceil(f.metrics.LineHeight())
	if s == "" {
		return 0, height
	}

	if f.shaper != nil {
		_, adv := f.shaper.layout(s, f.size)
		return fixedToFloat64(adv), height
	}
	return fixedToFloat64(font.MeasureString(f.face, s)), height
}

// Draw renders s with its line box's top-left corner at (x, y).
func (f *Face) Draw(dst draw.Image, s string, x, y float64, col color.Color) {
	if s == "" || dst == nil {
		return
	}
	f.draw(dst, s, x, y, col)
}

// draw renders s and returns how far it moved the pen.
//
// With shaping, every cluster is drawn at its shaped pen position, so the
// advance is the shaped advance Measure reports.
func (f *Face) draw(dst draw.Image, s string, x, y float64, col color.Color) fixed.Int26_6 {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f.face,
		Dot: fixed.Point26_6{
			X: floatToFixed(x),
			Y: floatToFixed(y + f.metrics.Ascent),
		},
	}
	start := d.Dot.X

	if f.shaper == nil {
		d.DrawString(s)
		return d.Dot.X - start
	}

	clusters, adv := f.shaper.layout(s, f.size)
	for _, c := range clusters {
		d.Dot.X = start + c.x
		d.DrawString(c.text)
	}
	return adv
}

// Close releases the resources of the face.
func (f *Face) Close() error {
	return f.face.Close()
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
