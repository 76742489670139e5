package emojitext

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"
	"testing/fstest"
	"unicode/utf8"

	"github.com/gogpu/emojitext/asset"
)

// Test asset names in the Apple Color Emoji naming convention.
const (
	thumbsBase  = "u1F44D.0.png"
	thumbsTone3 = "u1F44D.3.png"
	toneMedium  = "u1F3FD.png"
	toneLight   = "u1F3FB.png"
	heart       = "u2764.png"
	grinning    = "u1F600.png"
)

// testAssetNames is the default fixture set. Note there is no u1F44D.1.png.
var testAssetNames = []string{thumbsBase, thumbsTone3, toneMedium, toneLight, heart, grinning}

// solidPNG encodes a w x h opaque image of color c.
func solidPNG(t testing.TB, w, h int, c color.Color) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// newTestCatalog builds a catalog of 64x64 red images with the given names.
func newTestCatalog(t testing.TB, names ...string) *asset.Catalog {
	t.Helper()

	if len(names) == 0 {
		names = testAssetNames
	}
	fsys := make(fstest.MapFS, len(names))
	for _, name := range names {
		fsys[name] = &fstest.MapFile{Data: solidPNG(t, 64, 64, color.NRGBA{R: 255, A: 255})}
	}
	return asset.NewCatalog(asset.FS(fsys))
}

// drawCall records one Face.Draw call.
type drawCall struct {
	text string
	x, y float64
}

// fakeFace gives every rune the same advance and records draws.
type fakeFace struct {
	advance float64
	height  float64
	draws   []drawCall
}

func newFakeFace() *fakeFace {
	return &fakeFace{advance: 10, height: 20}
}

func (f *fakeFace) Measure(s string) (float64, float64) {
	return f.advance * float64(utf8.RuneCountInString(s)), f.height
}

func (f *fakeFace) Draw(dst draw.Image, s string, x, y float64, col color.Color) {
	f.draws = append(f.draws, drawCall{text: s, x: x, y: y})
}

// newTestRenderer creates a renderer over the default fixtures.
func newTestRenderer(t testing.TB, opts ...Option) (*Renderer, *fakeFace) {
	t.Helper()

	face := newFakeFace()
	r, err := NewRenderer(newTestCatalog(t), face, opts...)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r, face
}

// summarize describes runs as "T:<text>" and "G:<asset>" strings.
func summarize(runs []Run) []string {
	out := make([]string, len(runs))
	for i, r := range runs {
		switch r.Kind {
		case RunGlyph:
			out[i] = "G:" + r.Glyph.Asset
		default:
			out[i] = "T:" + r.Text
		}
	}
	return out
}

// summarizeUnits describes units the same way as summarize.
func summarizeUnits(units []Unit) []string {
	out := make([]string, len(units))
	for i, u := range units {
		switch u.Kind {
		case UnitGlyph:
			out[i] = "G:" + u.Glyph.Asset
		default:
			out[i] = "T:" + u.Text
		}
	}
	return out
}

// failingAssets resolves every key but fails to list or load on demand.
type failingAssets struct {
	resolveErr error
	loadErr    error
}

func (a failingAssets) Resolve(key string) (string, bool, error) {
	if a.resolveErr != nil {
		return "", false, a.resolveErr
	}
	return key + ".png", true, nil
}

func (a failingAssets) Load(id string, size image.Point) (image.Image, error) {
	if a.loadErr != nil {
		return nil, fmt.Errorf("load %s: %w", id, a.loadErr)
	}
	return image.NewNRGBA(image.Rectangle{Max: size}), nil
}
