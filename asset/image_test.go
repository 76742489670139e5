package asset

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name string
		src  image.Point
		size image.Point
		want image.Point
	}{
		{"square down", image.Pt(160, 160), image.Pt(40, 40), image.Pt(40, 40)},
		{"wide keeps aspect", image.Pt(200, 100), image.Pt(50, 50), image.Pt(50, 25)},
		{"tall keeps aspect", image.Pt(100, 200), image.Pt(50, 50), image.Pt(25, 50)},
		{"never upsizes", image.Pt(10, 10), image.Pt(40, 40), image.Pt(10, 10)},
		{"exact fit", image.Pt(40, 40), image.Pt(40, 40), image.Pt(40, 40)},
		{"unbounded width", image.Pt(100, 50), image.Pt(0, 25), image.Pt(50, 25)},
		{"tiny result clamped to 1", image.Pt(1000, 1), image.Pt(10, 10), image.Pt(10, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewNRGBA(image.Rectangle{Max: tt.src})
			got := Thumbnail(src, tt.size).Bounds().Size()
			if got != tt.want {
				t.Errorf("Thumbnail(%v, %v) = %v, want %v", tt.src, tt.size, got, tt.want)
			}
		})
	}
}

func TestThumbnailKeepsColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			src.Set(x, y, color.NRGBA{R: 200, A: 255})
		}
	}

	dst := Thumbnail(src, image.Pt(16, 16))
	r, g, b, a := dst.At(8, 8).RGBA()
	if a>>8 != 255 || r>>8 < 190 || g != 0 || b != 0 {
		t.Errorf("center pixel = (%d,%d,%d,%d), want opaque red", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestDecode(t *testing.T) {
	img, err := Decode(bytes.NewReader(pngBytes(t, 3, 2, color.Black)))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(3, 2) {
		t.Errorf("decoded size = %v, want (3,2)", got)
	}

	if _, err := Decode(bytes.NewReader([]byte("garbage"))); err == nil {
		t.Error("Decode(garbage) returned nil error")
	}
}
