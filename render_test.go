package emojitext

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/emojitext/wrap"
)

func TestNewRendererErrors(t *testing.T) {
	assets := newTestCatalog(t)
	face := newFakeFace()

	tests := []struct {
		name    string
		assets  Assets
		face    Face
		opts    []Option
		wantErr error
	}{
		{"nil assets", nil, face, nil, ErrNilAssets},
		{"nil face", assets, nil, nil, ErrNilFace},
		{"zero columns", assets, face, []Option{WithColumns(0)}, wrap.ErrIllegalWidth},
		{"negative columns", assets, face, []Option{WithColumns(-3)}, wrap.ErrIllegalWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRenderer(tt.assets, tt.face, tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewRenderer error = %v, want %v", err, tt.wantErr)
			}
			if r != nil {
				t.Error("NewRenderer returned a renderer with an error")
			}
		})
	}
}

func TestRendererSizes(t *testing.T) {
	r, _ := newTestRenderer(t)
	if got := r.LineHeight(); got != 20 {
		t.Errorf("LineHeight() = %v, want 20", got)
	}
	if got := r.EmojiSize(); got != image.Pt(20, 20) {
		t.Errorf("EmojiSize() = %v, want (20,20)", got)
	}

	r, _ = newTestRenderer(t, WithEmojiSize(32, 16))
	if got := r.EmojiSize(); got != image.Pt(32, 16) {
		t.Errorf("EmojiSize() = %v, want (32,16)", got)
	}
	units, err := r.Units("\U0001F600")
	if err != nil {
		t.Fatalf("Units error: %v", err)
	}
	if g := units[0].Glyph; g.Width != 16 || g.Height != 16 {
		t.Errorf("glyph size = %dx%d, want 16x16", g.Width, g.Height)
	}
}

func newCanvas(w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	return dst
}

func isRed(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return a>>8 == 255 && r>>8 > 200 && g>>8 < 50 && b>>8 < 50
}

func isWhite(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return a>>8 == 255 && r>>8 == 255 && g>>8 == 255 && b>>8 == 255
}

func TestDraw(t *testing.T) {
	r, face := newTestRenderer(t)
	dst := newCanvas(200, 60)

	next, err := r.Draw(dst, "I \U0001F44D\U0001F3FD this", 5, 7)
	if err != nil {
		t.Fatalf("Draw error: %v", err)
	}
	if next != 27 {
		t.Errorf("Draw returned y = %v, want 27", next)
	}

	// "I " is 20 wide, the glyph is 20 wide.
	wantDraws := []drawCall{
		{text: "I ", x: 5, y: 7},
		{text: " this", x: 45, y: 7},
	}
	if diff := cmp.Diff(wantDraws, face.draws, cmp.AllowUnexported(drawCall{})); diff != "" {
		t.Errorf("text draws mismatch (-want +got):\n%s", diff)
	}

	// Glyph box is x 25..44, y 9..28 (nudged by 0.1 * 20).
	checks := []struct {
		x, y int
		red  bool
	}{
		{30, 15, true},
		{26, 10, true},
		{43, 27, true},
		{24, 15, false},
		{30, 8, false},
		{45, 15, false},
		{30, 29, false},
	}
	for _, c := range checks {
		got := dst.At(c.x, c.y)
		if c.red && !isRed(got) {
			t.Errorf("pixel (%d,%d) = %v, want red", c.x, c.y, got)
		}
		if !c.red && !isWhite(got) {
			t.Errorf("pixel (%d,%d) = %v, want white", c.x, c.y, got)
		}
	}
}

func TestDrawNudge(t *testing.T) {
	r, _ := newTestRenderer(t, WithGlyphNudge(0))
	dst := newCanvas(40, 40)

	if _, err := r.Draw(dst, "\U0001F600", 0, 0); err != nil {
		t.Fatalf("Draw error: %v", err)
	}
	if !isRed(dst.At(1, 1)) {
		t.Errorf("pixel (1,1) = %v, want red", dst.At(1, 1))
	}
	if !isWhite(dst.At(1, 21)) {
		t.Errorf("pixel (1,21) = %v, want white", dst.At(1, 21))
	}
}

func TestDrawError(t *testing.T) {
	errLoad := errors.New("corrupt")
	r, err := NewRenderer(failingAssets{loadErr: errLoad}, newFakeFace())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	dst := newCanvas(40, 40)
	next, err := r.Draw(dst, "\U0001F600", 3, 11)
	if !errors.Is(err, errLoad) {
		t.Errorf("Draw error = %v, want %v", err, errLoad)
	}
	if next != 11 {
		t.Errorf("Draw returned y = %v, want 11", next)
	}
}

func TestRender(t *testing.T) {
	r, face := newTestRenderer(t, WithColumns(3))

	lines, err := r.Layout("one two")
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}

	dst := newCanvas(100, 100)
	next := r.Render(dst, 10, 30, lines)
	if next != 70 {
		t.Errorf("Render returned y = %v, want 70", next)
	}

	want := []drawCall{
		{text: "one", x: 10, y: 30},
		{text: "two", x: 10, y: 50},
	}
	if diff := cmp.Diff(want, face.draws, cmp.AllowUnexported(drawCall{})); diff != "" {
		t.Errorf("draws mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderNoLines(t *testing.T) {
	r, face := newTestRenderer(t)
	if next := r.Render(newCanvas(10, 10), 0, 4, nil); next != 4 {
		t.Errorf("Render returned y = %v, want 4", next)
	}
	if len(face.draws) != 0 {
		t.Errorf("draws = %v, want none", face.draws)
	}
}

func TestDrawClipsAtCanvasEdge(t *testing.T) {
	r, _ := newTestRenderer(t)
	dst := newCanvas(10, 10)

	if _, err := r.Draw(dst, "\U0001F600", 0, 0); err != nil {
		t.Fatalf("Draw error: %v", err)
	}
	if !isRed(dst.At(5, 5)) {
		t.Errorf("pixel (5,5) = %v, want red", dst.At(5, 5))
	}
}
