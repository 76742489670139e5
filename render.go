package emojitext

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/emojitext/wrap"
)

// Face measures and draws plain text.
// *fontface.Face implements Face.
type Face interface {
	// Measure returns the advance width of s and the line box height.
	Measure(s string) (width, height float64)

	// Draw renders s with its line box's top-left corner at (x, y).
	Draw(dst draw.Image, s string, x, y float64, col color.Color)
}

// Renderer lays out and draws text with emoji.
//
// A Renderer holds no per-call state; it is as safe for concurrent use as
// its Face and Assets.
type Renderer struct {
	face   Face
	config config

	resolver   resolver
	lineHeight float64
}

// NewRenderer creates a renderer drawing text with face and emoji from
// assets. The line height is measured once from face.
func NewRenderer(assets Assets, face Face, opts ...Option) (*Renderer, error) {
	if assets == nil {
		return nil, ErrNilAssets
	}
	if face == nil {
		return nil, ErrNilFace
	}

	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.columns <= 0 {
		return nil, wrap.ErrIllegalWidth
	}

	_, lineHeight := face.Measure(sizerText)

	size := config.emojiSize
	if size.X <= 0 || size.Y <= 0 {
		side := int(math.Round(lineHeight))
		size = image.Pt(side, side)
	}

	return &Renderer{
		face:   face,
		config: config,
		resolver: resolver{
			assets:  assets,
			size:    size,
			degrade: config.degrade,
		},
		lineHeight: lineHeight,
	}, nil
}

// LineHeight returns the vertical distance between lines.
func (r *Renderer) LineHeight() float64 {
	return r.lineHeight
}

// EmojiSize returns the box emoji images are downsized to fit in.
func (r *Renderer) EmojiSize() image.Point {
	return r.resolver.size
}

// Draw lays out s and draws it with the first line box at (x, y).
// It returns the y coordinate below the last line.
func (r *Renderer) Draw(dst draw.Image, s string, x, y float64) (float64, error) {
	lines, err := r.Layout(s)
	if err != nil {
		return y, err
	}
	return r.Render(dst, x, y, lines), nil
}

// Render draws laid out lines relative to the origin (x, y) and returns
// y advanced by one line height per line.
func (r *Renderer) Render(dst draw.Image, x, y float64, lines []Line) float64 {
	for _, line := range lines {
		r.renderLine(dst, x+line.X, y+line.Y, line.Runs)
	}
	return y + float64(len(lines))*r.lineHeight
}

// renderLine draws the runs of one line from left to right.
func (r *Renderer) renderLine(dst draw.Image, x, y float64, runs []Run) {
	cursor := x
	for _, run := range runs {
		switch run.Kind {
		case RunText:
			r.face.Draw(dst, run.Text, cursor, y, r.config.color)
			w, _ := r.face.Measure(run.Text)
			cursor += w
		case RunGlyph:
			g := run.Glyph
			pt := image.Pt(int(cursor), int(y+r.config.nudge*float64(g.Height)))
			paste(dst, g.Image, pt)
			cursor += float64(g.Width)
		}
	}
}

// paste composites img at pt using its own alpha channel as the mask.
func paste(dst draw.Image, img image.Image, pt image.Point) {
	if img == nil {
		return
	}
	b := img.Bounds()
	rect := image.Rectangle{Min: pt, Max: pt.Add(b.Size())}
	xdraw.DrawMask(dst, rect, img, b.Min, img, b.Min, xdraw.Over)
}
