package emojitext

import (
	"image"
	"image/color"

	"github.com/gogpu/emojitext/wrap"
)

// Default configuration values.
const (
	// DefaultColumns is the default wrap width in columns.
	DefaultColumns = 100

	// DefaultGlyphNudge moves emoji images down by this fraction of their
	// height so they sit on the text baseline.
	DefaultGlyphNudge = 0.1

	// sizerText is measured to derive the line height.
	sizerText = "m"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := emojitext.NewRenderer(assets, face,
//	    emojitext.WithColumns(40),
//	    emojitext.WithColor(color.White),
//	)
type Option func(*config)

// config holds optional configuration for a Renderer.
type config struct {
	columns    int
	color      color.Color
	emojiSize  image.Point
	nudge      float64
	measure    wrap.Measure
	hardBreaks bool
	normalize  bool
	degrade    bool
}

// defaultConfig returns the default renderer configuration.
func defaultConfig() config {
	return config{
		columns: DefaultColumns,
		color:   color.Black,
		nudge:   DefaultGlyphNudge,
		measure: wrap.Runes,
	}
}

// WithColumns sets the wrap width in columns. It must be positive.
func WithColumns(n int) Option {
	return func(c *config) {
		c.columns = n
	}
}

// WithColor sets the text color. Nil keeps the default (black).
func WithColor(col color.Color) Option {
	return func(c *config) {
		if col != nil {
			c.color = col
		}
	}
}

// WithEmojiSize sets the box emoji images are downsized to fit in.
// By default the box is a square of the line height.
func WithEmojiSize(w, h int) Option {
	return func(c *config) {
		c.emojiSize = image.Pt(w, h)
	}
}

// WithGlyphNudge sets the downward offset of emoji images as a fraction of
// their height.
func WithGlyphNudge(f float64) Option {
	return func(c *config) {
		c.nudge = f
	}
}

// WithWrapMeasure sets how line length is counted when wrapping.
func WithWrapMeasure(m wrap.Measure) Option {
	return func(c *config) {
		c.measure = m
	}
}

// WithHardBreaks keeps line breaks in the text as line breaks.
// By default they are treated as spaces.
func WithHardBreaks(enabled bool) Option {
	return func(c *config) {
		c.hardBreaks = enabled
	}
}

// WithNormalization converts text to Unicode NFC before layout.
func WithNormalization(enabled bool) Option {
	return func(c *config) {
		c.normalize = enabled
	}
}

// WithDegradeOnLoadError draws characters whose asset fails to load as
// text instead of returning an *AssetLoadError.
func WithDegradeOnLoadError(enabled bool) Option {
	return func(c *config) {
		c.degrade = enabled
	}
}
