package fontface

import "golang.org/x/image/font"

// Hinting specifies font hinting mode.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting.
	HintingFull
)

// String returns the string representation of the hinting mode.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return "Unknown"
	}
}

// mapHinting converts Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}

// Option configures a Face.
type Option func(*faceConfig)

type faceConfig struct {
	hinting  Hinting
	shaping  bool
	language string
}

func defaultFaceConfig() faceConfig {
	return faceConfig{
		hinting:  HintingFull,
		language: "en",
	}
}

// WithHinting sets the hinting mode for the face.
func WithHinting(h Hinting) Option {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithShaping positions text with HarfBuzz shaping instead of per-rune
// advances, for both Measure and Draw.
func WithShaping(enabled bool) Option {
	return func(c *faceConfig) {
		c.shaping = enabled
	}
}

// WithLanguage sets the language tag used for shaping (e.g., "en", "ja").
func WithLanguage(lang string) Option {
	return func(c *faceConfig) {
		c.language = lang
	}
}
