package emojitext

import "strings"

// RunKind tells whether a run is drawn as text or as an image.
type RunKind uint8

const (
	// RunText is a stretch of text drawn with the font.
	RunText RunKind = iota

	// RunGlyph is a single emoji image.
	RunGlyph
)

// String returns the string representation of the run kind.
func (k RunKind) String() string {
	switch k {
	case RunText:
		return "Text"
	case RunGlyph:
		return "Glyph"
	default:
		return unknownStr
	}
}

// Run is a drawable piece of a line: the text of consecutive text units,
// or one glyph.
type Run struct {
	Kind RunKind

	// Text is the text to draw for RunText, and the source characters of
	// the glyph for RunGlyph.
	Text string

	// Glyph is set when Kind is RunGlyph.
	Glyph Glyph
}

// BuildRuns joins consecutive text units into one run and gives every
// glyph unit a run of its own. Order is preserved.
func BuildRuns(units []Unit) []Run {
	if len(units) == 0 {
		return nil
	}

	runs := make([]Run, 0, len(units))
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			runs = append(runs, Run{Kind: RunText, Text: text.String()})
			text.Reset()
		}
	}

	for _, u := range units {
		if u.Kind == UnitGlyph {
			flush()
			runs = append(runs, Run{Kind: RunGlyph, Text: u.Text, Glyph: u.Glyph})
			continue
		}
		text.WriteString(u.Text)
	}
	flush()
	return runs
}
