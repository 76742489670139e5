package emojitext

import (
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/emojitext/emoji"
	"github.com/gogpu/emojitext/wrap"
)

// Line is one wrapped line ready to draw.
type Line struct {
	// Text is the wrapped line before emoji substitution.
	Text string

	// Runs are the line's runs in draw order.
	Runs []Run

	// X and Y are the offsets of the line box from the layout origin.
	X, Y float64
}

// Layout wraps s and resolves every line into runs. Lines are stacked one
// line height apart starting at offset 0.
func (r *Renderer) Layout(s string) ([]Line, error) {
	if r.config.normalize {
		s = norm.NFC.String(s)
	}

	texts, err := wrap.Wrap(s, r.config.columns,
		wrap.WithMeasure(r.config.measure),
		wrap.WithHardBreaks(r.config.hardBreaks),
	)
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(texts))
	for i, text := range texts {
		runs, err := r.Runs(text)
		if err != nil {
			return nil, err
		}
		lines = append(lines, Line{
			Text: text,
			Runs: runs,
			Y:    float64(i) * r.lineHeight,
		})
	}

	Logger().Debug("emojitext: layout", "lines", len(lines), "columns", r.config.columns)
	return lines, nil
}

// Units resolves a single line into units, merging skin tone modifiers
// into the emoji before them. The line is not wrapped.
func (r *Renderer) Units(line string) ([]Unit, error) {
	rc := recombiner{res: &r.resolver}
	for _, cluster := range emoji.Clusters(line) {
		u, err := r.resolver.resolve(cluster)
		if err != nil {
			return nil, err
		}
		if err := rc.add(u); err != nil {
			return nil, err
		}
	}
	return rc.units(), nil
}

// Runs resolves a single line into runs. The line is not wrapped.
func (r *Renderer) Runs(line string) ([]Run, error) {
	units, err := r.Units(line)
	if err != nil {
		return nil, err
	}
	return BuildRuns(units), nil
}
