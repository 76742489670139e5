package fontface

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shaper positions text with HarfBuzz shaping via go-text/typesetting.
// It is not safe for concurrent use.
type shaper struct {
	face *gotext.Face
	lang language.Language
	hb   shaping.HarfbuzzShaper
}

func newShaper(data []byte, lang string) (*shaper, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontface: failed to parse font for shaping: %w", err)
	}
	return &shaper{
		face: face,
		lang: language.NewLanguage(lang),
	}, nil
}

// cluster is a piece of the source text with the pen offset of its first
// glyph from the start of the run.
type cluster struct {
	text string
	x    fixed.Int26_6
}

// layout shapes text at size pixels. It returns the clusters in logical
// order, which together hold all of text, and the total advance.
func (s *shaper) layout(text string, size float64) ([]cluster, fixed.Int26_6) {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, 0
	}

	out := s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  s.lang,
	})

	var (
		clusters []cluster
		pen      fixed.Int26_6
		start    int
		startX   fixed.Int26_6
	)
	for i, g := range out.Glyphs {
		// Glyphs of one cluster share its text index.
		if idx := g.TextIndex(); i > 0 && idx > start && idx <= len(runes) {
			clusters = append(clusters, cluster{text: string(runes[start:idx]), x: startX})
			start, startX = idx, pen
		}
		pen += g.Advance
	}
	clusters = append(clusters, cluster{text: string(runes[start:]), x: startX})
	return clusters, pen
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
