package wrap

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Measure specifies how the length of text is counted against the width.
type Measure uint8

const (
	// Runes counts Unicode codepoints. This is the default.
	Runes Measure = iota

	// Graphemes counts extended grapheme clusters.
	Graphemes

	// Cells counts monospace terminal cells (East Asian Width aware).
	Cells
)

// String returns the string representation of the measure.
func (m Measure) String() string {
	switch m {
	case Runes:
		return "Runes"
	case Graphemes:
		return "Graphemes"
	case Cells:
		return "Cells"
	default:
		return unknownStr
	}
}

// Len returns the length of s in columns.
func (m Measure) Len(s string) int {
	switch m {
	case Graphemes:
		return uniseg.GraphemeClusterCount(s)
	case Cells:
		return runewidth.StringWidth(s)
	default:
		return utf8.RuneCountInString(s)
	}
}

// split cuts s after as many whole units as fit in limit columns.
// If force is set and nothing fits, the first unit is taken anyway.
func (m Measure) split(s string, limit int, force bool) (head, tail string) {
	cut, used := 0, 0
	if m == Runes {
		for i, r := range s {
			if used+1 > limit {
				break
			}
			used++
			cut = i + utf8.RuneLen(r)
		}
		if cut == 0 && force && s != "" {
			_, cut = utf8.DecodeRuneInString(s)
		}
		return s[:cut], s[cut:]
	}

	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		w := 1
		if m == Cells {
			w = runewidth.StringWidth(cluster)
		}
		if used+w > limit {
			if cut == 0 && force {
				cut = len(cluster)
			}
			break
		}
		used += w
		cut += len(cluster)
	}
	return s[:cut], s[cut:]
}
