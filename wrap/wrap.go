package wrap

import (
	"errors"
	"strings"
	"unicode"
)

// ErrIllegalWidth is returned when the wrap width is not positive.
var ErrIllegalWidth = errors.New("wrap: width must be positive")

// DefaultTabSize is the tab stop interval used to expand tabs.
const DefaultTabSize = 8

// Option configures Wrap.
type Option func(*config)

type config struct {
	measure    Measure
	hardBreaks bool
	tabSize    int
}

func defaultConfig() config {
	return config{
		measure: Runes,
		tabSize: DefaultTabSize,
	}
}

// WithMeasure sets how line length is counted.
func WithMeasure(m Measure) Option {
	return func(c *config) {
		c.measure = m
	}
}

// WithHardBreaks makes line breaks (\n, \r\n, \r) end paragraphs that are
// wrapped independently. Empty paragraphs become empty lines.
// By default line breaks are treated as spaces.
func WithHardBreaks(enabled bool) Option {
	return func(c *config) {
		c.hardBreaks = enabled
	}
}

// WithTabSize sets the tab stop interval. Tabs are removed when n <= 0.
func WithTabSize(n int) Option {
	return func(c *config) {
		c.tabSize = n
	}
}

// Wrap breaks text into lines no longer than width columns.
// It returns no lines for text that is empty or only whitespace
// (unless hard breaks are enabled).
func Wrap(text string, width int, opts ...Option) ([]string, error) {
	if width <= 0 {
		return nil, ErrIllegalWidth
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.hardBreaks {
		return wrapParagraph(text, width, cfg), nil
	}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var lines []string
	for _, para := range strings.Split(normalized, "\n") {
		wrapped := wrapParagraph(para, width, cfg)
		if len(wrapped) == 0 {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapped...)
	}
	return lines, nil
}

// wrapParagraph fills lines greedily from the chunks of text.
func wrapParagraph(text string, width int, cfg config) []string {
	chunks := splitChunks(normalizeSpace(expandTabs(text, cfg.tabSize)))
	m := cfg.measure

	var lines []string
	i := 0
	for i < len(chunks) {
		// A continuation line never starts with whitespace.
		if len(lines) > 0 && isSpaceChunk(chunks[i]) {
			i++
		}

		var cur []string
		curLen := 0
		for i < len(chunks) {
			n := m.Len(chunks[i])
			if curLen+n > width {
				break
			}
			cur = append(cur, chunks[i])
			curLen += n
			i++
		}

		// A chunk that cannot fit on any line is split to fill this one.
		// When the line is already full, its trailing whitespace is kept.
		keepSpace := false
		if i < len(chunks) && m.Len(chunks[i]) > width {
			head, tail := splitLong(m, chunks[i], width-curLen, len(cur) == 0)
			if head == "" {
				keepSpace = true
			} else {
				cur = append(cur, head)
				if tail == "" {
					i++
				} else {
					chunks[i] = tail
				}
			}
		}

		if n := len(cur); n > 0 && !keepSpace && isSpaceChunk(cur[n-1]) {
			cur = cur[:n-1]
		}
		if len(cur) > 0 {
			lines = append(lines, strings.Join(cur, ""))
		}
	}
	return lines
}

// splitLong cuts a chunk to fit in limit columns, after its last hyphen
// that has a non-hyphen before it if there is one.
func splitLong(m Measure, chunk string, limit int, force bool) (head, tail string) {
	head, tail = m.split(chunk, limit, force)
	if i := strings.LastIndexByte(head, '-'); i > 0 && strings.Trim(head[:i], "-") != "" {
		return chunk[:i+1], chunk[i+1:]
	}
	return head, tail
}

// isWhitespace reports ASCII whitespace, the only whitespace that breaks.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// expandTabs replaces tabs with spaces up to the next tab stop.
func expandTabs(s string, tabSize int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			if tabSize > 0 {
				n := tabSize - col%tabSize
				b.WriteString(strings.Repeat(" ", n))
				col += n
			}
		case '\n', '\r':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// normalizeSpace maps every whitespace character to a plain space.
func normalizeSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if isWhitespace(r) {
			return ' '
		}
		return r
	}, s)
}

// splitChunks splits text into space runs and words. Words are further
// split after a hyphen joining letters ("well-known" becomes "well-" and
// "known"), and before a run of two or more hyphens used as a dash.
func splitChunks(text string) []string {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	chunks := make([]string, 0, 8)
	for p := 0; p < len(runes); {
		var end int
		switch {
		case runes[p] == ' ':
			end = p + 1
			for end < len(runes) && runes[end] == ' ' {
				end++
			}
		case at(runes, p-1, isWordPunct) && dashLen(runes, p) > 0:
			end = p + dashLen(runes, p)
		default:
			end = wordEnd(runes, p)
		}
		chunks = append(chunks, string(runes[p:end]))
		p = end
	}
	return chunks
}

// wordEnd returns the end of the word chunk starting at p: the first
// hyphen break, dash or space after it.
func wordEnd(runes []rune, p int) int {
	for e := p + 1; ; e++ {
		if e == len(runes) || runes[e] == ' ' {
			return e
		}
		if k := e - 1; k > p && runes[k] == '-' && hyphenBreak(runes, k) {
			return e
		}
		if at(runes, e-1, isWordPunct) && dashLen(runes, e) > 0 {
			return e
		}
	}
}

// hyphenBreak reports whether a word breaks after the hyphen at k: it must
// follow two letters (or a letter, hyphen, letter) and precede two letters,
// optionally joined by a hyphen.
func hyphenBreak(runes []rune, k int) bool {
	behind := at(runes, k-2, isLetter) && at(runes, k-1, isLetter) ||
		at(runes, k-3, isLetter) && at(runes, k-2, isHyphen) && at(runes, k-1, isLetter)
	ahead := at(runes, k+1, isLetter) &&
		(at(runes, k+2, isLetter) || at(runes, k+2, isHyphen) && at(runes, k+3, isLetter))
	return behind && ahead
}

// dashLen returns the length of the hyphen run at i when it has two or more
// hyphens and is followed by a word character, and 0 otherwise.
func dashLen(runes []rune, i int) int {
	j := i
	for j < len(runes) && runes[j] == '-' {
		j++
	}
	if j-i >= 2 && at(runes, j, isWordRune) {
		return j - i
	}
	return 0
}

// at reports whether runes[i] exists and satisfies f.
func at(runes []rune, i int, f func(rune) bool) bool {
	return i >= 0 && i < len(runes) && f(runes[i])
}

func isHyphen(r rune) bool {
	return r == '-'
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// isLetter reports word characters other than decimal digits.
func isLetter(r rune) bool {
	return isWordRune(r) && !unicode.IsDigit(r)
}

func isWordPunct(r rune) bool {
	return isWordRune(r) || strings.ContainsRune("!\"'&.,?", r)
}

// isSpaceChunk reports a chunk made only of whitespace, including
// whitespace that does not break lines.
func isSpaceChunk(s string) bool {
	return s != "" && strings.TrimFunc(s, isSpace) == ""
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r >= 0x1C && r <= 0x1F
}
