// Package wrap breaks a paragraph into lines of at most a fixed number of
// columns.
//
// Wrap fills lines greedily, breaking at whitespace and after hyphens
// inside hyphenated words. A word longer than the width is split across
// lines. Leading whitespace of continuation lines and trailing whitespace
// of every line is dropped:
//
//	lines, _ := wrap.Wrap("The quick brown fox", 10)
//	// ["The quick", "brown fox"]
//
// Columns are counted in codepoints by default. Graphemes counts
// user-perceived characters and Cells counts terminal cells, where wide
// characters such as most emoji take two columns.
package wrap
