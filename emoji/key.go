package emoji

import (
	"errors"
	"strconv"
	"strings"
)

// ErrEmptyCluster is returned when a key is requested for an empty cluster.
// Clusters never produces one.
var ErrEmptyCluster = errors.New("emoji: empty cluster")

// KeySeparator joins the per-codepoint components of a multi-codepoint key.
const KeySeparator = "_"

// Key returns the asset lookup key of a cluster.
//
// Each codepoint becomes "u" followed by its lower-case hexadecimal scalar
// value, padded to four digits; scalars above U+FFFF keep all their digits.
// Components are joined with KeySeparator:
//
//	"\U0001F44D"      -> "u1f44d"
//	"\u2764\uFE0F"    -> "u2764_ufe0f"
//	"#\uFE0F\u20E3"   -> "u0023_ufe0f_u20e3"
func Key(cluster string) (string, error) {
	if cluster == "" {
		return "", ErrEmptyCluster
	}

	var b strings.Builder
	b.Grow(len(cluster) * 4)
	for i, r := range cluster {
		if i > 0 {
			b.WriteString(KeySeparator)
		}
		b.WriteByte('u')
		hex := strconv.FormatInt(int64(r), 16)
		for n := len(hex); n < 4; n++ {
			b.WriteByte('0')
		}
		b.WriteString(hex)
	}
	return b.String(), nil
}

// HeadKey returns the first component of a multi-codepoint key.
// The second result is false when key has a single component.
func HeadKey(key string) (string, bool) {
	head, _, found := strings.Cut(key, KeySeparator)
	return head, found
}
