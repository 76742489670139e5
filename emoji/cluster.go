package emoji

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Clusters splits s into extended grapheme clusters in logical order.
//
// Skin tone modifiers at the end of a cluster are split off into clusters
// of their own, so a cluster and its modifiers come out as separate
// elements. ZWJ sequences are left intact.
func Clusters(s string) []string {
	if s == "" {
		return nil
	}

	clusters := make([]string, 0, utf8.RuneCountInString(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		if cluster == "" {
			break
		}
		clusters = appendSplit(clusters, cluster)
	}
	return clusters
}

// appendSplit appends cluster with its trailing modifiers split off.
func appendSplit(clusters []string, cluster string) []string {
	var mods []string
	for {
		head, mod, ok := splitTrailingModifier(cluster)
		if !ok {
			break
		}
		mods = append(mods, mod)
		cluster = head
	}
	clusters = append(clusters, cluster)
	for i := len(mods) - 1; i >= 0; i-- {
		clusters = append(clusters, mods[i])
	}
	return clusters
}

// splitTrailingModifier separates a trailing skin tone modifier from the
// rest of the cluster. ZWJ sequences are left intact.
func splitTrailingModifier(cluster string) (head, mod string, ok bool) {
	r, size := utf8.DecodeLastRuneInString(cluster)
	if !IsEmojiModifier(r) || size == len(cluster) {
		return "", "", false
	}
	for _, c := range cluster {
		if IsZWJ(c) {
			return "", "", false
		}
	}
	cut := len(cluster) - size
	return cluster[:cut], cluster[cut:], true
}
