// Package emoji splits text into user-perceived characters and derives the
// asset lookup keys used to find an emoji image for each of them.
//
// # Segmentation
//
// Clusters returns the extended grapheme clusters of a string (UAX #29).
// A cluster that ends in a Fitzpatrick skin tone modifier (U+1F3FB - U+1F3FF)
// is returned as two clusters, the base and the modifier, so that callers
// can substitute a toned image for the base:
//
//	emoji.Clusters("I \U0001F44D\U0001F3FD")
//	// ["I", " ", "\U0001F44D", "\U0001F3FD"]
//
// # Keys
//
// Key converts a cluster to the canonical key of an emoji asset file name:
//
//	key, _ := emoji.Key("\U0001F469\U0001F3FD") // "u1f469_u1f3fd"
//
// Keys are lower-case; asset lookup is case-insensitive.
package emoji
