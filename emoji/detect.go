package emoji

// Fitzpatrick skin tone modifiers, lightest first.
const (
	ModifierLight       rune = 0x1F3FB
	ModifierMediumLight rune = 0x1F3FC
	ModifierMedium      rune = 0x1F3FD
	ModifierMediumDark  rune = 0x1F3FE
	ModifierDark        rune = 0x1F3FF
)

// IsEmojiModifier returns true if the rune is a skin tone modifier.
// Fitzpatrick scale modifiers: U+1F3FB - U+1F3FF.
func IsEmojiModifier(r rune) bool {
	return r >= ModifierLight && r <= ModifierDark
}

// ToneIndex returns the tone index (1-5) of a skin tone modifier.
// The second result is false for any other rune.
func ToneIndex(r rune) (int, bool) {
	if !IsEmojiModifier(r) {
		return 0, false
	}
	return int(r-ModifierLight) + 1, true
}

// IsZWJ returns true if the rune is Zero-Width Joiner (U+200D).
// ZWJ is used to join emoji into composite sequences.
func IsZWJ(r rune) bool {
	return r == 0x200D
}

// IsVariationSelector returns true for emoji-related variation selectors.
// U+FE0E forces text presentation, U+FE0F forces emoji presentation.
func IsVariationSelector(r rune) bool {
	return r == 0xFE0E || r == 0xFE0F
}

// IsPlain reports whether every codepoint of s is ASCII.
// Plain clusters never name an emoji asset on their own.
func IsPlain(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
