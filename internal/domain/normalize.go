package domain

import (
	"strings"
	"unicode"
)

// NormalizeText canonicalizes a word or phrase for comparison:
//   - converts to lowercase
//   - trims leading/trailing whitespace
//   - strips every rune that is not a word character (letter, digit,
//     underscore) or whitespace, so punctuation, apostrophes and hyphens
//     are removed
//   - compresses runs of whitespace into a single space
//
// The function is total and idempotent; NormalizeText("") is "".
func NormalizeText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			if !prevSpace {
				b.WriteRune(' ')
				prevSpace = true
			}
		case isWordRune(r):
			b.WriteRune(r)
			prevSpace = false
		}
		// Everything else (punctuation, symbols) is dropped.
	}
	return strings.TrimSpace(b.String())
}

// isWordRune reports whether r counts as a word character. Unicode letters
// are included so non-Latin headwords (e.g. Bangla) survive normalization.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
