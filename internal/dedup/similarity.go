// Package dedup implements the duplicate-detection-and-merge engine for
// vocabulary records: edit-distance similarity, exact and fuzzy duplicate
// grouping, completeness scoring, canonical-record merging and pre-insert
// duplicate checks. Everything here is pure and stateless; callers own
// persistence and presentation.
package dedup

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// DefaultThreshold is the similarity percentage at which two words are
// considered near-duplicates unless the caller overrides it.
const DefaultThreshold = 85.0

// Distance returns the Levenshtein edit distance between a and b:
// substitutions, insertions and deletions each cost 1, computed over runes.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Similarity returns the percentage similarity of a and b in [0, 100],
// derived from the edit distance relative to the longer string. Two empty
// strings are 100% similar. The function is symmetric.
func Similarity(a, b string) float64 {
	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 100
	}
	return 100 * float64(maxLen-Distance(a, b)) / float64(maxLen)
}
