package dict

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// DefaultCutoff is the minimum normalized similarity an approximate match
// must reach to be accepted.
const DefaultCutoff = 0.75

// Match finds the accepted word closest to candidate. It returns false
// immediately when the candidate or the accepted list is empty. The
// accepted list must be sorted; ties on similarity resolve to the first
// word in that order, so the result is stable for a fixed set.
func Match(candidate string, accepted []string, cutoff float64) (bool, string) {
	normalized := Normalize(candidate)
	if normalized == "" || len(accepted) == 0 {
		return false, ""
	}
	best := ""
	bestScore := 0.0
	for _, word := range accepted {
		score := Similarity(normalized, word)
		if score > bestScore {
			best = word
			bestScore = score
		}
	}
	if bestScore >= cutoff && best != "" {
		return true, best
	}
	return false, ""
}

// Similarity is 1 - editDistance/maxRuneLength, computed over runes so
// that Persian text is measured per letter, not per byte.
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 1 - float64(distance)/float64(longest)
}
