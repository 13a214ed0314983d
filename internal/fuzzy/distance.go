package fuzzy

import (
	"strings"
	"unicode/utf8"
)

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-rune insertions, deletions or substitutions that
// turn one into the other. The comparison is case-sensitive and agrees with
// fuzzysearch's LevenshteinDistance.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Keep the row as short as possible.
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Similarity converts the edit distance between a and b into a score in
// [0, 1]. Both strings are lower-cased first, so the result ignores case.
// Two empty strings are identical.
func Similarity(a, b string) float64 {
	return similarity(strings.ToLower(a), strings.ToLower(b))
}

// similarity expects already folded input.
func similarity(a, b string) float64 {
	longest := max(runeLen(a), runeLen(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(Distance(a, b))/float64(longest)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
