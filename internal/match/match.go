// Package match ranks declared field names against a misspelled path
// segment to produce "did you mean" suggestions.
package match

// maxSuggestionDistance bounds how different a candidate may be before
// suggesting it does more harm than good.
const maxSuggestionDistance = 3

// Closest returns the candidate with the smallest edit distance to name,
// provided the distance is small enough to be a plausible misspelling.
// Ties go to the earliest candidate (declaration order).
func Closest(name string, candidates []string) (string, bool) {
	best, bestDist := "", maxSuggestionDistance+1

	for _, c := range candidates {
		if d := Levenshtein(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}

	if best == "" || bestDist > maxSuggestionDistance || bestDist >= len(best) {
		return "", false
	}

	return best, true
}

// Levenshtein computes the edit distance between two strings: the
// minimum number of single-character insertions, deletions or
// substitutions required to transform one into the other.
//
// Uses two rows instead of the full matrix, so space is
// O(min(len(a), len(b))) and time is O(len(a) * len(b)).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	// keep a as the shorter string so the rows stay small
	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
