// Package suggest finds the closest known name for a mistyped one, used for
// "did you mean" hints on target names and config values.
package suggest

import (
	"fmt"
	"strings"
)

// MinScore is the similarity a candidate needs to be suggested.
const MinScore = 0.5

// Levenshtein computes the edit distance between two strings, counted in
// runes.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	// Two rows instead of the full matrix
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Normalize case-folds s and strips separators, so "C-Sharp" and "csharp"
// compare equal.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ', '.':
			return -1
		}

		return r
	}, strings.ToLower(s))
}

// Score returns a similarity between 0 and 1 of the normalized names.
func Score(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == "" && nb == "" {
		return 1.0
	}

	longest := max(len([]rune(na)), len([]rune(nb)))

	return 1.0 - float64(Levenshtein(na, nb))/float64(longest)
}

// Closest returns the candidate most similar to name. Ties keep the earlier
// candidate. It fails when no candidate reaches MinScore.
func Closest(name string, candidates []string) (string, bool) {
	best, bestScore := "", 0.0

	for _, c := range candidates {
		if s := Score(name, c); s > bestScore {
			best, bestScore = c, s
		}
	}

	if bestScore < MinScore {
		return "", false
	}

	return best, true
}

// Hint returns a ` (did you mean "x"?)` suffix for error messages, or an
// empty string when nothing is close enough.
func Hint(name string, candidates []string) string {
	c, ok := Closest(name, candidates)
	if !ok {
		return ""
	}

	return fmt.Sprintf(" (did you mean %q?)", c)
}
