// Package match reconciles extracted sign-in rows against a roster snapshot,
// scoring candidates by string similarity and classifying each row as an
// identifier match, a name match, or unmatched.
package match

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Similarity returns a normalized similarity ratio in [0,1] between two
// strings. Inputs are NFKC-normalized, case-folded, and trimmed before
// comparison. The ratio is 2*LCS/(len(a)+len(b)) over runes, symmetric, 1 for
// identical non-empty strings, and 0 when either input is empty.
func Similarity(a, b string) float64 {
	ra := fold(a)
	rb := fold(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	lcs := longestCommonSubsequence(ra, rb)
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}

func fold(s string) []rune {
	return []rune(strings.ToLower(strings.TrimSpace(norm.NFKC.String(s))))
}

// longestCommonSubsequence computes LCS length with a two-row table.
func longestCommonSubsequence(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
