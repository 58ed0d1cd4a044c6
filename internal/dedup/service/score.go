package service

import (
	"math"

	"github.com/agnivade/levenshtein"
)

// Score returns the similarity of two normalized names as an integer
// percentage: round(100 * (1 - dist/maxLen)), never below 0.
// Symmetric, and Score(a, a) == 100 for any non-empty a.
func Score(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	d := levenshtein.ComputeDistance(a, b)
	m := len([]rune(a))
	if n := len([]rune(b)); n > m {
		m = n
	}
	s := int(math.Round(100 * (1 - float64(d)/float64(m))))
	if s < 0 {
		s = 0
	}
	return s
}
