package match

import (
	"math"
)

// DefaultThreshold is the minimum Ratio for two names to count as the same unit.
const DefaultThreshold = 85

// Ratio scores the similarity of a and b from 0 to 100, where 100 means
// identical: round(100 * (1 - InDel(a, b) / (len(a) + len(b)))), lengths in
// runes. An empty operand scores 0. The inputs are compared as given; callers
// normalize first.
func Ratio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	total := len(ra) + len(rb)
	dist := indel(ra, rb)

	return int(math.Round(100 * float64(total-dist) / float64(total)))
}

// IsFuzzyMatch reports whether a and b, once normalized, score at least
// threshold.
func IsFuzzyMatch(a, b string, threshold int) bool {
	return Ratio(NormalizeName(a), NormalizeName(b)) >= threshold
}
