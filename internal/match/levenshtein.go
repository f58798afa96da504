package match

// InDel computes the insert/delete edit distance between two strings: the
// minimum number of single-rune insertions and deletions that turn one into
// the other. A substitution costs two (one delete plus one insert), so the
// result equals len(a) + len(b) - 2*LCS(a, b).
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func InDel(a, b string) int {
	return indel([]rune(a), []rune(b))
}

func indel(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Ensure a is the shorter string for space optimization
	if len(a) > len(b) {
		a, b = b, a
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
				cost = 2
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution as delete+insert
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
