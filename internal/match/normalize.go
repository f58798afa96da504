package match

import (
	"strings"
)

// NormalizeName prepares a unit name for comparison: surrounding whitespace
// is trimmed and the name is lower-cased. Inner spacing and punctuation are
// left alone; the similarity score absorbs small differences there.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeQuery returns a copy of q with every name normalized.
func normalizeQuery(q Query) Query {
	for i := range q {
		q[i] = NormalizeName(q[i])
	}

	return q
}
