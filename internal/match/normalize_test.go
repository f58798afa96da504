package match

import (
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"Lilith", "lilith"},
		{"LILITH", "lilith"},
		{"  Lilith  ", "lilith"},
		{"\tArchdemon Maxwell\n", "archdemon maxwell"},

		// Inner spacing is kept
		{"Archdemon  Maxwell", "archdemon  maxwell"},
		{"Dark-Knight", "dark-knight"},

		// Non-ASCII letters fold too
		{"ÉLISE", "élise"},

		// Edge cases
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeName(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeQueryCopies(t *testing.T) {
	q := Query{" A ", "B", "c"}

	got := normalizeQuery(q)

	if got != (Query{"a", "b", "c"}) {
		t.Errorf("normalizeQuery(%v) = %v", q, got)
	}

	if q[0] != " A " {
		t.Errorf("normalizeQuery modified its argument: %v", q)
	}
}
