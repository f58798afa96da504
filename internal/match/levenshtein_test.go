package match

import (
	"testing"
)

func TestInDel(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"hello", "hello", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 2},     // substitution is delete + insert
		{"a", "ab", 1},    // insertion
		{"ab", "a", 1},    // deletion
		{"abc", "axc", 2}, // substitution

		// Multiple operations
		{"kitten", "sitting", 5},
		{"saturday", "sunday", 4},

		// Case-sensitive
		{"ABC", "abc", 6},
		{"Hello", "hello", 2},

		// Runes, not bytes
		{"élise", "elise", 2},
		{"ёж", "еж", 2},

		// Unit names
		{"archdemon maxwell", "archangel maxwell", 8},
		{"lilith", "lilth", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := InDel(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("InDel(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			resultReverse := InDel(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("InDel symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"hello", "hello", 100},

		// Empty operands never score
		{"", "", 0},
		{"", "abc", 0},

		// Completely different
		{"abc", "xyz", 0},

		// Partial matches
		{"kitten", "sitting", 62},                      // 8/13
		{"abc", "ab", 80},                              // 4/5
		{"archdemon maxwel", "archdemon maxwell", 97},  // 32/33
		{"archdemon maxwell", "archangel maxwell", 76}, // 26/34
		{"lilith", "lilth", 91},                        // 10/11
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Ratio(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Ratio(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestIsFuzzyMatch(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected bool
	}{
		// Case and surrounding whitespace are ignored
		{"Archdemon Maxwell", " archdemon maxwell ", true},
		{"LILITH", "lilith", true},

		// Near miss: one dropped letter
		{"Archdemon Maxwell", "Archdemon Maxwel", true},

		// A different unit with a shared surname
		{"Archdemon Maxwell", "Archangel Maxwell", false},

		// Unrelated names
		{"Lilith", "Rosalie", false},

		// Blank input never matches
		{"", "Lilith", false},
		{"   ", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := IsFuzzyMatch(tt.a, tt.b, DefaultThreshold)
			if result != tt.expected {
				t.Errorf("IsFuzzyMatch(%q, %q, %d) = %v, want %v",
					tt.a, tt.b, DefaultThreshold, result, tt.expected)
			}
		})
	}
}
