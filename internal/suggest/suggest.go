// Package suggest lists known defense unit names for a partially typed name.
package suggest

import (
	"slices"
	"strings"

	"teamfinder/internal/common"
)

// DefaultLimit is the most choices a chat autocomplete accepts.
const DefaultLimit = 25

// Index is an immutable, sorted list of unit names.
type Index struct {
	names  []string
	folded []string
}

// NewIndex builds an index over names. Duplicates and blanks are dropped.
func NewIndex(names []string) *Index {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	sorted = slices.DeleteFunc(sorted, common.IsBlank)

	folded := make([]string, len(sorted))
	for i, name := range sorted {
		folded[i] = strings.ToLower(name)
	}

	return &Index{names: sorted, folded: folded}
}

// Len returns the number of indexed names.
func (x *Index) Len() int {
	return len(x.names)
}

// Lookup returns, in sorted order, up to limit names containing partial,
// ignoring case. An empty partial matches every name. limit <= 0 means
// DefaultLimit.
func (x *Index) Lookup(partial string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	needle := strings.ToLower(partial)
	out := make([]string, 0, min(limit, len(x.names)))

	for i, name := range x.folded {
		if !strings.Contains(name, needle) {
			continue
		}

		out = append(out, x.names[i])
		if len(out) == limit {
			break
		}
	}

	return out
}
