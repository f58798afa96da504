package roster

import (
	"slices"

	"teamfinder/internal/diagnostic"
)

// Diagnostic codes reported while building a Book.
const (
	CodeInvalidLayout    = "invalid_layout"
	CodeShortRow         = "short_row"
	CodeSideOverflow     = "side_overflow"
	CodeGroupDiscarded   = "incomplete_group_discarded"
	CodeUnknownTeamLabel = "unknown_team_label"
)

// Stats counts what an ingestion run saw.
type Stats struct {
	Rows         int // non-empty rows
	EmptyRows    int
	Units        int // unit names accepted into a group
	Placeholders int
	Overflow     int
	Sets         int
	Discarded    int // trailing partial groups dropped
}

// Book is the ordered result of one ingestion run. It is never mutated after
// construction; a new run builds a new Book. Sets keep source order, and that
// order is the lookup priority: the first matching set wins.
type Book struct {
	Sets        []TeamSet
	Stats       Stats
	Diagnostics diagnostic.Diagnostics
}

// Len returns the number of team sets.
func (b *Book) Len() int {
	if b == nil {
		return 0
	}

	return len(b.Sets)
}

// DefenseNames returns every distinct defense unit name, sorted.
func (b *Book) DefenseNames() []string {
	return b.names(func(t TeamSet) []string { return t.Defense[:] })
}

// UnitNames returns every distinct unit name on either side, sorted.
func (b *Book) UnitNames() []string {
	return b.names(func(t TeamSet) []string {
		return append(t.Defense[:len(t.Defense):len(t.Defense)], t.Attack[:]...)
	})
}

func (b *Book) names(pick func(TeamSet) []string) []string {
	if b == nil {
		return nil
	}

	seen := map[string]struct{}{}

	var out []string

	for _, set := range b.Sets {
		for _, name := range pick(set) {
			if _, ok := seen[name]; ok {
				continue
			}

			seen[name] = struct{}{}
			out = append(out, name)
		}
	}

	slices.Sort(out)

	return out
}
