package match

import (
	"strings"

	"teamfinder/internal/roster"
)

// rosterSize is the number of names on each side of a query and a defense.
const rosterSize = 3

// Query is three typed defense names, in whatever order the user gave them.
type Query [rosterSize]string

// String renders the query the way the miss log stores it.
func (q Query) String() string {
	return strings.Join(q[:], ", ")
}

// Config holds matcher settings.
type Config struct {
	Threshold int
	Strategy  Strategy
}

// DefaultConfig returns the threshold-85 greedy configuration.
func DefaultConfig() Config {
	return Config{
		Threshold: DefaultThreshold,
		Strategy:  StrategyGreedy,
	}
}

// Matcher compares queries against defense rosters. The zero value is not
// usable; build one with NewMatcher.
type Matcher struct {
	cfg Config
}

// NewMatcher returns a Matcher for cfg.
func NewMatcher(cfg Config) *Matcher {
	return &Matcher{cfg: cfg}
}

// Config returns the matcher settings.
func (m *Matcher) Config() Config {
	return m.cfg
}

// DefenseUnitsMatch reports whether every stored defense name can be bound to
// a distinct query name.
func (m *Matcher) DefenseUnitsMatch(user Query, defense [rosterSize]string) bool {
	return m.defenseMatch(normalizeQuery(user), defense)
}

// FindMatch returns the first team set, in slice order, whose defense the
// query matches. The boolean is false when nothing matches; that is an
// ordinary outcome, not an error.
func (m *Matcher) FindMatch(q Query, sets []roster.TeamSet) (roster.TeamSet, bool) {
	i := m.FindIndex(q, sets)
	if i < 0 {
		return roster.TeamSet{}, false
	}

	return sets[i], true
}

// FindIndex is FindMatch returning the position of the set, or -1.
func (m *Matcher) FindIndex(q Query, sets []roster.TeamSet) int {
	user := normalizeQuery(q)

	for i := range sets {
		if m.defenseMatch(user, sets[i].Defense) {
			return i
		}
	}

	return -1
}

func (m *Matcher) defenseMatch(user Query, defense [rosterSize]string) bool {
	var stored Query
	for i, name := range defense {
		stored[i] = NormalizeName(name)
	}

	similar := func(u, d int) bool {
		return Ratio(user[u], stored[d]) >= m.cfg.Threshold
	}

	if m.cfg.Strategy == StrategyMaximum {
		return maximumAssign(similar) == rosterSize
	}

	return greedyAssign(similar) == rosterSize
}

// greedyAssign walks query names in order and binds each to the first
// still-free stored name it resembles. It returns the number of bindings.
func greedyAssign(similar func(u, d int) bool) int {
	var bound [rosterSize]bool

	n := 0

	for u := range rosterSize {
		for d := range rosterSize {
			if bound[d] || !similar(u, d) {
				continue
			}

			bound[d] = true
			n++

			break
		}
	}

	return n
}

// maximumAssign returns the size of a maximum bipartite matching between
// query and stored names (Kuhn's augmenting paths).
func maximumAssign(similar func(u, d int) bool) int {
	var compat [rosterSize][rosterSize]bool

	for u := range rosterSize {
		for d := range rosterSize {
			compat[u][d] = similar(u, d)
		}
	}

	owner := [rosterSize]int{-1, -1, -1}
	n := 0

	for u := range rosterSize {
		var seen [rosterSize]bool
		if augment(u, &compat, &owner, &seen) {
			n++
		}
	}

	return n
}

func augment(u int, compat *[rosterSize][rosterSize]bool, owner *[rosterSize]int, seen *[rosterSize]bool) bool {
	for d := range rosterSize {
		if !compat[u][d] || seen[d] {
			continue
		}

		seen[d] = true

		if owner[d] < 0 || augment(owner[d], compat, owner, seen) {
			owner[d] = u
			return true
		}
	}

	return false
}

var defaultMatcher = NewMatcher(DefaultConfig())

// DefenseUnitsMatch runs the default greedy, threshold-85 group match.
func DefenseUnitsMatch(user Query, defense [rosterSize]string) bool {
	return defaultMatcher.DefenseUnitsMatch(user, defense)
}

// FindMatch runs the default matcher over sets.
func FindMatch(q Query, sets []roster.TeamSet) (roster.TeamSet, bool) {
	return defaultMatcher.FindMatch(q, sets)
}
