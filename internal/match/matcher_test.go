package match

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamfinder/internal/roster"
)

func testSets() []roster.TeamSet {
	return []roster.TeamSet{
		{
			Defense: [3]string{"Lilith", "Archdemon Maxwell", "Yuna"},
			Attack:  [3]string{"Rosalie", "Cecil", "Ayla"},
			Notes:   "Burst Lilith first",
		},
		{
			Defense: [3]string{"Kirin", "Ravi", "Teo"},
			Attack:  [3]string{"Lilith", "Eliza", "Mira"},
		},
		{
			Defense: [3]string{"Kirin", "Ravi", "Teo"},
			Attack:  [3]string{"Nox", "Yuna", "Cecil"},
			Notes:   "backup",
		},
	}
}

func TestDefenseUnitsMatch(t *testing.T) {
	defense := [3]string{"Lilith", "Archdemon Maxwell", "Yuna"}

	tests := []struct {
		name     string
		query    Query
		expected bool
	}{
		{"exact", Query{"Lilith", "Archdemon Maxwell", "Yuna"}, true},
		{"reordered", Query{"Yuna", "Lilith", "Archdemon Maxwell"}, true},
		{"case and spacing", Query{" lilith", "ARCHDEMON MAXWELL ", "yuna"}, true},
		{"typos", Query{"Lilth", "Archdemon Maxwel", "Yuna"}, true},
		{"one unknown", Query{"Lilith", "Archdemon Maxwell", "Rosalie"}, false},
		{"similar but different unit", Query{"Lilith", "Archangel Maxwell", "Yuna"}, false},
		{"same name three times", Query{"Lilith", "Lilith", "Lilith"}, false},
		{"blank names", Query{"", "", ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DefenseUnitsMatch(tt.query, defense))
		})
	}
}

func TestDefenseUnitsMatch_AllPermutations(t *testing.T) {
	defense := [3]string{"A1 Unit", "B2 Unit", "C3 Unit"}
	perms := []Query{
		{"A1 Unit", "B2 Unit", "C3 Unit"},
		{"A1 Unit", "C3 Unit", "B2 Unit"},
		{"B2 Unit", "A1 Unit", "C3 Unit"},
		{"B2 Unit", "C3 Unit", "A1 Unit"},
		{"C3 Unit", "A1 Unit", "B2 Unit"},
		{"C3 Unit", "B2 Unit", "A1 Unit"},
	}

	for _, q := range perms {
		assert.True(t, DefenseUnitsMatch(q, defense), q.String())
	}
}

// The greedy scan binds the first query name to the first stored name it
// resembles. "Archdemon Ex" resembles both "Archdemon" (86) and
// "Archdemon Exa" (96) and takes "Archdemon"; the second query name,
// "Archdemon", only resembles "Archdemon" (it scores 82 against
// "Archdemon Exa") and is left unbound, although the assignment
// Ex->Exa, Archdemon->Archdemon, Maxwell->Maxwell exists.
func TestDefenseUnitsMatch_GreedyMissesAvailableAssignment(t *testing.T) {
	defense := [3]string{"Archdemon", "Archdemon Exa", "Maxwell"}
	query := Query{"Archdemon Ex", "Archdemon", "Maxwell"}

	require.True(t, IsFuzzyMatch(query[0], defense[0], DefaultThreshold))
	require.True(t, IsFuzzyMatch(query[0], defense[1], DefaultThreshold))
	require.False(t, IsFuzzyMatch(query[1], defense[1], DefaultThreshold))

	assert.False(t, DefenseUnitsMatch(query, defense), "greedy first-fit must not backtrack")

	maximum := NewMatcher(Config{Threshold: DefaultThreshold, Strategy: StrategyMaximum})
	assert.True(t, maximum.DefenseUnitsMatch(query, defense))

	// The same names in a friendlier order succeed greedily.
	assert.True(t, DefenseUnitsMatch(Query{"Archdemon", "Archdemon Ex", "Maxwell"}, defense))
}

func TestDefenseUnitsMatch_FooFamily(t *testing.T) {
	defense := [3]string{"Foo", "Foobar", "Foobaz"}
	query := Query{"Foobar", "Foo", "Zzz"}

	assert.False(t, DefenseUnitsMatch(query, defense))

	maximum := NewMatcher(Config{Threshold: DefaultThreshold, Strategy: StrategyMaximum})
	assert.False(t, maximum.DefenseUnitsMatch(query, defense))
}

func TestFindMatch_OrderIndependent(t *testing.T) {
	sets := []roster.TeamSet{
		{Defense: [3]string{"A", "B", "C"}, Attack: [3]string{"X", "Y", "Z"}},
	}

	first, ok := FindMatch(Query{"B", "A", "C"}, sets)
	require.True(t, ok)

	second, ok := FindMatch(Query{"A", "B", "C"}, sets)
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, sets[0], first)
}

func TestFindMatch_FirstMatchWins(t *testing.T) {
	sets := testSets()

	got, ok := FindMatch(Query{"Teo", "Kirin", "Ravi"}, sets)

	require.True(t, ok)
	assert.Equal(t, [3]string{"Lilith", "Eliza", "Mira"}, got.Attack)
	assert.Equal(t, 1, NewMatcher(DefaultConfig()).FindIndex(Query{"Teo", "Kirin", "Ravi"}, sets))
}

func TestFindMatch_Typos(t *testing.T) {
	got, ok := FindMatch(Query{"yuna", "Lilth", "archdemon maxwel"}, testSets())

	require.True(t, ok)
	assert.Equal(t, "Burst Lilith first", got.Notes)
}

func TestFindMatch_NotFound(t *testing.T) {
	got, ok := FindMatch(Query{"Rosalie", "Cecil", "Ayla"}, testSets())

	assert.False(t, ok)
	assert.Equal(t, roster.TeamSet{}, got)
	assert.Equal(t, -1, NewMatcher(DefaultConfig()).FindIndex(Query{"Rosalie", "Cecil", "Ayla"}, testSets()))

	_, ok = FindMatch(Query{"A", "B", "C"}, nil)
	assert.False(t, ok)
}

func TestMatcher_Threshold(t *testing.T) {
	exact := NewMatcher(Config{Threshold: 100})

	_, ok := exact.FindMatch(Query{"Lilth", "Archdemon Maxwell", "Yuna"}, testSets())
	assert.False(t, ok, "a typo scores below 100")

	_, ok = exact.FindMatch(Query{" LILITH ", "archdemon maxwell", "Yuna"}, testSets())
	assert.True(t, ok, "normalization happens before scoring")

	loose := NewMatcher(Config{Threshold: 70})
	assert.Equal(t, 70, loose.Config().Threshold)
	assert.True(t, loose.DefenseUnitsMatch(Query{"Lilith", "Archangel Maxwell", "Yuna"}, testSets()[0].Defense))
}

func TestFindMatch_Deterministic(t *testing.T) {
	sets := testSets()
	q := Query{"Ravi", "Teo", "Kirin"}

	want, ok := FindMatch(q, sets)
	require.True(t, ok)

	var wg sync.WaitGroup

	results := make([]roster.TeamSet, 16)
	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			results[i], _ = FindMatch(q, sets)
		}(i)
	}

	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}

	assert.Equal(t, testSets(), sets, "matching must not modify the book")
}

func TestQuery_String(t *testing.T) {
	assert.Equal(t, "Lilith, Maxwell, Yuna", Query{"Lilith", "Maxwell", "Yuna"}.String())
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input    string
		expected Strategy
		wantErr  bool
	}{
		{"", StrategyGreedy, false},
		{"greedy", StrategyGreedy, false},
		{"maximum", StrategyMaximum, false},
		{"optimal", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownStrategy)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got.String(), map[Strategy]string{StrategyGreedy: "greedy", StrategyMaximum: "maximum"}[got])
		})
	}

	assert.Equal(t, "unknown", Strategy(7).String())
}
