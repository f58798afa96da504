package match

import (
	"errors"
	"fmt"

	"teamfinder/internal/common"
)

// ErrUnknownStrategy is returned by ParseStrategy.
var ErrUnknownStrategy = errors.New("unknown match strategy")

// Strategy selects how query names are assigned to stored defense names.
type Strategy int

const (
	// StrategyGreedy binds each query name, in query order, to the first
	// unbound stored name it resembles. It never backtracks, so it can miss
	// an assignment that exists.
	StrategyGreedy Strategy = iota
	// StrategyMaximum searches augmenting paths over the 3x3 similarity
	// matrix and finds a full assignment whenever one exists.
	StrategyMaximum
)

const (
	strategyGreedyName  = "greedy"
	strategyMaximumName = "maximum"
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyGreedy:
		return strategyGreedyName
	case StrategyMaximum:
		return strategyMaximumName
	default:
		return common.UnknownStr
	}
}

// ParseStrategy parses a configuration name. Empty selects StrategyGreedy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", strategyGreedyName:
		return StrategyGreedy, nil
	case strategyMaximumName:
		return StrategyMaximum, nil
	default:
		return 0, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownStrategy, s, strategyGreedyName, strategyMaximumName)
	}
}
