// internal/solver/strategy.go

package solver

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
)

// Strategy names accepted by NewStrategy.
const (
	StrategyCut          = "cut"
	StrategyGreedy       = "greedy"
	StrategyGreedyStatic = "greedy-static"
)

// StrategyNames lists the accepted names.
var StrategyNames = []string{StrategyCut, StrategyGreedy, StrategyGreedyStatic}

// NewStrategy builds a strategy by name. base is the full word list; the
// greedy strategies take their initial letter frequencies from it.
func NewStrategy(name string, cfg Config, base candidates.Universe) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyCut:
		return NewCutRanker(cfg), nil
	case StrategyGreedy:
		return NewGreedy(base, true), nil
	case StrategyGreedyStatic:
		return NewGreedy(base, false), nil
	}
	return nil, fmt.Errorf("unknown strategy %q: want one of %s", name, strings.Join(StrategyNames, ", "))
}
