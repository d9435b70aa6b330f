package scoring

import (
	"errors"
	"fmt"

	"github.com/freeeve/vscc-rating/pkg/faction"
)

var (
	ErrDegenerateScenario = errors.New("degenerate scenario")
	ErrMalformedScenario  = errors.New("malformed scenario")
)

// Evaluator runs every strategy over a scenario with a single normalization.
type Evaluator struct {
	Normalization Normalization
	Strategies    []Strategy
	Allocator     Allocator
}

// NewEvaluator returns an evaluator. With no strategies it uses DefaultStrategies.
func NewEvaluator(n Normalization, a Allocator, strategies ...Strategy) *Evaluator {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Evaluator{Normalization: n, Strategies: strategies, Allocator: a}
}

// StrategyNames lists the strategies in evaluation order.
func (e *Evaluator) StrategyNames() []string {
	names := make([]string, len(e.Strategies))
	for i, s := range e.Strategies {
		names[i] = s.Name()
	}
	return names
}

// StrategyResult is one strategy's view of a scenario.
type StrategyResult struct {
	Name    string
	Scores  Scores
	Changes Changes
}

// Outcome is the full evaluation of one scenario.
type Outcome struct {
	Ratios  Ratios
	Results []StrategyResult
}

// Evaluate normalizes the counts and scores them under every strategy.
func (e *Evaluator) Evaluate(c Counts) (*Outcome, error) {
	for i, v := range c {
		if v < 0 {
			return nil, fmt.Errorf("%s has %d supply centers: %w", faction.Faction(i), v, ErrMalformedScenario)
		}
	}

	out := &Outcome{
		Ratios:  e.Normalization.Ratios(c),
		Results: make([]StrategyResult, 0, len(e.Strategies)),
	}
	for _, s := range e.Strategies {
		scores, err := s.Score(out.Ratios)
		if err != nil {
			return nil, fmt.Errorf("score %s: %w", s.Name(), err)
		}
		changes, err := e.Allocator.Allocate(scores)
		if err != nil {
			return nil, fmt.Errorf("allocate %s: %w", s.Name(), err)
		}
		out.Results = append(out.Results, StrategyResult{Name: s.Name(), Scores: scores, Changes: changes})
	}
	return out, nil
}

// ByFaction returns each faction's rating change under every strategy, in
// strategy order.
func (o *Outcome) ByFaction() map[faction.Faction][]float64 {
	m := make(map[faction.Faction][]float64, faction.Count)
	for _, f := range faction.All() {
		row := make([]float64, len(o.Results))
		for j, r := range o.Results {
			row[j] = r.Changes[f]
		}
		m[f] = row
	}
	return m
}

// EvaluateCounts evaluates a scenario given as a faction-keyed map, which
// must cover every faction.
func (e *Evaluator) EvaluateCounts(counts map[faction.Faction]int) (map[faction.Faction][]float64, error) {
	var c Counts
	seen := 0
	for f, v := range counts {
		if !f.Valid() {
			return nil, fmt.Errorf("%s: %w", f, ErrMalformedScenario)
		}
		c[f] = v
		seen++
	}
	if seen != faction.Count {
		return nil, fmt.Errorf("%d of %d factions present: %w", seen, faction.Count, ErrMalformedScenario)
	}
	out, err := e.Evaluate(c)
	if err != nil {
		return nil, err
	}
	return out.ByFaction(), nil
}
