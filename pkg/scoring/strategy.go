package scoring

import (
	"fmt"
	"math"
	"strconv"

	"github.com/freeeve/vscc-rating/pkg/faction"
	"gonum.org/v1/gonum/floats"
)

// Scores holds one raw score per faction in registry order.
type Scores [faction.Count]float64

// Strategy computes raw scores from the ratios of one scenario.
type Strategy interface {
	Name() string
	Score(r Ratios) (Scores, error)
}

// ParticipationBonus is awarded to every faction that was not eliminated.
const ParticipationBonus = 15.0

func participation(v, bonus float64) float64 {
	if v > -1 {
		return bonus
	}
	return 0
}

// --- Current ---

// Current is the scoring system in use today: a linear performance term,
// a bonus shared by the top group, and the participation bonus. Only ratios
// of at least 1 (a completed victory condition) can join the top group.
type Current struct {
	Multiplier    float64
	ClusterBonus  float64
	Participation float64
	Grouping      Grouping
}

// NewCurrent returns the Current strategy with its standard constants.
func NewCurrent() *Current {
	return &Current{
		Multiplier:    100,
		ClusterBonus:  500,
		Participation: ParticipationBonus,
		Grouping:      Grouping{Gap: DefaultImpunityGap, Floor: 1.0},
	}
}

func (*Current) Name() string { return "current" }

func (s *Current) Score(r Ratios) (Scores, error) {
	im := s.Grouping.Group(r)
	var out Scores
	for i, v := range r {
		out[i] = s.Multiplier*math.Max(v, 0) +
			im.Bonus(v, s.ClusterBonus) +
			participation(v, s.Participation)
	}
	return out, nil
}

// --- Proposed ---

// Proposed raises each positive ratio to Exponent and shares a fixed pool of
// performance points in proportion to the results. The top group needs no
// minimum ratio.
type Proposed struct {
	Exponent        float64
	Multiplier      float64
	PerformancePool float64
	ClusterBonus    float64
	Participation   float64
	Grouping        Grouping
}

// NewProposed returns the power-law strategy for the given exponent.
func NewProposed(exponent float64) *Proposed {
	return &Proposed{
		Exponent:        exponent,
		Multiplier:      100,
		PerformancePool: 1000,
		ClusterBonus:    300,
		Participation:   ParticipationBonus,
		Grouping:        Grouping{Gap: DefaultImpunityGap, Floor: NoFloor},
	}
}

func (s *Proposed) Name() string {
	return "proposed-" + strconv.FormatFloat(s.Exponent, 'f', 1, 64)
}

func (s *Proposed) weight(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Pow(s.Multiplier*v, s.Exponent)
}

func (s *Proposed) Score(r Ratios) (Scores, error) {
	var weighted [faction.Count]float64
	for i, v := range r {
		weighted[i] = s.weight(v)
	}
	total := floats.Sum(weighted[:])
	if total == 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return Scores{}, fmt.Errorf("%s: total weighted performance %v: %w", s.Name(), total, ErrDegenerateScenario)
	}

	im := s.Grouping.Group(r)
	var out Scores
	for i, v := range r {
		out[i] = s.PerformancePool*weighted[i]/total +
			im.Bonus(v, s.ClusterBonus) +
			participation(v, s.Participation)
	}
	return out, nil
}

// DefaultStrategies returns the three systems being compared: Current and
// Proposed with exponents 1.5 and 2.0.
func DefaultStrategies() []Strategy {
	return []Strategy{NewCurrent(), NewProposed(1.5), NewProposed(2.0)}
}
