package scoring

import (
	"fmt"
	"math"

	"github.com/freeeve/vscc-rating/pkg/faction"
	"gonum.org/v1/gonum/floats"
)

// RatingPoolPerGame is the rating redistributed by every game.
const RatingPoolPerGame = 2625.0

// Proportions holds each faction's share of the total score.
type Proportions [faction.Count]float64

// Changes holds each faction's net rating change.
type Changes [faction.Count]float64

// Allocator converts raw scores into zero-sum rating changes.
type Allocator struct {
	Pool float64
}

// NewAllocator returns an allocator over the standard rating pool.
func NewAllocator() Allocator {
	return Allocator{Pool: RatingPoolPerGame}
}

// Baseline is the break-even share: what every faction stakes on the game.
func (a Allocator) Baseline() float64 {
	return a.Pool / faction.Count
}

// Proportions normalizes scores so they sum to 1.
func (a Allocator) Proportions(s Scores) (Proportions, error) {
	sum := floats.Sum(s[:])
	if !(sum > 0) || math.IsInf(sum, 0) {
		return Proportions{}, fmt.Errorf("score sum %v: %w", sum, ErrDegenerateScenario)
	}
	var p Proportions
	for i, v := range s {
		p[i] = v / sum
	}
	return p, nil
}

// Allocate returns each faction's share of the pool minus the baseline stake.
func (a Allocator) Allocate(s Scores) (Changes, error) {
	p, err := a.Proportions(s)
	if err != nil {
		return Changes{}, err
	}
	baseline := a.Baseline()
	var c Changes
	for i, v := range p {
		c[i] = v*a.Pool - baseline
		if math.IsNaN(c[i]) || math.IsInf(c[i], 0) {
			return Changes{}, fmt.Errorf("rating change for %s is %v: %w", faction.Faction(i), c[i], ErrDegenerateScenario)
		}
	}
	return c, nil
}
