// Package scoring turns end-of-game supply center counts into rating changes.
//
// A scenario flows one way: counts are normalized into VSCC ratios
// (victory supply center completion), each Strategy turns the ratios into raw
// scores, and the Allocator redistributes a fixed rating pool in proportion to
// those scores. Nothing is shared between scenarios.
package scoring

import (
	"fmt"
	"strings"

	"github.com/freeeve/vscc-rating/pkg/faction"
)

// Counts holds final supply center counts in faction registry order.
type Counts [faction.Count]int

// Ratios holds one VSCC ratio per faction in registry order.
type Ratios [faction.Count]float64

// Normalization selects how progress above the starting count is scaled.
type Normalization int

const (
	// DistanceToVictory divides by the remaining distance from the starting
	// count to the victory threshold, so reaching the threshold scores 1.
	DistanceToVictory Normalization = iota
	// ShareOfVictory divides by the victory threshold itself.
	ShareOfVictory
)

func (n Normalization) String() string {
	switch n {
	case DistanceToVictory:
		return "distance"
	case ShareOfVictory:
		return "share"
	default:
		return fmt.Sprintf("normalization(%d)", int(n))
	}
}

// ParseNormalization accepts "distance" or "share".
func ParseNormalization(s string) (Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distance", "distance-to-victory", "":
		return DistanceToVictory, nil
	case "share", "share-of-victory":
		return ShareOfVictory, nil
	}
	return 0, fmt.Errorf("unknown normalization %q", s)
}

// Ratio returns the faction's VSCC ratio for a final supply center count.
// Below the starting count the ratio is the negative fractional shortfall,
// reaching -1 at elimination.
func (n Normalization) Ratio(f faction.Faction, final int) float64 {
	start := f.StartingCount()
	if final < start {
		return -(1 - float64(final)/float64(start))
	}
	divisor := f.VictoryThreshold()
	if n == DistanceToVictory {
		divisor -= start
	}
	return float64(final-start) / float64(divisor)
}

// Ratios normalizes every count of a scenario.
func (n Normalization) Ratios(c Counts) Ratios {
	var r Ratios
	for i, final := range c {
		r[i] = n.Ratio(faction.Faction(i), final)
	}
	return r
}
