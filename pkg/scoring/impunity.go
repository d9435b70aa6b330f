package scoring

import (
	"math"
	"slices"
)

// DefaultImpunityGap is the largest step between consecutive ratios (sorted
// best first) that still counts as a tie at the top.
const DefaultImpunityGap = 0.25

// gapEpsilon absorbs rounding in ratio differences so a step of exactly Gap
// still joins the group.
const gapEpsilon = 1e-9

// NoFloor disables the minimum ratio required to join the impunity group.
var NoFloor = math.Inf(-1)

// Grouping finds the factions considered tied for best in a scenario.
type Grouping struct {
	Gap   float64
	Floor float64
}

// Impunity is the result of grouping one scenario.
type Impunity struct {
	// Size is the number of factions in the top group. It is 0 when the best
	// ratio is below the grouping floor.
	Size int
	// Boundary is the first ratio that broke the chain, or the lowest ratio
	// when every faction joined. Only ratios strictly above it earn the bonus.
	Boundary float64
}

// Group walks the ratios from best to worst, extending the group while each
// value is within Gap of the one before it and not below Floor.
func (g Grouping) Group(r Ratios) Impunity {
	sorted := r
	slices.SortFunc(sorted[:], func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})

	prev := sorted[0]
	size := 0
	for _, v := range sorted {
		joined := prev-v <= g.Gap+gapEpsilon && v >= g.Floor
		prev = v
		if !joined {
			break
		}
		size++
	}
	return Impunity{Size: size, Boundary: prev}
}

// Bonus splits pool evenly across the group for a ratio above the boundary.
func (im Impunity) Bonus(v, pool float64) float64 {
	if im.Size == 0 || !(v > im.Boundary) {
		return 0
	}
	return pool / float64(im.Size)
}
