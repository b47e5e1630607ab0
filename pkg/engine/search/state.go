package search

import (
	"github.com/lintang-b-s/pressurex/pkg/datastructure"
	"github.com/lintang-b-s/pressurex/pkg/util"
)

// searchState is one frame of the depth-first worklist: the agent's
// position, the set of valves already opened, the whole minutes left, and
// the pressure already banked. states are value types, each expansion
// creates fresh ones and never shares them.
type searchState struct {
	current         datastructure.Index
	mask            datastructure.Mask
	remainingTime   int
	cumulativeValue int
}

// BestPerMask records, for every distinct opened-valve set reached during a
// search, the highest cumulative pressure seen with exactly that set. every
// visited state updates it, not only terminal ones, so every prefix of every
// path is a valid single-agent sub-plan for the duo combiner.
type BestPerMask map[datastructure.Mask]int

func NewBestPerMask() BestPerMask {
	return make(BestPerMask)
}

func (t BestPerMask) Update(mask datastructure.Mask, value int) {
	if best, ok := t[mask]; !ok || value > best {
		t[mask] = value
	}
}

// Merge folds other into t with an element-wise max. commutative and
// associative, so the order in which worker tables arrive does not matter.
func (t BestPerMask) Merge(other BestPerMask) {
	for mask, value := range other {
		t.Update(mask, value)
	}
}

func (t BestPerMask) Max() int {
	best := 0
	for _, value := range t {
		best = util.MaxInt(best, value)
	}
	return best
}
