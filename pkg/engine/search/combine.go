package search

import (
	"sort"

	"github.com/lintang-b-s/pressurex/pkg/datastructure"
)

type maskEntry struct {
	mask  datastructure.Mask
	value int
}

// BestDisjointPair finds the two recorded opened-valve sets that share no
// valve and whose values sum highest: the best split of the scan between two
// agents running under the same budget. entries are scanned best-first so
// the quadratic pass cuts off as soon as no remaining pair can win. an empty
// table yields 0, and because the empty mask is always recorded the result
// is never below the best single plan.
func (t BestPerMask) BestDisjointPair() int {
	entries := make([]maskEntry, 0, len(t))
	for mask, value := range t {
		entries = append(entries, maskEntry{mask: mask, value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].value > entries[j].value
	})

	best := 0
	for i := 0; i < len(entries); i++ {
		if entries[i].value*2 <= best {
			break
		}
		for j := i; j < len(entries); j++ {
			if entries[i].value+entries[j].value <= best {
				break
			}
			if entries[i].mask.Disjoint(entries[j].mask) {
				best = entries[i].value + entries[j].value
				break
			}
		}
	}
	return best
}
