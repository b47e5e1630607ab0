package search

import (
	"github.com/lintang-b-s/pressurex/pkg/concurrent"
)

// RunConcurrent is Run spread over a worker pool. the top-level branches
// from the start valve are independent subtrees, so each one is searched by
// a worker with a private best-per-mask table and the tables are merged with
// an element-wise max at the end. the merged result is identical to a
// sequential Run over the same budget.
func (ps *PressureSearch) RunConcurrent(budget, numWorkers int) (int, BestPerMask) {
	root := searchState{
		current:       ps.graph.GetStart(),
		remainingTime: budget,
	}
	seeds := ps.expand(root, nil)

	merged := NewBestPerMask()
	merged.Update(root.mask, root.cumulativeValue)
	if len(seeds) == 0 || numWorkers <= 1 {
		_, table := ps.Run(budget)
		merged.Merge(table)
		return merged.Max(), merged
	}

	pool := concurrent.NewWorkerPool[searchState, BestPerMask](numWorkers, len(seeds))
	pool.Start(ps.searchSubtree)
	for _, seed := range seeds {
		pool.AddJob(seed)
	}
	pool.Close()
	pool.Wait()

	for table := range pool.CollectResults() {
		merged.Merge(table)
	}

	return merged.Max(), merged
}

// searchSubtree runs the depth-first worklist over one top-level branch.
func (ps *PressureSearch) searchSubtree(seed searchState) BestPerMask {
	table := NewBestPerMask()

	stack := []searchState{seed}
	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		table.Update(state.mask, state.cumulativeValue)
		stack = ps.expand(state, stack)
	}

	return table
}
