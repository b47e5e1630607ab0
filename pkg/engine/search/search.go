package search

import (
	"github.com/lintang-b-s/pressurex/pkg/datastructure"
	"go.uber.org/zap"
)

// PressureSearch explores every profitable order of valve activations from
// the scan's start valve under a whole-minute budget. opening a valve with
// remainingTime minutes left releases flowRate*remainingTime pressure in
// total, so the payoff of a whole plan is known without simulating minutes.
type PressureSearch struct {
	graph *datastructure.ValveGraph
	dist  [][]int
	rates []int
	log   *zap.Logger
}

func NewPressureSearch(graph *datastructure.ValveGraph, log *zap.Logger) *PressureSearch {
	return &PressureSearch{
		graph: graph,
		dist:  BuildDistanceMatrix(graph),
		rates: graph.GetFlowRates(),
		log:   log,
	}
}

func (ps *PressureSearch) GetGraph() *datastructure.ValveGraph {
	return ps.graph
}

func (ps *PressureSearch) GetDistanceMatrix() [][]int {
	return ps.dist
}

// Run explores the whole bounded state space depth-first with an explicit
// stack and returns the best achievable pressure plus the best-per-mask
// table. the table always contains the empty mask, so a degenerate scan or a
// zero budget yields 0.
func (ps *PressureSearch) Run(budget int) (int, BestPerMask) {
	table := NewBestPerMask()

	stack := make([]searchState, 0, ps.graph.NumberOfValves())
	stack = append(stack, searchState{
		current:       ps.graph.GetStart(),
		remainingTime: budget,
	})

	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		table.Update(state.mask, state.cumulativeValue)
		stack = ps.expand(state, stack)
	}

	return table.Max(), table
}

// expand pushes every profitable next activation of state onto the stack:
// valves not yet opened, with a positive flow rate, reachable with at least
// one minute left after travelling and spending one minute opening.
func (ps *PressureSearch) expand(state searchState, stack []searchState) []searchState {
	n := datastructure.Index(ps.graph.NumberOfValves())
	for next := datastructure.Index(0); next < n; next++ {
		if state.mask.Has(next) || ps.rates[next] == 0 {
			continue
		}
		newRemaining := state.remainingTime - ps.dist[state.current][next] - 1
		if newRemaining <= 0 {
			continue
		}

		stack = append(stack, searchState{
			current:         next,
			mask:            state.mask.Set(next),
			remainingTime:   newRemaining,
			cumulativeValue: state.cumulativeValue + ps.rates[next]*newRemaining,
		})
	}
	return stack
}
