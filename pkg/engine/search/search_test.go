package search

import (
	"testing"

	"github.com/lintang-b-s/pressurex/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunExampleScan(t *testing.T) {
	ps := buildExampleSearch(t)

	best, table := ps.Run(30)

	assert.Equal(t, 1651, best)
	// the empty mask is always recorded, a degenerate second agent is a
	// legitimate sub-plan.
	assert.Contains(t, table, datastructure.Mask(0))
	assert.Equal(t, best, table.Max())
}

func TestRunZeroBudget(t *testing.T) {
	ps := buildExampleSearch(t)

	best, table := ps.Run(0)

	assert.Equal(t, 0, best)
	assert.Equal(t, BestPerMask{datastructure.Mask(0): 0}, table)
}

func TestRunSingleValveScan(t *testing.T) {
	graph, err := datastructure.NewValveGraph(
		[]datastructure.Valve{datastructure.NewValve("AA", 0, nil)}, "AA")
	require.NoError(t, err)
	ps := NewPressureSearch(graph, zap.NewNop())

	for _, budget := range []int{0, 1, 30, 1000} {
		best, _ := ps.Run(budget)
		assert.Equal(t, 0, best)
	}
}

func TestRunBudgetMonotonic(t *testing.T) {
	ps := buildExampleSearch(t)

	prev := 0
	for budget := 0; budget <= 30; budget++ {
		best, _ := ps.Run(budget)
		assert.GreaterOrEqual(t, best, prev, "budget %d", budget)
		prev = best
	}
}

func TestRunIdempotent(t *testing.T) {
	ps := buildExampleSearch(t)

	firstBest, firstTable := ps.Run(30)
	secondBest, secondTable := ps.Run(30)

	assert.Equal(t, firstBest, secondBest)
	assert.Equal(t, firstTable, secondTable)
}

func TestRunScalesWithFlowRates(t *testing.T) {
	graph := buildExampleGraph(t)
	doubled := scaleRates(t, graph, 2)

	base, baseTable := NewPressureSearch(graph, zap.NewNop()).Run(26)
	scaled, scaledTable := NewPressureSearch(doubled, zap.NewNop()).Run(26)

	assert.Equal(t, 2*base, scaled)
	assert.Equal(t, 2*baseTable.BestDisjointPair(), scaledTable.BestDisjointPair())
}

func TestRunConcurrentMatchesSequential(t *testing.T) {
	ps := buildExampleSearch(t)

	seqBest, seqTable := ps.Run(30)

	for _, workers := range []int{1, 2, 4, 16} {
		parBest, parTable := ps.RunConcurrent(30, workers)
		assert.Equal(t, seqBest, parBest, "workers=%d", workers)
		assert.Equal(t, seqTable, parTable, "workers=%d", workers)
	}
}

func TestBestPerMaskMerge(t *testing.T) {
	a := BestPerMask{0: 0, 1: 10, 2: 7}
	b := BestPerMask{1: 4, 2: 9, 4: 3}

	a.Merge(b)

	assert.Equal(t, BestPerMask{0: 0, 1: 10, 2: 9, 4: 3}, a)
	assert.Equal(t, 10, a.Max())
}
