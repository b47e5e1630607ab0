package engine

import (
	"strings"
	"testing"

	"github.com/lintang-b-s/pressurex/pkg"
	"github.com/lintang-b-s/pressurex/pkg/datastructure"
	"github.com/lintang-b-s/pressurex/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const exampleScan = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II`

func buildExampleEngine(t *testing.T) *Engine {
	t.Helper()

	valves, err := parser.NewScanParser().Parse(strings.NewReader(exampleScan))
	require.NoError(t, err)
	graph, err := datastructure.NewValveGraph(valves, pkg.START_VALVE)
	require.NoError(t, err)

	e, err := NewEngine(graph, zap.NewNop())
	require.NoError(t, err)
	return e
}

func TestEnginePlans(t *testing.T) {
	e := buildExampleEngine(t)

	assert.Equal(t, 1651, e.SoloPlan(pkg.SOLO_BUDGET))
	assert.Equal(t, 1707, e.DuoPlan(pkg.DUO_BUDGET))
}

func TestEnginePlanCache(t *testing.T) {
	e := buildExampleEngine(t)

	first := e.SoloPlan(pkg.SOLO_BUDGET)
	second := e.SoloPlan(pkg.SOLO_BUDGET)
	assert.Equal(t, first, second)

	// solo and duo answers for the same budget must not collide in the cache
	assert.NotEqual(t, e.SoloPlan(pkg.DUO_BUDGET), e.DuoPlan(pkg.DUO_BUDGET))
}
