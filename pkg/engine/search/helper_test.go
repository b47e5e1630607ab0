package search

import (
	"strings"
	"testing"

	"github.com/lintang-b-s/pressurex/pkg"
	"github.com/lintang-b-s/pressurex/pkg/datastructure"
	"github.com/lintang-b-s/pressurex/pkg/parser"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// the worked example scan: solo plan at 30 minutes releases 1651, duo plan
// at 26 minutes each releases 1707.
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

func buildExampleGraph(t *testing.T) *datastructure.ValveGraph {
	t.Helper()

	valves, err := parser.NewScanParser().Parse(strings.NewReader(exampleScan))
	require.NoError(t, err)
	graph, err := datastructure.NewValveGraph(valves, pkg.START_VALVE)
	require.NoError(t, err)
	return graph
}

func buildExampleSearch(t *testing.T) *PressureSearch {
	t.Helper()
	return NewPressureSearch(buildExampleGraph(t), zap.NewNop())
}

func scaleRates(t *testing.T, graph *datastructure.ValveGraph, factor int) *datastructure.ValveGraph {
	t.Helper()

	scaled := make([]datastructure.Valve, 0, graph.NumberOfValves())
	for i := 0; i < graph.NumberOfValves(); i++ {
		u := datastructure.Index(i)
		tunnels := make([]string, 0, len(graph.GetNeighbors(u)))
		for _, w := range graph.GetNeighbors(u) {
			tunnels = append(tunnels, graph.GetName(w))
		}
		scaled = append(scaled, datastructure.NewValve(graph.GetName(u), graph.GetFlowRate(u)*factor, tunnels))
	}

	scaledGraph, err := datastructure.NewValveGraph(scaled, pkg.START_VALVE)
	require.NoError(t, err)
	return scaledGraph
}
