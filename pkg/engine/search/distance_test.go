package search

import (
	"testing"

	"github.com/lintang-b-s/pressurex/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDistanceMatrixInvariants(t *testing.T) {
	graph := buildExampleGraph(t)
	dist := BuildDistanceMatrix(graph)
	n := graph.NumberOfValves()

	for i := 0; i < n; i++ {
		assert.Equal(t, 0, dist[i][i])
		for j := 0; j < n; j++ {
			// tunnels are bidirectional in every scan
			assert.Equal(t, dist[i][j], dist[j][i])
			for k := 0; k < n; k++ {
				assert.LessOrEqual(t, dist[i][j], dist[i][k]+dist[k][j])
			}
		}
	}
}

func TestBuildDistanceMatrixHops(t *testing.T) {
	graph := buildExampleGraph(t)
	dist := BuildDistanceMatrix(graph)

	aa, ok := graph.GetIndex("AA")
	require.True(t, ok)
	jj, _ := graph.GetIndex("JJ")
	hh, _ := graph.GetIndex("HH")
	dd, _ := graph.GetIndex("DD")

	assert.Equal(t, 1, dist[aa][dd])
	assert.Equal(t, 2, dist[aa][jj])
	assert.Equal(t, 5, dist[aa][hh])
	assert.Equal(t, 7, dist[jj][hh])
}

func TestBuildDistanceMatrixDisconnected(t *testing.T) {
	valves := []datastructure.Valve{
		datastructure.NewValve("AA", 0, []string{"BB"}),
		datastructure.NewValve("BB", 5, []string{"AA"}),
		datastructure.NewValve("XX", 7, []string{"YY"}),
		datastructure.NewValve("YY", 0, []string{"XX"}),
	}
	graph, err := datastructure.NewValveGraph(valves, "AA")
	require.NoError(t, err)

	dist := BuildDistanceMatrix(graph)
	aa, _ := graph.GetIndex("AA")
	xx, _ := graph.GetIndex("XX")

	// unreachable pairs keep a distance no budget can afford
	assert.Greater(t, dist[aa][xx], 1<<20)
}
