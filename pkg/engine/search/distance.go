package search

import (
	"github.com/lintang-b-s/pressurex/pkg"
	"github.com/lintang-b-s/pressurex/pkg/datastructure"
	"github.com/lintang-b-s/pressurex/pkg/util"
)

// BuildDistanceMatrix computes all-pairs shortest hop counts between dense
// valve indices with Floyd-Warshall. every tunnel costs one minute. cubic in
// the valve count, which is at most a few dozen per scan.
func BuildDistanceMatrix(graph *datastructure.ValveGraph) [][]int {
	n := graph.NumberOfValves()

	dist := make([][]int, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]int, n)
		for j := 0; j < n; j++ {
			dist[i][j] = pkg.INF_DIST
		}
		dist[i][i] = 0
	}
	for u := datastructure.Index(0); u < datastructure.Index(n); u++ {
		for _, w := range graph.GetNeighbors(u) {
			dist[u][w] = 1
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				dist[i][j] = util.MinInt(dist[i][j], dist[i][k]+dist[k][j])
			}
		}
	}

	return dist
}
