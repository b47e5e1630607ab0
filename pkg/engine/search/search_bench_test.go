package search

import (
	"fmt"
	"sort"
	"testing"

	"github.com/lintang-b-s/pressurex/pkg/datastructure"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// randomScan builds a connected bidirectional valve network: a chain through
// every valve plus a few random shortcut tunnels.
func randomScan(b *testing.B, n int, seed uint64) *datastructure.ValveGraph {
	b.Helper()

	rng := rand.New(rand.NewSource(seed))

	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("%c%c", 'A'+i/26, 'A'+i%26)
	}

	tunnels := make([]map[string]struct{}, n)
	for i := 0; i < n; i++ {
		tunnels[i] = make(map[string]struct{})
	}
	link := func(i, j int) {
		tunnels[i][names[j]] = struct{}{}
		tunnels[j][names[i]] = struct{}{}
	}
	for i := 1; i < n; i++ {
		link(i, i-1)
	}
	for k := 0; k < n/2; k++ {
		link(rng.Intn(n), rng.Intn(n))
	}

	valves := make([]datastructure.Valve, 0, n)
	for i := 0; i < n; i++ {
		neighbors := make([]string, 0, len(tunnels[i]))
		for name := range tunnels[i] {
			if name != names[i] {
				neighbors = append(neighbors, name)
			}
		}
		sort.Strings(neighbors)

		rate := rng.Intn(26)
		if i == 0 {
			rate = 0 // the start valve is always stuck
		}
		valves = append(valves, datastructure.NewValve(names[i], rate, neighbors))
	}

	graph, err := datastructure.NewValveGraph(valves, names[0])
	if err != nil {
		b.Fatalf("err: %v", err)
	}
	return graph
}

func BenchmarkRunSolo(b *testing.B) {
	ps := NewPressureSearch(randomScan(b, 14, 42), zap.NewNop())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ps.Run(26)
	}
}

func BenchmarkRunConcurrent(b *testing.B) {
	ps := NewPressureSearch(randomScan(b, 14, 42), zap.NewNop())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ps.RunConcurrent(26, 4)
	}
}

func BenchmarkBestDisjointPair(b *testing.B) {
	ps := NewPressureSearch(randomScan(b, 14, 42), zap.NewNop())
	_, table := ps.Run(26)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table.BestDisjointPair()
	}
}
