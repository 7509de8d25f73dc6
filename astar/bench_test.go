package astar_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvlpath/astar"
	"github.com/katalvlaran/lvlpath/core"
)

// benchGrid builds an m×m unit-weight digraph plus a Manhattan heuristic.
func benchGrid(m int) (*core.Graph, astar.Heuristic) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	coord := make(map[string][2]int, m*m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			id := fmt.Sprintf("%d_%d", i, j)
			coord[id] = [2]int{i, j}
			if i+1 < m {
				_, _ = g.AddEdge(id, fmt.Sprintf("%d_%d", i+1, j), 1)
			}
			if j+1 < m {
				_, _ = g.AddEdge(id, fmt.Sprintf("%d_%d", i, j+1), 1)
			}
		}
	}
	h := func(vertex, target string) float64 {
		a, b := coord[vertex], coord[target]

		return math.Abs(float64(a[0]-b[0])) + math.Abs(float64(a[1]-b[1]))
	}

	return g, h
}

// BenchmarkFindPath_Grid compares a blind search (zero heuristic ≡ Dijkstra)
// against a guided one, with and without the BPMX correction engaged.
func BenchmarkFindPath_Grid(b *testing.B) {
	const M = 60
	g, manhattan := benchGrid(M)
	src, tgt := "0_0", fmt.Sprintf("%d_%d", M-1, M-1)
	V, E := M*M, 2*M*(M-1)

	modes := []struct {
		name string
		h    astar.Heuristic
		opts []astar.Option
	}{
		{name: "Zero", h: func(_, _ string) float64 { return 0 }},
		{name: "Manhattan", h: manhattan},
		{name: "ManhattanBPMX", h: manhattan, opts: []astar.Option{astar.WithInconsistentHeuristic()}},
	}
	for _, mode := range modes {
		b.Run(mode.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(V + E))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = astar.FindPath(g, src, tgt, mode.h, mode.opts...)
			}
		})
	}
}
