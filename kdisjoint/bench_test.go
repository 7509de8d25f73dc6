package kdisjoint_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/kdisjoint"
)

// benchGrid builds an m×m right/down digraph with weights in [1,10); up to
// m disjoint corner-to-corner paths exist.
func benchGrid(m int, seed int64) *core.Graph {
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	id := func(r, c int) string { return fmt.Sprintf("g%03d_%03d", r, c) }
	for r := 0; r < m; r++ {
		for c := 0; c < m; c++ {
			if c+1 < m {
				_, _ = g.AddEdge(id(r, c), id(r, c+1), 1+rng.Float64()*9)
			}
			if r+1 < m {
				_, _ = g.AddEdge(id(r, c), id(r+1, c), 1+rng.Float64()*9)
			}
		}
	}

	return g
}

// BenchmarkFindPaths_K scales the requested path count on one grid.
func BenchmarkFindPaths_K(b *testing.B) {
	const M = 40
	g := benchGrid(M, 42)
	src, dst := "g000_000", fmt.Sprintf("g%03d_%03d", M-1, M-1)

	for _, k := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("K%d", k), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(M * M))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = kdisjoint.FindPaths(g, src, dst, k)
			}
		})
	}
}

// BenchmarkFindPaths_Solvers compares Dijkstra against Bellman-Ford rounds.
func BenchmarkFindPaths_Solvers(b *testing.B) {
	const M = 30
	g := benchGrid(M, 7)
	src, dst := "g000_000", fmt.Sprintf("g%03d_%03d", M-1, M-1)

	b.Run("Dijkstra", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(M * M))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = kdisjoint.FindPaths(g, src, dst, 3)
		}
	})
	b.Run("BellmanFord", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(M * M))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = kdisjoint.FindPaths(g, src, dst, 3, kdisjoint.WithBellmanFordRounds())
		}
	})
}
