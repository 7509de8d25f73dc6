package sssp_test

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/sssp"
)

// ExampleDijkstra computes a full shortest-path tree on a small diamond:
// the two-hop route A→B→D (2) beats the heavier A→C→D (6).
func ExampleDijkstra() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "D", 1)
	_, _ = g.AddEdge("A", "C", 5)
	_, _ = g.AddEdge("C", "D", 1)

	tree, err := sssp.Dijkstra(g, sssp.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("dist(D):", tree.WeightTo("D"))
	fmt.Println("path(D):", tree.PathTo("D"))

	// Output:
	// dist(D): 2
	// path(D): A→B→D (2)
}

// ExampleBetween answers a single source→target query without materializing
// the whole tree.
func ExampleBetween() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "D", 1)
	_, _ = g.AddEdge("A", "C", 5)
	_, _ = g.AddEdge("C", "D", 1)

	p, err := sssp.Between(g, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p)

	// Output:
	// A→B→D (2)
}

// ExampleBellmanFord shows the default reaction to a reachable negative
// cycle: a structured error naming the cycle and its weight.
func ExampleBellmanFord() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "D", -10)
	_, _ = g.AddEdge("D", "B", 1)

	_, err := sssp.BellmanFord(g, sssp.Source("A"))
	fmt.Println("cycle detected:", errors.Is(err, sssp.ErrNegativeCycle))
	fmt.Println(err)

	// Output:
	// cycle detected: true
	// sssp: negative-weight cycle reachable from source: D→B→D (-9)
}

// ExampleBFS counts hops over an unweighted graph; the A→C shortcut makes C
// one hop away even though the chain passes through B.
func ExampleBFS() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)
	_, _ = g.AddEdge("A", "C", 0)

	tree, err := sssp.BFS(g, sssp.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("hops(C):", tree.WeightTo("C"))
	fmt.Println("hops(D):", tree.WeightTo("D"))

	// Output:
	// hops(C): 1
	// hops(D): 2
}

// ExampleManySources fans several tree computations out across goroutines
// and collects them keyed by source.
func ExampleManySources() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "D", 1)
	_, _ = g.AddEdge("A", "C", 5)
	_, _ = g.AddEdge("C", "D", 1)

	trees, err := sssp.ManySources(g, []string{"A", "B"}, sssp.WithParallelism(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sources := make([]string, 0, len(trees))
	for src := range trees {
		sources = append(sources, src)
	}
	sort.Strings(sources)
	for _, src := range sources {
		fmt.Printf("%s→D: %g\n", src, trees[src].WeightTo("D"))
	}

	// Output:
	// A→D: 2
	// B→D: 1
}
