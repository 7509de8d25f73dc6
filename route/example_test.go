package route_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/route"
)

// ExampleNewPath assembles a path by hand and lets the constructor verify
// continuity and sum the weight.
func ExampleNewPath() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	ab, _ := g.AddEdge("A", "B", 1)
	bd, _ := g.AddEdge("B", "D", 1)

	eAB, _ := g.GetEdge(ab)
	eBD, _ := g.GetEdge(bd)

	p, err := route.NewPath(g, []*core.Edge{eAB, eBD}, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p)
	fmt.Println("simple:", p.Simple())

	// Output:
	// A→B→D (2)
	// simple: true
}

// ExampleTree_PathTo shows how a tree answers distance and path queries,
// including the unreachable case.
func ExampleTree_PathTo() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	ab, _ := g.AddEdge("A", "B", 1)
	bd, _ := g.AddEdge("B", "D", 1)
	_ = g.AddVertex("X") // isolated

	eAB, _ := g.GetEdge(ab)
	eBD, _ := g.GetEdge(bd)

	tree, _ := route.NewTree(g, "A",
		map[string]float64{"A": 0, "B": 1, "D": 2, "X": route.Unreachable},
		map[string]*core.Edge{"B": eAB, "D": eBD})

	fmt.Println("dist(D):", tree.WeightTo("D"))
	fmt.Println("path(D):", tree.PathTo("D"))
	fmt.Println("reached(X):", tree.Reached("X"))
	fmt.Println("path(X):", tree.PathTo("X"))

	// Output:
	// dist(D): 2
	// path(D): A→B→D (2)
	// reached(X): false
	// path(X): <nil>
}
