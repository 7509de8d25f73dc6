package bidir_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/bidir"
	"github.com/katalvlaran/lvlpath/core"
)

// ExampleFindPath meets in the middle of the diamond: the forward search
// from A and the backward search from D each settle one hop before the sum
// criterion proves A→B→D cannot be beaten.
func ExampleFindPath() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "D", 1)
	_, _ = g.AddEdge("A", "C", 5)
	_, _ = g.AddEdge("C", "D", 1)

	p, err := bidir.FindPath(g, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p)

	// Output:
	// A→B→D (2)
}
