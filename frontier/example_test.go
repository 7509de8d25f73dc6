package frontier_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/frontier"
)

// ExampleFrontier walks the decrease-key lifecycle every engine relies on:
// open three vertices, improve one in place, drain in ascending key order.
func ExampleFrontier() {
	f := frontier.NewBinaryHeap(8)
	_ = f.Insert(0, 4.0)
	_ = f.Insert(1, 2.5)
	_ = f.Insert(2, 9.0)

	// Vertex 2 just got a better tentative distance.
	_ = f.DecreaseKey(2, 1.0)

	for !f.IsEmpty() {
		it, _ := f.DeleteMin()
		fmt.Printf("vertex %d at %.1f\n", it.Vertex, it.Key)
	}
	// Output:
	// vertex 2 at 1.0
	// vertex 1 at 2.5
	// vertex 0 at 4.0
}
