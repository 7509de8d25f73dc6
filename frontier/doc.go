// Package frontier provides addressable min-priority queues for the
// shortest-path engines: insert, decrease-key, delete-min and min over
// (vertex, key) pairs, where vertex is a dense non-negative index and key is
// a float64 distance.
//
// # Why addressable
//
// Dijkstra-family engines must lower the priority of an already-queued
// vertex when a shorter tentative distance is found. A plain container/heap
// either re-pushes duplicates (lazy deletion) or needs an external position
// index. Frontier implementations keep that index internally, so DecreaseKey
// is a first-class O(log n) operation and every vertex is queued at most
// once.
//
// # Choosing an implementation
//
//	NewBinaryHeap  – array-backed 2-ary heap with a position arena.
//	                 The default: best constants on the graph sizes the
//	                 engines usually see.
//	NewPairingHeap – pointer-based pairing heap. O(1) amortized Insert and
//	                 very cheap DecreaseKey; pays on DeleteMin. Worth probing
//	                 on dense graphs with heavy decrease-key traffic.
//
// Both match the Supplier signature, so engines accept either via their
// WithFrontier option:
//
//	tree, err := sssp.Dijkstra(g, sssp.Source("A"),
//		sssp.WithFrontier(frontier.NewPairingHeap))
//
// # Contract
//
//   - Vertices are dense indices ≥ 0 (engines map core vertex IDs onto
//     [0,V) once per run). Negative vertices are rejected with ErrBadVertex.
//   - A vertex is "open" between Insert and the DeleteMin that removes it.
//   - Insert on an open vertex fails with ErrDuplicateVertex; engines track
//     settled vertices themselves, so re-inserting a settled vertex is legal
//     (used by A* when reopening under an inconsistent heuristic).
//   - DecreaseKey on a non-open vertex fails with ErrNotOpen; raising a key
//     fails with ErrKeyIncrease. Keys compare exactly here: engines decide
//     improvement under their epsilon tolerance before calling.
//   - DeleteMin/Min on an empty frontier fail with ErrEmptyFrontier.
//   - ErrCorrupt flags a broken internal invariant. Seeing it means a bug in
//     the frontier implementation, never in the caller.
//   - Equal keys break ties by ascending vertex index, so DeleteMin order is
//     deterministic and engine runs are reproducible.
//   - Implementations are not safe for concurrent use; each engine run owns
//     its frontier exclusively.
//
// Complexity (n = open vertices):
//
//	            Insert      DecreaseKey   DeleteMin    Min    Contains
//	binary      O(log n)    O(log n)      O(log n)     O(1)   O(1)
//	pairing     O(1)        o(log n)*     O(log n)*    O(1)   O(1)
//
// (* amortized)
package frontier
