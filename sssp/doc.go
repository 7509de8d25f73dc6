// Package sssp provides the single-source shortest-path engines over a
// core.Graph:
//
//	Dijkstra    – non-negative weights, frontier-driven, O((V+E) log V).
//	BellmanFord – negative weights allowed, detects reachable negative
//	              cycles, O(V·E) worst case.
//	BFS         – unweighted graphs, minimum hop count, O(V+E).
//	Between     – one source→target path via early-exit Dijkstra.
//	ManySources – one Dijkstra tree per source, computed concurrently.
//
// All engines return their answers through the route package: a *route.Tree
// for the single-source forms, a *route.Path for Between. Distances are
// float64 and every comparison runs through the tolerance package, so
// accumulated floating-point noise cannot flip a relaxation: an "improvement"
// smaller than epsilon is no improvement at all.
//
// # Determinism
//
// Given the same graph and options, every engine produces the same tree:
// vertices are interned into a dense arena in sorted-ID order, adjacency is
// scanned in ascending edge-ID order, and the frontier breaks equal keys by
// ascending vertex index. Ties between equal-weight paths therefore resolve
// the same way on every run.
//
// # Choosing an engine
//
// Use Dijkstra whenever all weights are non-negative; it refuses negative
// edges up front (ErrNegativeWeight) rather than returning silently wrong
// distances. Reach for BellmanFord only when negative weights are real, and
// decide what a reachable negative cycle should mean: by default it is an
// error carrying the cycle (NegativeCycleError), with
// WithTolerateNegativeCycles it degrades to a best-effort tree. BFS is the
// hop-count specialist and insists on an unweighted graph (ErrWeightedGraph)
// so a weighted graph is never mistaken for a uniform-cost one.
//
// # Cancellation
//
// Engines accept WithContext and poll it at natural checkpoints: per settled
// vertex (Dijkstra/Between), per round (BellmanFord), per dequeue (BFS).
// A canceled run returns ctx.Err() wrapped; partial state is discarded.
//
// Error catalogue: ErrEmptySource, ErrNilGraph, ErrUnweightedGraph,
// ErrWeightedGraph, ErrVertexNotFound, ErrNegativeWeight, ErrNegativeCycle,
// ErrOptionViolation.
package sssp
