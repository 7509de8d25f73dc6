// Package kdisjoint extracts k pairwise edge-disjoint paths between two
// vertices of a simple weighted digraph, with minimum total weight across
// the whole set. One call plans k failure-independent routes: a link on one
// path may die without touching the others.
//
// The engine runs the successive-shortest-path scheme shared by Suurballe's
// and Bhandari's constructions. The caller's graph is never modified; every
// round works on a private arc arena.
//
// # Rounds and the reduced-cost transform
//
// Each of the up-to-k rounds finds one shortest path on the working graph,
// then rebases every arc weight onto the round's distances, w'(u,v) =
// w(u,v) + dist(u) - dist(v), and reverses the path's arcs at weight zero.
// The rebased weights are non-negative by the optimality of dist, so the
// next round may use Dijkstra again; a reversed arc taken by a later round
// cancels the earlier traversal of that edge. When the sink becomes
// unreachable the loop stops early: fewer than k disjoint paths simply
// exist, which is an answer, not an error.
//
// # Cancellation and stitching
//
// After the rounds, an arc that ended up reversed an odd number of times
// carries net forward traffic on its original edge; every other edge
// cancels out of the result entirely. The surviving edges form a flow of
// path count value from source to sink, which the engine peels apart by
// walking successor lists in ascending target-ID order. Zero-weight detours
// that cancellation can leave behind are spliced out during the walk, so
// every returned path is simple.
//
// # Vertex-disjoint sets
//
// The engine guarantees edge-disjointness; paths may still share interior
// vertices. For vertex-disjoint routes, split every vertex v of your graph
// into v_in and v_out joined by a zero-weight edge, aim v's in-edges at
// v_in and hang its out-edges off v_out, then run FindPaths from
// source_out to sink_in: edge-disjoint on the split graph is
// vertex-disjoint on the original.
//
// # Bellman-Ford rounds
//
// WithBellmanFordRounds() swaps the per-round solver for Bellman-Ford, the
// Bhandari variant. The transform is unchanged; what changes is the input
// contract: negative edge weights are accepted (a negative cycle raises
// ErrNegativeCycle), where Dijkstra rounds reject them eagerly with
// ErrNegativeWeight. Working weights are internal either way; returned
// paths always carry original edge weights.
//
// # Determinism
//
// Identical inputs yield identical output: the arc arena is built in
// ascending edge-ID order, round solvers break ties by ascending vertex
// index, stitching consumes successors in ascending target-ID order, and
// the final set is sorted by ascending weight, then edge count, then
// lexicographic vertex sequence.
//
// Complexity: k Dijkstra rounds cost O(k·(V+E)·log V) with the binary-heap
// frontier; Bellman-Ford rounds cost O(k·V·E). Stitching is O(V+E).
//
// Error catalogue: ErrNilGraph, ErrNotDirected, ErrNotSimple,
// ErrUnweightedGraph, ErrBadK, ErrSameEndpoints, ErrVertexNotFound,
// ErrNegativeWeight, ErrNegativeCycle, ErrOptionViolation, ErrInternal.
package kdisjoint
