// Package bidir provides bidirectional Dijkstra search over a weighted
// core.Graph: one frontier grows from the source over the graph, a second
// grows from the target over the edge-reversed view, and the engine settles
// one vertex on each side per iteration until the two search balls provably
// contain a cheapest route. On graphs where edges fan out evenly this
// explores roughly two balls of half the radius instead of one full ball,
// which is the difference between O(b^d) and O(2·b^(d/2)) expansions for
// branching factor b and search depth d.
//
// # Meeting and termination
//
// A candidate route is recorded whenever the two searches touch: either a
// vertex is settled by both sides, or a relaxation scans an edge whose far
// endpoint the other side has already seen. The cheapest candidate so far is
// `best`. The engine stops as soon as
//
//	min(forward frontier) + min(backward frontier) ≥ best
//
// holds: no vertex still queued on either side can start a cheaper route. It
// also stops when either frontier drains. The sum criterion is the tight bound
// for plain Dijkstra frontiers; max-based variants only pay off when a
// heuristic inflates the keys, which this engine does not do.
//
// Reconstruction stitches the forward tree's path to the meeting point with
// the backward tree's path from it, re-mapping backward edges (clones owned
// by the reversed view) to the original graph's edge identities. The result
// is a *route.Path over the caller's graph; (nil, nil) means no path, as
// everywhere in this repository.
//
// Fully undirected graphs skip the reversed view and search backward over
// the original graph directly; a reversal that changes nothing is not worth
// a clone.
//
// Error catalogue: ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound,
// ErrNegativeWeight, ErrOptionViolation.
package bidir
