// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing constructors and read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
//   - Every exported function documents complexity and locking strategy.

package core

// NewMixedGraph creates a new Graph that allows per-edge directedness overrides
// via EdgeOption, while preserving deterministic option application order.
//
// It prepends WithMixedEdges() to the caller-provided options and delegates to
// NewGraph, without mutating the caller's opts slice.
//
// Complexity: O(len(opts)).
func NewMixedGraph(opts ...GraphOption) *Graph {
	// Prepend WithMixedEdges() as the very first option so any later per-edge
	// assumptions see allowMixed == true. Allocate a new slice to avoid
	// mutating the caller's slice.
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
//
// Complexity: O(1). Locking: muVert read lock.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the graph-wide default directedness applied to newly
// created edges. Per-edge overrides require mixed-mode (MixedEdges()==true).
//
// This does not indicate whether the graph currently contains directed edges;
// use HasDirectedEdges() or Stats().DirectedEdgeCount for that.
//
// Complexity: O(1). Locking: muVert read lock.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
//
// Complexity: O(1). Locking: muVert read lock.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are
// permitted by policy. If false, AddEdge rejects duplicates with
// ErrMultiEdgeNotAllowed.
//
// Complexity: O(1). Locking: muVert read lock.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge Directed overrides are permitted via
// EdgeOption (specifically WithEdgeDirected) during AddEdge.
//
// Complexity: O(1). Locking: muVert read lock.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// Stats produces a deterministic, read-only snapshot of configuration flags
// and catalog sizes, including a classification of edges by their Directed
// flag.
//
// The two lock scopes are taken one after another (flags/vertices under
// muVert, then edges under muEdgeAdj); a concurrently mutated graph yields a
// snapshot that is consistent per phase.
//
// Complexity: O(V+E). Locking: muVert read lock, then muEdgeAdj read lock.
func (g *Graph) Stats() *GraphStats {
	// First phase: capture configuration flags and vertex count under muVert.
	g.muVert.RLock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		MixedMode:       g.allowMixed,
		VertexCount:     len(g.vertices),
	}
	g.muVert.RUnlock()

	// Second phase: compute edge counters under muEdgeAdj.
	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	var e *Edge
	for _, e = range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
