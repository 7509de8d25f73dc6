// File: methods_clone.go
// Role: Whole-graph copying and reset.
//
// Determinism:
//   - CloneEmpty/Clone carry nextEdgeID so AddEdge on the copy continues the
//     textual ID sequence and never collides with copied edges.
//   - Clear restarts the sequence at zero (the next edge is "e1" again).
//
// Concurrency:
//   - Copies take read locks on the source only; the copy under construction
//     is unshared and needs no locking.
//   - Clear takes both write locks in muVert -> muEdgeAdj order.
package core

import "sync/atomic"

// configOptions rebuilds the option list that reproduces g's configuration
// flags on a fresh graph. Flags are immutable after NewGraph, so the caller
// only needs whatever lock it already holds for the rest of its snapshot.
func configOptions(g *Graph) []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMixed {
		opts = append(opts, WithMixedEdges())
	}

	return opts
}

// CloneEmpty returns a new Graph with the same configuration and vertex set
// but no edges.
//
// Steps:
//  1. Under both read locks, rebuild the configuration via configOptions and
//     construct the copy.
//  2. Carry nextEdgeID so the copy's future edge IDs stay collision-free.
//  3. Copy each vertex record and bootstrap its adjacency buckets the same
//     way AddVertex does.
//
// Vertex Metadata maps are shared with the source, not duplicated; treat
// them as read-only when both graphs are alive.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(configOptions(g)...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	var id string
	var v *Vertex
	for id, v = range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		ensureAdjacency(clone, id, id)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// adjacency. Edge records are duplicated, so reweighting the copy never
// touches the source.
//
// Steps:
//  1. CloneEmpty for flags, vertices and the ID counter.
//  2. Under the source's muEdgeAdj read lock, duplicate each Edge struct.
//  3. Link adjacency through ensureAdjacency, mirroring undirected non-loop
//     edges exactly as AddEdge does.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var (
		eid string
		e   *Edge
	)
	for eid, e = range g.edges {
		dup := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		clone.edges[eid] = dup

		ensureAdjacency(clone, dup.From, dup.To)
		clone.adjacencyList[dup.From][dup.To][eid] = struct{}{}
		if !dup.Directed && dup.From != dup.To {
			ensureAdjacency(clone, dup.To, dup.From)
			clone.adjacencyList[dup.To][dup.From][eid] = struct{}{}
		}
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration
// flags. Catalogs are reallocated rather than drained, so the old maps can
// be collected wholesale.
//
// Complexity: O(1) map reallocation.
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
}
