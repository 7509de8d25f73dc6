// File: methods_adjacent.go
// Role: Neighborhood APIs (OutgoingEdgesOf, IncomingEdgesOf, EdgesOf,
//       NeighborIDs, AdjacencyList) and adjacency helpers.
// Determinism:
//   - OutgoingEdgesOf()/IncomingEdgesOf()/EdgesOf() sort by Edge.ID asc.
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - AdjacencyList() returns per-vertex edgeID slices sorted by Edge.ID asc.
// Concurrency:
//   - Read operations hold muVert or muEdgeAdj read locks as needed.
//   - Helpers are called only under appropriate write locks by mutating code.
// AI-HINT (file):
//   - OutgoingEdgesOf(id): directed edges included only if e.From==id; undirected appear once; result sorted by Edge.ID asc.
//   - IncomingEdgesOf(id): directed edges included only if e.To==id; O(E) catalog scan (adjacency indexes outgoing only).
//   - NeighborIDs(id): unique, sorted (lex asc).

package core

import "sort"

// OutgoingEdgesOf returns all edges leaving the given vertex id under the
// graph's neighborhood policy.
//
// Neighborhood policy:
//   - Directed edges: include only edges with e.From == id (outgoing edges).
//   - Undirected edges: include incident edges (mirrored adjacency is used); self-loops appear once.
//
// Steps:
//  1. Validate id is non-empty (ErrEmptyVertexID).
//  2. Acquire muVert and muEdgeAdj read locks (in that order) for a consistent snapshot.
//  3. Validate vertex existence (ErrVertexNotFound).
//  4. Collect incident edges by scanning adjacencyList[id] buckets and mapping edge IDs to *Edge.
//  5. Sort the result by Edge.ID ascending and return.
//
// The returned pointers refer to live catalog edges; treat them as read-only.
// Deterministic ordering by Edge.ID makes relaxation loops reproducible,
// which the shortest-path engines rely on for stable tie-breaking.
//
// Complexity: O(d log d) where d is the number of incident edges collected.
func (g *Graph) OutgoingEdgesOf(id string) ([]*Edge, error) {
	// AI-HINT: empty id → ErrEmptyVertexID; missing vertex → ErrVertexNotFound.
	//          Deterministic order by Edge.ID asc; treat returned *Edge as read-only.
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Acquire locks in the same order as mutators (muVert -> muEdgeAdj) to avoid races
	// where a vertex disappears between validation and adjacency snapshotting.
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge

	var eid string
	var e *Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]

			// Defensive guard: adjacency should not reference missing edges, but keep safety tight.
			if e.IsNil() {
				continue
			}

			// Directed policy: only outgoing edges.
			if e.Directed && e.From != id {
				continue
			}
			// Append pointer directly: no copying
			out = append(out, e)
		}
	}
	// Sort by ID to ensure reproducible ordering
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// IncomingEdgesOf returns all edges entering the given vertex id.
//
// Neighborhood policy (mirror of OutgoingEdgesOf):
//   - Directed edges: include only edges with e.To == id (incoming edges).
//   - Undirected edges: include incident edges; self-loops appear once.
//
// The adjacency list indexes outgoing buckets only, so this method scans
// the full edge catalog, same as Degree. Backward traversals that need
// repeated incoming queries should build a ReversedView once instead.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(E + d log d). Locking: muVert then muEdgeAdj read locks.
func (g *Graph) IncomingEdgesOf(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var e *Edge
	for _, e = range g.edges {
		if e.IsNil() {
			continue
		}
		if e.Directed {
			if e.To == id {
				out = append(out, e)
			}
			continue
		}
		// Undirected: incident once (self-loops match both checks but append once).
		if e.From == id || e.To == id {
			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// EdgesOf returns every edge incident to the given vertex id regardless of
// direction: outgoing, incoming and undirected, each edge exactly once.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(E + d log d). Locking: muVert then muEdgeAdj read locks.
func (g *Graph) EdgesOf(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var e *Edge
	for _, e = range g.edges {
		if e.IsNil() {
			continue
		}
		if e.From == id || e.To == id {
			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted lexicographically ascending.
//
// Adjacency policy:
//   - For each edge returned by OutgoingEdgesOf(id):
//   - If e.From == id, include e.To.
//   - Else if !e.Directed and e.To == id, include e.From.
//
// For directed edges, only outgoing neighbors are included (consistent with
// the OutgoingEdgesOf policy).
//
// Errors: propagates ErrEmptyVertexID / ErrVertexNotFound from OutgoingEdgesOf(id).
// Complexity: O(d + k log k) where d is incident edges and k is unique neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	// AI-HINT: Output is unique and sorted (lex asc); relies on OutgoingEdgesOf(id).
	edges, err := g.OutgoingEdgesOf(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
			continue
		}
		if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot mapping each "from" vertex ID to the list of incident edge IDs.
// Each slice is sorted by Edge.ID ascending for deterministic per-vertex enumeration.
//
// Returned slices are freshly allocated and safe to retain and mutate by the
// caller. Map key iteration order is not deterministic in Go; use Vertices()
// to obtain deterministic key order if needed.
//
// Complexity: O(V + E + Σ sort(deg(v))). Locking: muEdgeAdj read lock.
func (g *Graph) AdjacencyList() map[string][]string {
	// AI-HINT: Each slice is freshly allocated and sorted; callers may retain and mutate safely.
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.adjacencyList))
	for from, toMap := range g.adjacencyList {
		// Fresh buffer per vertex to avoid sharing backing arrays across keys.
		var buf []string
		for _, edgeMap := range toMap {
			for eid := range edgeMap {
				buf = append(buf, eid) // collect all incident edge IDs
			}
		}
		sort.Strings(buf)  // deterministic enumeration
		result[from] = buf // safe to retain by the caller
	}

	return result
}

// ensureAdjacency guarantees that adjacencyList[from] and adjacencyList[from][to] are initialized.
//
// No-op when buckets already exist; O(1) amortized nested-map initialization.
// Must be called ONLY under muEdgeAdj write lock by mutating code paths.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from adjacency buckets for the edge endpoints.
//
// Removal policy:
//   - Always remove from e.From -> e.To.
//   - If the edge is undirected and not a self-loop, also remove from e.To -> e.From.
//
// Empty nested buckets are pruned on the way out to keep membership checks fast.
// Must be called ONLY under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested adjacency buckets after removals.
//
// Safe to call repeatedly; idempotent relative to empty-state pruning.
// Must be called ONLY under muEdgeAdj write lock.
//
// Complexity: O(V + B) where B is the number of (from,to) buckets scanned.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}
