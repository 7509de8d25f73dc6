// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import "sort"

// IsNil reports whether the receiver should be treated as nil when stored
// inside interfaces. Safe for typed-nil values (no panic, no reflection).
func (v *Vertex) IsNil() bool { return v == nil }

// IsNil reports whether the receiver should be treated as nil when stored
// inside interfaces.
func (e *Edge) IsNil() bool { return e == nil }

// AddVertex inserts a vertex if missing (idempotent).
//
// Steps:
//  1. Validate non-empty ID (ErrEmptyVertexID).
//  2. Under muVert write lock, check presence; if missing, allocate Vertex
//     and register it. Metadata is initialized to a non-nil map by policy.
//  3. Under muEdgeAdj write lock, bootstrap adjacency buckets so edge
//     methods can rely on invariants.
//
// Lock order is muVert -> muEdgeAdj to avoid inversion across vertex/edge
// code paths.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	// No-op for an existing vertex.
	if _, exists := g.vertices[id]; exists {
		return nil
	}

	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	// Bootstrap adjacency buckets under muEdgeAdj; creates no edges.
	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
//
// Complexity: O(1). Locking: muVert read lock.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges (directed and
// undirected), leaving the graph with no dangling adjacency references.
//
// Steps:
//  1. Validate non-empty ID (ErrEmptyVertexID).
//  2. Acquire muVert and muEdgeAdj write locks for an atomic topology update.
//  3. Verify vertex presence (ErrVertexNotFound).
//  4. Scan the edge catalog once; unlink and delete each incident edge.
//  5. Delete the vertex record and prune empty adjacency buckets.
//
// Complexity: O(E) — removing a vertex is a topology rewrite.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Remove all incident edges (directed or undirected).
	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}

	delete(g.vertices, id)
	cleanupAdjacency(g)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// The stable enumeration surface keeps higher-level algorithms deterministic.
//
// Complexity: O(V log V). Locking: muVert read lock.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Prefer it over len(Vertices()) to avoid the O(V log V) sorting cost.
//
// Complexity: O(1). Locking: muVert read lock.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// VerticesMap returns a shallow copy of the vertex catalog (ID -> *Vertex).
// Callers can retain the returned map without holding graph locks; vertex
// pointers refer to live objects and are read-only by convention.
//
// Complexity: O(V). Locking: muVert read lock.
func (g *Graph) VerticesMap() map[string]*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make(map[string]*Vertex, len(g.vertices))
	var id string
	var v *Vertex
	for id, v = range g.vertices {
		out[id] = v
	}

	return out
}

// Degree returns the degree components of the given vertex ID:
//
//   - in: number of incoming directed edges (e.To == id)
//   - out: number of outgoing directed edges (e.From == id)
//   - undirected: contribution from undirected edges
//
// Academic policy:
//   - Directed edges contribute to in/out only.
//   - Undirected edges contribute to undirected only.
//   - Directed self-loop (id -> id) contributes +1 to both in and out.
//   - Undirected self-loop contributes +2 to undirected (classic convention).
//
// The method scans ALL graph edges because the adjacency list is optimized
// for outgoing edges and does not index incoming directed edges.
//
// Complexity: O(E). Locking: muVert then muEdgeAdj read locks.
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	if id == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, 0, ErrVertexNotFound
	}

	for _, e := range g.edges {
		if e.IsNil() {
			continue
		}

		isFrom := e.From == id
		isTo := e.To == id
		if !isFrom && !isTo {
			continue
		}
		if e.Directed {
			if isFrom {
				out++
			}
			if isTo {
				in++
			}
			// A directed self-loop triggers both checks, incrementing both.
		} else {
			if isFrom && isTo {
				// Undirected self-loop increases degree by 2 in classic theory.
				undirected += 2
			} else {
				undirected++
			}
		}
	}

	return in, out, undirected, nil
}
