// Package route defines the result types shared by every shortest-path
// engine: Path, an ordered edge walk between two vertices, and Tree, the
// compact single-source answer (distance + predecessor edge per vertex).
//
// # Path
//
// A Path couples three views of the same walk: the Edges traversed in order,
// the Vertices visited (always len(Edges)+1 entries, endpoints included) and
// the total Weight. Engines hand out ready-made paths; callers assembling
// their own go through NewPath, which checks that consecutive edges really
// chain (each edge leaves the vertex the previous one arrived at, honoring
// per-edge direction) and sums the weight. A broken chain fails with
// ErrDiscontinuousPath.
//
// Trivial(v) is the zero-length, zero-weight path from v to itself.
//
// # Tree
//
// A Tree stores, for one source vertex, the best known distance to every
// vertex and the edge that last improved it. It is immutable once built:
//
//	WeightTo(v) – distance to v, or Unreachable (+Inf) when no path exists.
//	Reached(v)  – whether v was reached at all.
//	PathTo(v)   – materializes the source→v path on demand by walking
//	              predecessor edges iteratively; nil when unreachable.
//
// PathTo of the source returns Trivial(source). The Weight of a materialized
// path is the tree's recorded distance for the target, which equals the sum
// of edge weights for the weighted engines and the hop count for breadth-
// first trees over unweighted graphs.
//
// NewTree validates the invariants engines rely on: the source distance is
// exactly zero, and every predecessor edge hangs off a vertex that itself
// carries a finite distance. Violations surface as ErrBadSourceDistance or
// ErrDanglingPredecessor and indicate a defect in the producing engine, not
// in caller input. Before any of that, both constructors reject a nil graph
// (ErrNilGraph) and an empty start vertex (ErrEmptySource).
//
// Path and Tree are plain values: safe for concurrent reads, never mutated
// by the package after construction.
package route
