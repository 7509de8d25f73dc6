package route

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlpath/core"
)

// Unreachable is the distance a Tree reports for vertices no path reaches.
var Unreachable = math.Inf(1)

// Tree is the single-source result of a shortest-path engine: per vertex,
// the best distance found and the edge that last improved it. Trees are
// immutable after construction and safe for concurrent reads.
type Tree struct {
	source string
	dist   map[string]float64
	pred   map[string]*core.Edge
}

// NewTree builds a Tree from the raw distance and predecessor maps an engine
// produced. The maps are retained, not copied.
//
// Validation covers the invariants every engine must uphold: dist[source]
// must be exactly zero (ErrBadSourceDistance), and each predecessor edge must
// hang off a vertex with a finite distance (ErrDanglingPredecessor). A
// violation means the producing engine is defective.
//
// Complexity: O(len(pred)).
func NewTree(g *core.Graph, source string, dist map[string]float64, pred map[string]*core.Edge) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	if d, ok := dist[source]; !ok || d != 0 {
		return nil, fmt.Errorf("%w: source %q has distance %v", ErrBadSourceDistance, source, d)
	}
	for v, e := range pred {
		if e == nil {
			continue
		}
		u := e.Opposite(v)
		if du, ok := dist[u]; !ok || math.IsInf(du, 1) {
			return nil, fmt.Errorf("%w: %q is preceded by %q", ErrDanglingPredecessor, v, u)
		}
	}

	return &Tree{source: source, dist: dist, pred: pred}, nil
}

// Source returns the root vertex of the tree.
func (t *Tree) Source() string { return t.source }

// WeightTo returns the distance from the source to v, or Unreachable when
// the engine never reached v.
func (t *Tree) WeightTo(v string) float64 {
	d, ok := t.dist[v]
	if !ok {
		return Unreachable
	}

	return d
}

// Reached reports whether the engine reached v with a finite distance.
func (t *Tree) Reached(v string) bool {
	d, ok := t.dist[v]

	return ok && !math.IsInf(d, 1)
}

// PredecessorEdge returns the edge that finalized v's distance, or nil for
// the source and for unreached vertices.
func (t *Tree) PredecessorEdge(v string) *core.Edge { return t.pred[v] }

// PathTo materializes the source→v path by walking predecessor edges.
// It returns Trivial for the source itself and nil when v is unreachable.
// The walk is iterative; a chain longer than the tree (a corrupt predecessor
// map) also yields nil rather than looping forever.
//
// Complexity: O(path length) per call; each call builds a fresh Path.
func (t *Tree) PathTo(v string) *Path {
	if v == t.source {
		return Trivial(v)
	}
	if !t.Reached(v) {
		return nil
	}

	// 1) Collect edges backward from v to the source.
	rev := make([]*core.Edge, 0, 8)
	cur := v
	for cur != t.source {
		e := t.pred[cur]
		if e == nil || len(rev) > len(t.dist) {
			return nil
		}
		rev = append(rev, e)
		cur = e.Opposite(cur)
	}

	// 2) Reverse into walk order and rebuild the vertex sequence.
	n := len(rev)
	edges := make([]*core.Edge, n)
	for i, e := range rev {
		edges[n-1-i] = e
	}
	verts := make([]string, n+1)
	verts[0] = t.source
	cur = t.source
	for i, e := range edges {
		cur = e.Opposite(cur)
		verts[i+1] = cur
	}

	return &Path{Edges: edges, Vertices: verts, Weight: t.dist[v]}
}
