package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlpath/core"
)

// Sentinel errors for route construction.
var (
	// ErrNilGraph indicates a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrEmptySource indicates an empty source vertex ID.
	ErrEmptySource = errors.New("route: source vertex ID is empty")

	// ErrDiscontinuousPath indicates the edge sequence does not form one
	// continuous walk from the declared source.
	ErrDiscontinuousPath = errors.New("route: edges do not form a continuous path")

	// ErrBadSourceDistance indicates a tree whose source distance is not zero.
	ErrBadSourceDistance = errors.New("route: source distance must be zero")

	// ErrDanglingPredecessor indicates a tree entry whose predecessor edge
	// starts at a vertex with no finite distance.
	ErrDanglingPredecessor = errors.New("route: predecessor edge hangs off an unreached vertex")
)

// Path is an ordered walk between two vertices.
//
// The three fields describe the same walk and are kept consistent by the
// constructors: Vertices always holds len(Edges)+1 IDs, Vertices[0] is the
// start, Vertices[len-1] the end, and Weight is the accumulated cost.
type Path struct {
	// Edges traversed, in walk order. Empty for a trivial path.
	Edges []*core.Edge

	// Vertices visited, in walk order, endpoints included.
	Vertices []string

	// Weight is the total cost of the walk.
	Weight float64
}

// Trivial returns the zero-length, zero-weight path from source to itself.
func Trivial(source string) *Path {
	return &Path{Vertices: []string{source}}
}

// NewPath assembles a Path from an edge sequence starting at source.
//
// Each edge must be incident to the vertex the walk has reached so far;
// directed edges must be traversed From→To. On success the returned Path
// owns the given slice. Failure modes: ErrNilGraph, ErrEmptySource,
// core.ErrVertexNotFound (unknown source), ErrDiscontinuousPath.
//
// Complexity: O(len(edges)).
func NewPath(g *core.Graph, edges []*core.Edge, source string) (*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("route: source %q: %w", source, core.ErrVertexNotFound)
	}

	// Walk the sequence, confirming each edge leaves the current vertex.
	cur := source
	verts := make([]string, 1, len(edges)+1)
	verts[0] = source
	var weight float64
	var next string
	for i, e := range edges {
		if e == nil {
			return nil, fmt.Errorf("%w: nil edge at position %d", ErrDiscontinuousPath, i)
		}
		switch {
		case e.Directed && e.From != cur:
			return nil, fmt.Errorf("%w: edge %s (%s→%s) does not leave %q",
				ErrDiscontinuousPath, e.ID, e.From, e.To, cur)
		case e.Directed:
			next = e.To
		case e.From == cur:
			next = e.To
		case e.To == cur:
			next = e.From
		default:
			return nil, fmt.Errorf("%w: edge %s (%s—%s) is not incident to %q",
				ErrDiscontinuousPath, e.ID, e.From, e.To, cur)
		}
		weight += e.Weight
		verts = append(verts, next)
		cur = next
	}

	return &Path{Edges: edges, Vertices: verts, Weight: weight}, nil
}

// Len returns the number of edges in the path. Zero for a trivial path.
func (p *Path) Len() int { return len(p.Edges) }

// Start returns the first vertex of the path.
func (p *Path) Start() string { return p.Vertices[0] }

// End returns the last vertex of the path. Equals Start for a trivial path.
func (p *Path) End() string { return p.Vertices[len(p.Vertices)-1] }

// Simple reports whether no vertex occurs twice along the path.
// A trivial path is simple.
func (p *Path) Simple() bool {
	seen := make(map[string]struct{}, len(p.Vertices))
	for _, v := range p.Vertices {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}

	return true
}

// String renders the vertex sequence and total weight, e.g. "A→B→D (2)".
func (p *Path) String() string {
	return fmt.Sprintf("%s (%g)", strings.Join(p.Vertices, "→"), p.Weight)
}
