// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and cloning graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so you can safely mutate your graphs across
// goroutines with minimal contention.
//
// This file declares Vertex, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID        - vertex ID is the empty string.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrEdgeNotFound         - requested edge does not exist.
//	ErrBadWeight            - non-zero weight provided to an unweighted graph.
//	ErrNonFiniteWeight      - NaN or infinite weight provided.
//	ErrLoopNotAllowed       - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed  - attempt to add parallel edge when multi-edges disabled.
//	ErrMixedEdgesNotAllowed - mixed direction in edges when mixed-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrNonFiniteWeight indicates a NaN or ±Inf weight, which the path engines
	// cannot order reliably. Weights must be finite float64 values.
	ErrNonFiniteWeight = errors.New("core: edge weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a mixed direction in edges when mixed-edges are disabled.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// edgeIDPrefix is the single-byte prefix of generated edge IDs ("e1", "e2", ...).
const edgeIDPrefix = byte('e')

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on shallow clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, a float64 Weight, and a
// Directed flag that overrides the Graph's default directedness when mixed
// edges are enabled. Weights are double-precision because the path engines
// accumulate and compare them under an epsilon tolerance; see the tolerance
// package for the comparison contract.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge. Must be finite.
	Weight float64

	// Directed indicates this edge is one-way (true) or bidirectional (false)
	// when the Graph was constructed with mixed edge support.
	Directed bool
}

// Opposite returns the endpoint of e other than id. For self-loops it returns
// id itself. The result is unspecified when id is not an endpoint of e; the
// path engines only call it with ids obtained from the same edge.
func (e *Edge) Opposite(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is the core in-memory graph data structure.
//
// It supports: directed vs. undirected, weighted vs. unweighted,
// parallel edges (multi-edges) and self-loops.
// muVert protects vertices map; muEdgeAdj protects edges map and adjacencyList.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool // default directedness
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	allowMixed bool // allow mixed directed edges

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
// Produced by Graph.Stats; useful for admission checks before running engines.
type GraphStats struct {
	DirectedDefault     bool // default orientation for new edges
	Weighted            bool // weight policy flag
	AllowsMulti         bool // multi-edge policy flag
	AllowsLoops         bool // loop policy flag
	MixedMode           bool // per-edge override policy flag
	VertexCount         int  // size of vertex catalog
	EdgeCount           int  // size of edge catalog
	DirectedEdgeCount   int  // edges with Directed == true
	UndirectedEdgeCount int  // edges with Directed == false
}

// NewGraph creates an empty Graph with the given flags and options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
