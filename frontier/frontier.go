package frontier

import "errors"

// Sentinel errors for frontier operations.
var (
	// ErrBadVertex indicates a negative vertex index.
	ErrBadVertex = errors.New("frontier: vertex index must be non-negative")

	// ErrDuplicateVertex indicates Insert on a vertex that is already open.
	ErrDuplicateVertex = errors.New("frontier: vertex already open")

	// ErrNotOpen indicates DecreaseKey on a vertex that is not open.
	ErrNotOpen = errors.New("frontier: vertex not open")

	// ErrKeyIncrease indicates DecreaseKey with a key larger than the current one.
	ErrKeyIncrease = errors.New("frontier: new key exceeds current key")

	// ErrEmptyFrontier indicates DeleteMin or Min on an empty frontier.
	ErrEmptyFrontier = errors.New("frontier: empty")

	// ErrCorrupt indicates an internal bookkeeping invariant was violated.
	// Seeing it means a bug in the frontier implementation, not in the caller.
	ErrCorrupt = errors.New("frontier: internal state corrupt")
)

// Item is a queued (vertex, key) pair.
type Item struct {
	// Vertex is the dense vertex index assigned by the engine.
	Vertex int

	// Key is the priority; for the path engines, the tentative distance.
	Key float64
}

// Frontier is an addressable min-priority queue over dense vertex indices.
// See the package documentation for the full operation contract.
type Frontier interface {
	// Insert opens vertex with the given key.
	Insert(vertex int, key float64) error

	// DecreaseKey lowers the key of an open vertex.
	DecreaseKey(vertex int, key float64) error

	// DeleteMin removes and returns the open item with the smallest key
	// (ties: smallest vertex index).
	DeleteMin() (Item, error)

	// Min returns the item DeleteMin would remove, without removing it.
	Min() (Item, error)

	// Contains reports whether vertex is open.
	Contains(vertex int) bool

	// Len returns the number of open vertices.
	Len() int

	// IsEmpty reports whether no vertex is open.
	IsEmpty() bool

	// Clear removes all open vertices, retaining allocated capacity.
	Clear()
}

// Supplier builds an empty Frontier sized for roughly capacityHint vertices.
// Engines call the supplier once per run (twice for bidirectional search);
// the hint is the vertex count and may be zero.
type Supplier func(capacityHint int) Frontier

// DefaultSupplier is the Supplier engines fall back on when no WithFrontier
// option is given.
var DefaultSupplier Supplier = NewBinaryHeap
