package sssp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvlpath/frontier"
	"github.com/katalvlaran/lvlpath/tolerance"
)

// Sentinel errors shared by the single-source engines.
var (
	// ErrEmptySource indicates that no source vertex ID was provided.
	ErrEmptySource = errors.New("sssp: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to an engine.
	ErrNilGraph = errors.New("sssp: graph is nil")

	// ErrUnweightedGraph indicates a weighted engine was run on a graph that
	// was not constructed with core.WithWeighted().
	ErrUnweightedGraph = errors.New("sssp: graph must be weighted")

	// ErrWeightedGraph indicates BFS was run on a weighted graph; hop counting
	// is only meaningful when every edge costs the same.
	ErrWeightedGraph = errors.New("sssp: graph must be unweighted")

	// ErrVertexNotFound indicates the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("sssp: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight was detected where the
	// engine requires non-negative weights.
	ErrNegativeWeight = errors.New("sssp: negative edge weight encountered")

	// ErrNegativeCycle indicates Bellman-Ford found a negative-weight cycle
	// reachable from the source. Inspect the wrapping NegativeCycleError for
	// the cycle membership.
	ErrNegativeCycle = errors.New("sssp: negative-weight cycle reachable from source")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sssp: invalid option supplied")
)

// NegativeCycleError carries the membership of a negative-weight cycle found
// by BellmanFord. It wraps ErrNegativeCycle, so errors.Is(err,
// ErrNegativeCycle) matches.
type NegativeCycleError struct {
	// Cycle lists the vertices along the cycle in traversal order.
	// The first vertex is not repeated at the end.
	Cycle []string

	// Weight is the total weight of one trip around the cycle (negative).
	Weight float64
}

// Error renders the cycle as "sssp: negative-weight cycle ... : B→D→B (-9)".
func (e *NegativeCycleError) Error() string {
	loop := append(append(make([]string, 0, len(e.Cycle)+1), e.Cycle...), e.Cycle[0])

	return fmt.Sprintf("%s: %s (%g)", ErrNegativeCycle.Error(), strings.Join(loop, "→"), e.Weight)
}

// Unwrap lets errors.Is treat a NegativeCycleError as ErrNegativeCycle.
func (e *NegativeCycleError) Unwrap() error { return ErrNegativeCycle }

// Options configures the single-source engines. Zero values mean "no limit";
// use DefaultOptions as the starting point and override via the functional
// options below. Invalid option values are recorded internally and surfaced
// as ErrOptionViolation when the engine is invoked, never as a panic.
type Options struct {
	// Source is the ID of the starting vertex. Required.
	Source string

	// Epsilon is the comparison tolerance for distances. Must be a positive
	// finite number; see the tolerance package.
	Epsilon float64

	// Frontier supplies the priority queue used by Dijkstra and Between.
	// Defaults to frontier.DefaultSupplier (binary heap).
	Frontier frontier.Supplier

	// Ctx allows cancellation and deadlines; checked once per settled vertex
	// (Dijkstra), per round (Bellman-Ford) or per dequeued vertex (BFS).
	Ctx context.Context

	// MaxDistance caps exploration: vertices whose distance would exceed it
	// are not settled. Default +Inf (no cap).
	MaxDistance float64

	// InfEdgeThreshold treats edges with weight ≥ the threshold as impassable
	// walls. Default +Inf (every finite edge passable).
	InfEdgeThreshold float64

	// MaxHops bounds BFS depth and the number of Bellman-Ford relaxation
	// rounds. 0 disables the limit. A hop-bounded Bellman-Ford run skips
	// negative-cycle validation: distances are then "best within MaxHops
	// edges", not global optima.
	MaxHops int

	// TolerateNegativeCycles makes BellmanFord return its best-effort tree
	// instead of failing with ErrNegativeCycle.
	TolerateNegativeCycles bool

	// Parallelism bounds the number of concurrently running source trees in
	// ManySources. 0 means runtime.NumCPU().
	Parallelism int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring an engine run.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with the engine
// defaults for the given source vertex ID:
//
//   - Epsilon:          tolerance.DefaultEpsilon
//   - Frontier:         frontier.DefaultSupplier
//   - Ctx:              context.Background()
//   - MaxDistance:      +Inf (no cap)
//   - InfEdgeThreshold: +Inf (no walls)
//   - MaxHops:          0 (no limit)
//   - Parallelism:      0 (NumCPU)
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		Epsilon:          tolerance.DefaultEpsilon,
		Frontier:         frontier.DefaultSupplier,
		Ctx:              context.Background(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithEpsilon overrides the comparison tolerance. Epsilon must be a positive
// finite number; anything else is an option violation.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if _, err := tolerance.New(eps); err != nil {
			o.err = fmt.Errorf("%w: epsilon %v", ErrOptionViolation, eps)

			return
		}
		o.Epsilon = eps
	}
}

// WithFrontier swaps the priority-queue implementation used by Dijkstra and
// Between, e.g. frontier.NewPairingHeap. A nil supplier is ignored.
func WithFrontier(supply frontier.Supplier) Option {
	return func(o *Options) {
		if supply != nil {
			o.Frontier = supply
		}
	}
}

// WithContext sets a custom context for cancellation. A nil context is
// ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance caps the distance to explore; vertices farther than max are
// left unreached. Must be ≥ 0 and not NaN; +Inf means no cap.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if math.IsNaN(max) || max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%v)", ErrOptionViolation, max)

			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// Must be > 0 and not NaN; +Inf means no edge is a wall.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if math.IsNaN(threshold) || threshold <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%v)", ErrOptionViolation, threshold)

			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithMaxHops bounds BFS depth and Bellman-Ford rounds.
//
//	n > 0:  limit to n hops/rounds
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxHops = n
	}
}

// WithTolerateNegativeCycles makes BellmanFord return its best-effort tree in
// the presence of a reachable negative cycle instead of ErrNegativeCycle.
// Distances on and downstream of the cycle are then not shortest-path optima.
func WithTolerateNegativeCycles() Option {
	return func(o *Options) {
		o.TolerateNegativeCycles = true
	}
}

// WithParallelism bounds how many source trees ManySources computes at once.
//
//	n > 0:  at most n concurrent runs
//	n == 0: runtime.NumCPU()
//	n < 0:  invalid option → ErrOptionViolation
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Parallelism cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.Parallelism = n
	}
}
