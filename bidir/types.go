package bidir

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlpath/frontier"
	"github.com/katalvlaran/lvlpath/tolerance"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bidir: graph is nil")

	// ErrUnweightedGraph indicates the graph was not constructed with
	// core.WithWeighted().
	ErrUnweightedGraph = errors.New("bidir: graph must be weighted")

	// ErrVertexNotFound indicates the source or target vertex is missing.
	ErrVertexNotFound = errors.New("bidir: vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight was detected; both
	// frontiers are Dijkstra frontiers and share its precondition.
	ErrNegativeWeight = errors.New("bidir: negative edge weight encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bidir: invalid option supplied")
)

// Options configures one FindPath run. Invalid option values are recorded
// internally and surfaced as ErrOptionViolation at invocation, never as a
// panic.
type Options struct {
	// Epsilon is the comparison tolerance for distances; see the tolerance
	// package.
	Epsilon float64

	// Frontier supplies the priority queues of both directions.
	// Defaults to frontier.DefaultSupplier (binary heap).
	Frontier frontier.Supplier

	// Ctx allows cancellation and deadlines; checked once per alternation
	// (one forward plus one backward settle).
	Ctx context.Context

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the engine defaults: tolerance.DefaultEpsilon,
// frontier.DefaultSupplier and context.Background().
func DefaultOptions() Options {
	return Options{
		Epsilon:  tolerance.DefaultEpsilon,
		Frontier: frontier.DefaultSupplier,
		Ctx:      context.Background(),
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

// WithFrontier swaps the priority-queue implementation used by both
// directions, e.g. frontier.NewPairingHeap. A nil supplier is ignored.
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

// applyOptions materializes the configuration for one run and surfaces any
// violation an option recorded.
func applyOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}

	return cfg, nil
}
