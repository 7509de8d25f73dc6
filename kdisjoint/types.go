package kdisjoint

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvlpath/frontier"
	"github.com/katalvlaran/lvlpath/tolerance"
)

// Sentinel errors returned by FindPaths.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("kdisjoint: graph is nil")

	// ErrNotDirected indicates the graph is undirected or mixed; the arc
	// model needs one uniform direction per edge.
	ErrNotDirected = errors.New("kdisjoint: graph must be directed")

	// ErrNotSimple indicates the graph allows multi-edges or self-loops.
	ErrNotSimple = errors.New("kdisjoint: graph must be simple")

	// ErrUnweightedGraph indicates the graph was not constructed with
	// core.WithWeighted().
	ErrUnweightedGraph = errors.New("kdisjoint: graph must be weighted")

	// ErrBadK indicates a non-positive path count was requested.
	ErrBadK = errors.New("kdisjoint: k must be at least 1")

	// ErrSameEndpoints indicates source and sink name the same vertex.
	ErrSameEndpoints = errors.New("kdisjoint: source and sink must differ")

	// ErrVertexNotFound indicates a missing source or sink vertex.
	ErrVertexNotFound = errors.New("kdisjoint: endpoint vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight under Dijkstra
	// rounds; opt into WithBellmanFordRounds to accept them.
	ErrNegativeWeight = errors.New("kdisjoint: negative edge weight requires Bellman-Ford rounds")

	// ErrNegativeCycle indicates a Bellman-Ford round detected a
	// negative-weight cycle reachable from the source.
	ErrNegativeCycle = errors.New("kdisjoint: negative-weight cycle reachable from source")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("kdisjoint: invalid option supplied")

	// ErrInternal flags a broken internal invariant: a predecessor chain or
	// a stitching walk that cannot complete. Unreachable on correct input.
	ErrInternal = errors.New("kdisjoint: internal invariant violated")
)

// Options configures a FindPaths run. Invalid option values are recorded
// internally and surfaced when FindPaths is invoked, never as a panic.
type Options struct {
	// Epsilon is the comparison tolerance for weights; see the tolerance
	// package.
	Epsilon float64

	// Frontier supplies the priority queue for Dijkstra rounds.
	Frontier frontier.Supplier

	// BellmanFord switches every round's solver to Bellman-Ford and lifts
	// the non-negative weight precondition.
	BellmanFord bool

	// Logger receives per-round Debug diagnostics. Defaults to a discard
	// logger.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring FindPaths.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: Dijkstra rounds on the
// binary-heap frontier, tolerance.DefaultEpsilon and a discard logger.
func DefaultOptions() Options {
	return Options{
		Epsilon:  tolerance.DefaultEpsilon,
		Frontier: frontier.DefaultSupplier,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
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

// WithFrontier overrides the priority-queue implementation used by Dijkstra
// rounds. A nil supplier is ignored.
func WithFrontier(supply frontier.Supplier) Option {
	return func(o *Options) {
		if supply != nil {
			o.Frontier = supply
		}
	}
}

// WithBellmanFordRounds runs every round on Bellman-Ford instead of
// Dijkstra (Bhandari's variant). Required for graphs with negative edge
// weights; slower on everything else.
func WithBellmanFordRounds() Option {
	return func(o *Options) {
		o.BellmanFord = true
	}
}

// WithLogger routes the per-round Debug diagnostics. A nil logger is
// ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// applyOptions materializes the configuration and surfaces any violation an
// option recorded.
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
