package deltastep

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/lvlpath/tolerance"
)

// Sentinel errors returned by New and Paths.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("deltastep: graph is nil")

	// ErrUnweightedGraph indicates the graph was not constructed with
	// core.WithWeighted().
	ErrUnweightedGraph = errors.New("deltastep: graph must be weighted")

	// ErrNegativeWeight indicates a negative edge weight was detected;
	// Δ-stepping shares Dijkstra's non-negativity precondition.
	ErrNegativeWeight = errors.New("deltastep: negative edge weight encountered")

	// ErrEmptySource indicates Paths was called with an empty source ID.
	ErrEmptySource = errors.New("deltastep: source vertex ID is empty")

	// ErrVertexNotFound indicates the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("deltastep: source vertex not found in graph")

	// ErrBadDelta indicates WithDelta was given a non-positive or non-finite
	// bucket width.
	ErrBadDelta = errors.New("deltastep: delta must be a positive finite number")

	// ErrBadParallelism indicates WithParallelism was given a negative count.
	ErrBadParallelism = errors.New("deltastep: parallelism cannot be negative")

	// ErrClosed indicates Paths was called on a closed Engine.
	ErrClosed = errors.New("deltastep: engine is closed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("deltastep: invalid option supplied")
)

// Options configures an Engine. Invalid option values are recorded
// internally and surfaced by New, never as a panic.
type Options struct {
	// Delta is the bucket width. 0 selects the automatic heuristic
	// maxEdgeWeight/maxOutDegree (fallback 1 on degenerate graphs),
	// re-evaluated per Paths call against the current graph.
	Delta float64

	// Parallelism bounds the worker tasks per relaxation phase and sizes the
	// engine-owned pool. 0 means runtime.NumCPU().
	Parallelism int

	// LoadBalancing switches batch splitting from equal vertex counts to
	// equal outgoing-arc counts.
	LoadBalancing bool

	// Pool injects a shared ants pool. The engine then does not own the
	// pool's lifecycle: Close will not release it.
	Pool *ants.Pool

	// Logger receives per-bucket Debug diagnostics. Defaults to a discard
	// logger.
	Logger *slog.Logger

	// Epsilon is the comparison tolerance for distances; see the tolerance
	// package.
	Epsilon float64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns the engine defaults: automatic delta, NumCPU
// parallelism, naive splitting, an engine-owned pool, a discard logger and
// tolerance.DefaultEpsilon.
func DefaultOptions() Options {
	return Options{
		Epsilon: tolerance.DefaultEpsilon,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithDelta fixes the bucket width. Delta must be a positive finite number;
// anything else is rejected by New with ErrBadDelta. Omit the option for the
// automatic heuristic.
func WithDelta(delta float64) Option {
	return func(o *Options) {
		if math.IsNaN(delta) || math.IsInf(delta, 0) || delta <= 0 {
			o.err = fmt.Errorf("%w: %v", ErrBadDelta, delta)

			return
		}
		o.Delta = delta
	}
}

// WithParallelism bounds the worker tasks per relaxation phase.
//
//	n > 0:  at most n concurrent tasks
//	n == 0: runtime.NumCPU()
//	n < 0:  rejected by New with ErrBadParallelism
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadParallelism, n)

			return
		}
		o.Parallelism = n
	}
}

// WithLoadBalancing enables arc-count-balanced batch splitting. The naive
// equal-vertex split is cheaper to compute and fine for regular graphs.
func WithLoadBalancing(balanced bool) Option {
	return func(o *Options) {
		o.LoadBalancing = balanced
	}
}

// WithPool injects a shared goroutine pool. The engine submits to it but
// never releases it; pass nil to keep the engine-owned pool.
func WithPool(pool *ants.Pool) Option {
	return func(o *Options) {
		if pool != nil {
			o.Pool = pool
		}
	}
}

// WithLogger routes the engine's Debug diagnostics. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
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
