package deltastep

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/route"
	"github.com/katalvlaran/lvlpath/tolerance"
)

// Engine is a reusable Δ-stepping solver bound to one graph and one worker
// pool. Construction validates the graph once; every Paths call then builds
// its own run state, so concurrent calls on the same Engine are safe.
type Engine struct {
	g         *core.Graph
	cfg       Options
	cmp       tolerance.Comparator
	pool      *ants.Pool
	ownsPool  bool
	log       *slog.Logger
	closeOnce sync.Once
	closed    atomic.Bool
}

// New validates the graph and options and allocates the worker pool.
//
// Preconditions and validation (in order):
//
//  1. Options must be well-formed (ErrBadDelta, ErrBadParallelism,
//     ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. No edge may have negative weight (ErrNegativeWeight).
//
// Options honored: WithDelta, WithParallelism, WithLoadBalancing, WithPool,
// WithLogger, WithEpsilon.
func New(g *core.Graph, opts ...Option) (*Engine, error) {
	// 1) Build and validate Options.
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Precondition checks.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if err = scanNegative(g); err != nil {
		return nil, err
	}

	cmp, err := tolerance.New(cfg.Epsilon)
	if err != nil {
		return nil, fmt.Errorf("%w: epsilon %v", ErrOptionViolation, cfg.Epsilon)
	}

	// 3) Resolve the worker budget and the pool that serves it.
	if cfg.Parallelism == 0 {
		cfg.Parallelism = runtime.NumCPU()
	}
	e := &Engine{g: g, cfg: cfg, cmp: cmp, log: cfg.Logger}
	if cfg.Pool != nil {
		e.pool = cfg.Pool
	} else {
		pool, perr := ants.NewPool(cfg.Parallelism)
		if perr != nil {
			return nil, fmt.Errorf("deltastep: creating worker pool: %w", perr)
		}
		e.pool = pool
		e.ownsPool = true
	}

	e.log.Debug("engine ready",
		slog.Float64("delta", cfg.Delta),
		slog.Int("parallelism", cfg.Parallelism),
		slog.Bool("loadBalancing", cfg.LoadBalancing),
		slog.Bool("sharedPool", !e.ownsPool),
	)

	return e, nil
}

// Paths computes the shortest-path tree from source. Every call snapshots
// the graph afresh: the arena, the light/heavy partition and (in automatic
// mode) delta itself are derived from the edges as they are now.
func (e *Engine) Paths(source string) (*route.Tree, error) {
	// 1) Engine and argument state.
	if e.closed.Load() {
		return nil, ErrClosed
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	if !e.g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}

	// 2) Per-call run state: dense arena, adjacency, buckets.
	r, err := newRunState(e, source)
	if err != nil {
		return nil, err
	}

	// 3) Bucket loop.
	if err := r.run(); err != nil {
		return nil, err
	}

	// 4) Convert dense state into the public tree form.
	return r.assembleTree(source)
}

// Close releases the engine-owned worker pool. An injected WithPool pool is
// left running: its lifecycle belongs to the caller. Close is idempotent;
// Paths calls after Close fail with ErrClosed.
func (e *Engine) Close() error {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		if e.ownsPool {
			e.pool.Release()
		}
	})

	return nil
}

// scanNegative fails fast when any edge carries a negative weight.
// O(E); run once at construction.
func scanNegative(g *core.Graph) error {
	var e *core.Edge
	for _, e = range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}
