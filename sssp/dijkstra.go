package sssp

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/frontier"
	"github.com/katalvlaran/lvlpath/route"
	"github.com/katalvlaran/lvlpath/tolerance"
)

// Dijkstra computes the shortest-path tree from the source vertex
// (Options.Source) to every reachable vertex of the weighted graph g.
//
// Vertices are settled in ascending distance order through an addressable
// frontier: a shorter tentative distance lowers the queued key in place
// (true decrease-key), so every vertex enters the frontier at most once and
// a settled vertex is never reopened. All distance comparisons go through
// the epsilon tolerance; an improvement within noise is not an improvement.
//
// Preconditions and validation (in order):
//
//  1. Options must be well-formed (ErrOptionViolation).
//  2. Source must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must be weighted (ErrUnweightedGraph).
//  5. g must contain Source (ErrVertexNotFound).
//  6. No edge may have negative weight (ErrNegativeWeight).
//
// Options honored: WithEpsilon, WithFrontier, WithContext, WithMaxDistance,
// WithInfEdgeThreshold.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the binary-heap frontier.
//   - Space: O(V) dense state plus O(V) frontier arena.
func Dijkstra(g *core.Graph, opts ...Option) (*route.Tree, error) {
	// 1) Build and validate Options.
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Shared precondition checks.
	if err = validateWeightedRun(g, cfg); err != nil {
		return nil, err
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast.
	if err = scanNegative(g); err != nil {
		return nil, err
	}

	// 4) Run the engine with no early-exit target.
	r, err := newDijkstraRunner(g, cfg, noTarget)
	if err != nil {
		return nil, err
	}
	if err = r.run(); err != nil {
		return nil, err
	}

	// 5) Convert dense state into the public tree form.
	return assembleTree(g, r.arena, cfg.Source, r.dist, r.pred)
}

// noTarget disables the early-exit check in dijkstraRunner.
const noTarget = -1

// dijkstraRunner holds the dense mutable state of one Dijkstra execution.
// Between reuses it with a real target index for early exit.
type dijkstraRunner struct {
	g      *core.Graph
	cfg    Options
	cmp    tolerance.Comparator
	arena  *arena
	dist   []float64         // index → best-known distance from the source
	pred   []*core.Edge      // index → edge that last improved dist
	closed []bool            // index → distance finalized
	open   frontier.Frontier // addressable priority queue keyed by dist
	target int               // settle-and-stop index, or noTarget
}

// newDijkstraRunner allocates the dense per-run state. The arena snapshot is
// taken here; concurrent graph mutations after this point are not observed.
func newDijkstraRunner(g *core.Graph, cfg Options, target int) (*dijkstraRunner, error) {
	cmp, err := comparatorFor(cfg)
	if err != nil {
		return nil, err
	}
	a := newArena(g)
	n := a.size()

	return &dijkstraRunner{
		g:      g,
		cfg:    cfg,
		cmp:    cmp,
		arena:  a,
		dist:   unreachableDistances(n),
		pred:   make([]*core.Edge, n),
		closed: make([]bool, n),
		open:   cfg.Frontier(n),
		target: target,
	}, nil
}

// run is the main settle loop.
//
// Termination: the frontier drains, the minimum key passes MaxDistance, or
// the target vertex is settled. Cancellation is checked once per settled
// vertex.
func (r *dijkstraRunner) run() error {
	// 1) Seed the frontier with the source at distance zero.
	src := r.arena.index(r.cfg.Source)
	r.dist[src] = 0
	if err := r.open.Insert(src, 0); err != nil {
		return fmt.Errorf("sssp: seeding frontier: %w", err)
	}

	// 2) Settle vertices in ascending distance order.
	for !r.open.IsEmpty() {
		if err := r.cfg.Ctx.Err(); err != nil {
			return fmt.Errorf("sssp: dijkstra interrupted: %w", err)
		}

		it, err := r.open.DeleteMin()
		if err != nil {
			return fmt.Errorf("sssp: frontier: %w", err)
		}

		// Every remaining open vertex is at least this far; past the cap,
		// nothing else is worth settling.
		if r.cmp.Less(r.cfg.MaxDistance, it.Key) {
			break
		}

		r.closed[it.Vertex] = true
		if it.Vertex == r.target {
			break
		}

		if err = r.relax(it.Vertex); err != nil {
			return err
		}
	}

	return nil
}

// relax scans the outgoing edges of u and improves neighbor distances,
// lowering frontier keys in place.
func (r *dijkstraRunner) relax(u int) error {
	uid := r.arena.ids[u]
	edges, err := r.g.OutgoingEdgesOf(uid)
	if err != nil {
		return fmt.Errorf("sssp: outgoing edges of %q: %w", uid, err)
	}

	var (
		e    *core.Edge
		v    int
		cand float64
	)
	for _, e = range edges {
		// Walls: an edge at or above the threshold is not traversable.
		if !r.cmp.Less(e.Weight, r.cfg.InfEdgeThreshold) {
			continue
		}

		v = r.arena.index(e.Opposite(uid))
		cand = r.dist[u] + e.Weight

		// Respect the exploration cap and require strict improvement.
		if r.cmp.Less(r.cfg.MaxDistance, cand) {
			continue
		}
		if !r.cmp.Less(cand, r.dist[v]) {
			continue
		}
		// With non-negative weights a settled distance cannot improve;
		// self-loops land here too (u is already closed).
		if r.closed[v] {
			continue
		}

		r.dist[v] = cand
		r.pred[v] = e
		if r.open.Contains(v) {
			err = r.open.DecreaseKey(v, cand)
		} else {
			err = r.open.Insert(v, cand)
		}
		if err != nil {
			return fmt.Errorf("sssp: frontier update for %q: %w", e.Opposite(uid), err)
		}
	}

	return nil
}
