package sssp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/route"
	"github.com/katalvlaran/lvlpath/tolerance"
)

// BellmanFord computes the shortest-path tree from the source vertex
// (Options.Source) on a weighted graph that may contain negative edge
// weights.
//
// The engine runs relaxation rounds over the active set: only vertices whose
// distance improved in the previous round are re-scanned, so well-behaved
// graphs converge long before the worst-case |V|−1 rounds. After the round
// limit, a validation sweep looks for an edge that still relaxes; finding one
// proves a negative-weight cycle reachable from the source, reported as a
// *NegativeCycleError (errors.Is-matchable against ErrNegativeCycle) with the
// cycle membership and weight.
//
// Caveats:
//
//   - WithTolerateNegativeCycles returns the best-effort tree instead of the
//     cycle error. Distances on and downstream of a cycle are then not
//     optima, and PathTo may return nil for them when the predecessor chain
//     itself became cyclic.
//   - WithMaxHops caps the number of rounds. A hop-bounded run skips cycle
//     validation: its distances mean "best found within the round budget".
//   - An undirected edge with negative weight is itself a negative cycle
//     (u→v→u) and is reported as such.
//
// Options honored: WithEpsilon, WithContext, WithMaxHops,
// WithTolerateNegativeCycles, WithInfEdgeThreshold.
//
// Complexity:
//
//   - Time:  O(V·E) worst case; O(rounds·E_active) in practice.
//   - Space: O(V + E) for the dense state and the adjacency snapshot.
func BellmanFord(g *core.Graph, opts ...Option) (*route.Tree, error) {
	// 1) Build and validate Options.
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Shared precondition checks (no negative-weight scan here; negative
	//    weights are the point of this engine).
	if err = validateWeightedRun(g, cfg); err != nil {
		return nil, err
	}

	cmp, err := comparatorFor(cfg)
	if err != nil {
		return nil, err
	}

	// 3) Snapshot the arena and the per-vertex outgoing adjacency once.
	a := newArena(g)
	n := a.size()
	r := &bellmanFordRunner{
		cfg:   cfg,
		cmp:   cmp,
		arena: a,
		dist:  unreachableDistances(n),
		pred:  make([]*core.Edge, n),
		out:   make([][]*core.Edge, n),
	}
	var i int
	for i = 0; i < n; i++ {
		if r.out[i], err = g.OutgoingEdgesOf(a.ids[i]); err != nil {
			return nil, fmt.Errorf("sssp: outgoing edges of %q: %w", a.ids[i], err)
		}
	}

	// 4) Relaxation rounds, then cycle validation.
	if err = r.run(); err != nil {
		return nil, err
	}

	// 5) Convert dense state into the public tree form.
	return assembleTree(g, a, cfg.Source, r.dist, r.pred)
}

// bellmanFordRunner holds the dense mutable state of one Bellman-Ford run.
type bellmanFordRunner struct {
	cfg   Options
	cmp   tolerance.Comparator
	arena *arena
	dist  []float64
	pred  []*core.Edge
	out   [][]*core.Edge // index → outgoing edges, sorted by edge ID
}

// run executes the active-set rounds and, unless hop-bounded, the
// negative-cycle validation sweep.
func (r *bellmanFordRunner) run() error {
	n := r.arena.size()
	src := r.arena.index(r.cfg.Source)
	r.dist[src] = 0

	// Round budget: |V|−1 settles every simple path; a caller-supplied
	// MaxHops may shrink it.
	maxRounds := n - 1
	hopBounded := r.cfg.MaxHops > 0 && r.cfg.MaxHops < maxRounds
	if hopBounded {
		maxRounds = r.cfg.MaxHops
	}

	// active holds the vertices improved in the previous round, in improvement
	// order; inNext dedupes insertions within a round.
	active := make([]int, 0, n)
	next := make([]int, 0, n)
	inNext := make([]bool, n)
	active = append(active, src)

	var (
		round, ui, vi int
		e             *core.Edge
		cand          float64
	)
	for round = 0; round < maxRounds && len(active) > 0; round++ {
		if err := r.cfg.Ctx.Err(); err != nil {
			return fmt.Errorf("sssp: bellman-ford interrupted: %w", err)
		}

		next = next[:0]
		for _, ui = range active {
			for _, e = range r.out[ui] {
				if !r.cmp.Less(e.Weight, r.cfg.InfEdgeThreshold) {
					continue // wall
				}
				vi = r.arena.index(e.Opposite(r.arena.ids[ui]))
				cand = r.dist[ui] + e.Weight
				if !r.cmp.Less(cand, r.dist[vi]) {
					continue
				}
				r.dist[vi] = cand
				r.pred[vi] = e
				if !inNext[vi] {
					inNext[vi] = true
					next = append(next, vi)
				}
			}
		}

		// Swap round buffers and clear only the touched flags.
		active, next = next, active
		for _, vi = range active {
			inNext[vi] = false
		}
	}

	// Converged early, or the caller traded optimality for a round budget:
	// nothing to validate.
	if len(active) == 0 || hopBounded {
		return nil
	}

	// Validation sweep (round |V|): an edge that still relaxes proves a
	// reachable negative cycle.
	ui, e = r.findViolation()
	if e == nil {
		return nil
	}
	if r.cfg.TolerateNegativeCycles {
		return nil
	}

	return r.extractCycle(ui, e)
}

// findViolation scans all traversable arcs from finitely-distanced vertices
// and returns the first one that would still improve, in deterministic
// (vertex index, edge ID) order. Returns a nil edge when none improves.
func (r *bellmanFordRunner) findViolation() (int, *core.Edge) {
	var (
		ui, vi int
		e      *core.Edge
	)
	for ui = range r.out {
		if math.IsInf(r.dist[ui], 1) {
			continue
		}
		for _, e = range r.out[ui] {
			if !r.cmp.Less(e.Weight, r.cfg.InfEdgeThreshold) {
				continue
			}
			vi = r.arena.index(e.Opposite(r.arena.ids[ui]))
			if r.cmp.Less(r.dist[ui]+e.Weight, r.dist[vi]) {
				return ui, e
			}
		}
	}

	return -1, nil
}

// extractCycle applies the violating relaxation u→(e)→v, which stretches v's
// predecessor chain past |V| edges, then walks the chain until a vertex
// repeats. The repeated segment is the negative cycle.
func (r *bellmanFordRunner) extractCycle(ui int, e *core.Edge) error {
	uid := r.arena.ids[ui]
	vi := r.arena.index(e.Opposite(uid))
	r.dist[vi] = r.dist[ui] + e.Weight
	r.pred[vi] = e

	// 1) Walk predecessors from v, recording visit positions.
	n := r.arena.size()
	seenAt := make([]int, n)
	for i := range seenAt {
		seenAt[i] = -1
	}
	walk := make([]int, 0, n+1)
	cur := vi
	for seenAt[cur] < 0 {
		seenAt[cur] = len(walk)
		walk = append(walk, cur)
		pe := r.pred[cur]
		if pe == nil {
			// Chain ran into the source without repeating; the membership is
			// unavailable but the cycle itself is proven.
			return fmt.Errorf("%w: cycle membership not recoverable", ErrNegativeCycle)
		}
		cur = r.arena.index(pe.Opposite(r.arena.ids[cur]))
	}

	// 2) The walk segment from the repeat position onward is the cycle,
	//    recorded backward; reverse it into traversal order and sum weights.
	seg := walk[seenAt[cur]:]
	cycle := make([]string, len(seg))
	var weight float64
	for i, w := range seg {
		cycle[len(seg)-1-i] = r.arena.ids[w]
		weight += r.pred[w].Weight
	}

	return &NegativeCycleError{Cycle: cycle, Weight: weight}
}
