package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/frontier"
	"github.com/katalvlaran/lvlpath/route"
	"github.com/katalvlaran/lvlpath/tolerance"
)

// FindPath computes a shortest path from source to target on the weighted
// graph g, ordering expansion by f = g + h. With an admissible heuristic the
// returned path weight equals Dijkstra's; with a consistent one it also gets
// there with the fewest expansions.
//
// Returns route.Trivial(source) when source == target and (nil, nil) when
// the target is unreachable.
//
// Preconditions and validation (in order):
//
//  1. Options must be well-formed (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. h must be non-nil (ErrNilHeuristic).
//  4. g must be weighted (ErrUnweightedGraph).
//  5. g must contain source and target (ErrVertexNotFound).
//  6. No edge may have negative weight (ErrNegativeWeight).
//
// Options honored: WithEpsilon, WithFrontier, WithContext,
// WithInconsistentHeuristic.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a consistent heuristic; up to O(V²·log V)
//     re-expansions with an inconsistent one (BPMX bound).
//   - Space: O(V) dense state plus O(V) frontier arena; the inconsistent
//     mode adds an O(V + E) incoming-adjacency snapshot.
func FindPath(g *core.Graph, source, target string, h Heuristic, opts ...Option) (*route.Path, error) {
	// 1) Build and validate Options.
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Precondition checks.
	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast.
	if err = scanNegative(g); err != nil {
		return nil, err
	}

	// 4) Equal endpoints need no search.
	if source == target {
		return route.Trivial(source), nil
	}

	// 5) Run the engine.
	r, err := newRunner(g, cfg, source, target, h)
	if err != nil {
		return nil, err
	}

	return r.run()
}

// arena assigns every vertex ID a dense index in [0,V), in sorted-ID order.
// Dense indices keep the per-run state in flat slices and make frontier
// tie-breaking deterministic.
type arena struct {
	ids []string       // index → vertex ID
	at  map[string]int // vertex ID → index
}

func newArena(g *core.Graph) *arena {
	ids := g.Vertices()
	at := make(map[string]int, len(ids))
	for i, id := range ids {
		at[id] = i
	}

	return &arena{ids: ids, at: at}
}

func (a *arena) index(id string) int {
	i, ok := a.at[id]
	if !ok {
		return -1
	}

	return i
}

func (a *arena) size() int { return len(a.ids) }

// runner holds the dense mutable state of one A* execution.
type runner struct {
	g        *core.Graph
	cfg      Options
	cmp      tolerance.Comparator
	h        Heuristic
	source   string
	target   string
	arena    *arena
	gScore   []float64         // index → best-known distance from the source
	hScore   []float64         // index → cached heuristic estimate; NaN = not yet computed
	fKey     []float64         // index → key currently stored in the frontier (open vertices)
	cameFrom []*core.Edge      // index → edge that last improved gScore
	closed   []bool            // index → expanded at current gScore
	open     frontier.Frontier // addressable priority queue keyed by f = g + h
	exp      expander          // per-mode expansion strategy
	src, tgt int
}

// newRunner allocates the dense per-run state. The arena snapshot is taken
// here; concurrent graph mutations after this point are not observed.
func newRunner(g *core.Graph, cfg Options, source, target string, h Heuristic) (*runner, error) {
	cmp, err := tolerance.New(cfg.Epsilon)
	if err != nil {
		return nil, fmt.Errorf("%w: epsilon %v", ErrOptionViolation, cfg.Epsilon)
	}
	a := newArena(g)
	n := a.size()

	r := &runner{
		g:        g,
		cfg:      cfg,
		cmp:      cmp,
		h:        h,
		source:   source,
		target:   target,
		arena:    a,
		gScore:   make([]float64, n),
		hScore:   make([]float64, n),
		fKey:     make([]float64, n),
		cameFrom: make([]*core.Edge, n),
		closed:   make([]bool, n),
		open:     cfg.Frontier(n),
		exp:      consistentExpander{},
		src:      a.index(source),
		tgt:      a.index(target),
	}
	for i := range r.gScore {
		r.gScore[i] = route.Unreachable
		r.hScore[i] = math.NaN()
	}
	if cfg.Inconsistent {
		r.exp = newInconsistentExpander(g, a)
	}

	return r, nil
}

// heuristicAt returns the cached estimate for index i, computing it on first
// use. BPMX may later raise the cached value; the callback itself is never
// re-invoked for the same vertex.
func (r *runner) heuristicAt(i int) float64 {
	if math.IsNaN(r.hScore[i]) {
		r.hScore[i] = r.h(r.arena.ids[i], r.target)
	}

	return r.hScore[i]
}

// run is the main expansion loop.
//
// Termination: the target leaves the frontier (path found) or the frontier
// drains (no path). Cancellation is checked once per expanded vertex.
func (r *runner) run() (*route.Path, error) {
	// 1) Seed the frontier with the source keyed by its estimate (g = 0).
	r.gScore[r.src] = 0
	f0 := r.heuristicAt(r.src)
	if err := r.open.Insert(r.src, f0); err != nil {
		return nil, fmt.Errorf("astar: seeding frontier: %w", err)
	}
	r.fKey[r.src] = f0

	// 2) Expand vertices in ascending f order.
	for !r.open.IsEmpty() {
		if err := r.cfg.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("astar: search interrupted: %w", err)
		}

		it, err := r.open.DeleteMin()
		if err != nil {
			return nil, fmt.Errorf("astar: frontier: %w", err)
		}

		r.closed[it.Vertex] = true
		if it.Vertex == r.tgt {
			return r.reconstruct()
		}

		r.exp.beforeExpand(r, it.Vertex)
		if err = r.expand(it.Vertex); err != nil {
			return nil, err
		}
	}

	// 3) Frontier drained without reaching the target: no path, no error.
	return nil, nil
}

// expand scans the outgoing edges of v, improving successor g scores.
func (r *runner) expand(v int) error {
	vid := r.arena.ids[v]
	edges, err := r.g.OutgoingEdgesOf(vid)
	if err != nil {
		return fmt.Errorf("astar: outgoing edges of %q: %w", vid, err)
	}

	var (
		e         *core.Edge
		s         int
		tentative float64
	)
	for _, e = range edges {
		s = r.arena.index(e.Opposite(vid))
		// A self-loop cannot shorten any path.
		if s == v {
			continue
		}

		r.exp.onSuccessor(r, v, s, e.Weight)

		tentative = r.gScore[v] + e.Weight
		if !r.cmp.Less(tentative, r.gScore[s]) {
			continue
		}

		if r.open.Contains(s) {
			// Open entry: shift the stored key down by exactly the g
			// improvement. The key keeps whatever h component it was queued
			// with, so the entry re-sorts without re-reading the heuristic.
			shifted := r.fKey[s] - (r.gScore[s] - tentative)
			r.gScore[s] = tentative
			r.cameFrom[s] = e
			if err = r.open.DecreaseKey(s, shifted); err != nil {
				return fmt.Errorf("astar: frontier update for %q: %w", e.Opposite(vid), err)
			}
			r.fKey[s] = shifted

			continue
		}

		// Unseen vertex, or a closed one whose g strictly improved:
		// (re)insert keyed by the freshest f = g + h. Reopening keeps the
		// search exact when the heuristic is admissible but not consistent.
		r.closed[s] = false
		r.gScore[s] = tentative
		r.cameFrom[s] = e
		f := tentative + r.heuristicAt(s)
		if err = r.open.Insert(s, f); err != nil {
			return fmt.Errorf("astar: frontier insert for %q: %w", e.Opposite(vid), err)
		}
		r.fKey[s] = f
	}

	return nil
}

// reconstruct walks the predecessor chain backward from the target and
// re-assembles the path through route.NewPath, which re-validates continuity
// and sums the weight.
func (r *runner) reconstruct() (*route.Path, error) {
	rev := make([]*core.Edge, 0, 8)
	cur := r.tgt
	for cur != r.src {
		e := r.cameFrom[cur]
		if e == nil || len(rev) > r.arena.size() {
			return nil, fmt.Errorf("astar: reconstructing %q→%q: broken predecessor chain", r.source, r.target)
		}
		rev = append(rev, e)
		cur = r.arena.index(e.Opposite(r.arena.ids[cur]))
	}
	edges := make([]*core.Edge, len(rev))
	for i, e := range rev {
		edges[len(rev)-1-i] = e
	}
	p, err := route.NewPath(r.g, edges, r.source)
	if err != nil {
		return nil, fmt.Errorf("astar: reconstructing %q→%q: %w", r.source, r.target, err)
	}

	return p, nil
}

// scanNegative fails fast when any edge carries a negative weight.
// O(E); run once per search, before any expansion.
func scanNegative(g *core.Graph) error {
	var e *core.Edge
	for _, e = range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}
