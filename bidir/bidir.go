package bidir

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/frontier"
	"github.com/katalvlaran/lvlpath/route"
	"github.com/katalvlaran/lvlpath/tolerance"
)

// FindPath computes a shortest path from source to target on the weighted
// graph g by growing Dijkstra frontiers from both endpoints and stopping as
// soon as neither side can improve on the best route found where they met.
// The returned weight always equals single-direction Dijkstra's.
//
// Returns route.Trivial(source) when source == target and (nil, nil) when
// the target is unreachable.
//
// Preconditions and validation (in order):
//
//  1. Options must be well-formed (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain source and target (ErrVertexNotFound).
//  5. No edge may have negative weight (ErrNegativeWeight).
//
// Options honored: WithEpsilon, WithFrontier, WithContext.
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case, typically two half-radius balls.
//   - Space: O(V) per direction plus the reversed view (O(V + E)) when g
//     has directed edges.
func FindPath(g *core.Graph, source, target string, opts ...Option) (*route.Path, error) {
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

	// 5) Run the two-frontier engine.
	r, err := newRunner(g, cfg, source, target)
	if err != nil {
		return nil, err
	}

	return r.run()
}

// arena assigns every vertex ID a dense index in [0,V), in sorted-ID order.
// Both directions share one arena: the reversed view preserves the vertex
// set, so indices line up.
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

// side holds one direction's dense search state. The backward side scans the
// reversed view, so its pred edges may be view-owned clones; reconstruction
// maps them back by edge ID.
type side struct {
	g      *core.Graph
	dist   []float64
	pred   []*core.Edge
	closed []bool
	open   frontier.Frontier
}

func newSide(g *core.Graph, cfg Options, n int) *side {
	s := &side{
		g:      g,
		dist:   make([]float64, n),
		pred:   make([]*core.Edge, n),
		closed: make([]bool, n),
		open:   cfg.Frontier(n),
	}
	for i := range s.dist {
		s.dist[i] = route.Unreachable
	}

	return s
}

// meeting records the junction of the cheapest candidate route seen so far:
// the forward tree covers source→fwdVertex, the backward tree covers
// bwdVertex→target, and bridge (nil when the trees touched at one vertex)
// joins the halves in the original graph's orientation.
type meeting struct {
	found     bool
	fwdVertex int
	bridge    *core.Edge
	bwdVertex int
}

// runner holds the state of one bidirectional execution.
type runner struct {
	orig   *core.Graph
	cfg    Options
	cmp    tolerance.Comparator
	arena  *arena
	fwd    *side
	bwd    *side
	best   float64
	meet   meeting
	source string
	target string
	src    int
	tgt    int
}

// newRunner allocates both directions. The backward side searches the
// edge-reversed view when g has directed edges; a fully undirected graph
// reads the same both ways, so it is scanned directly.
func newRunner(g *core.Graph, cfg Options, source, target string) (*runner, error) {
	cmp, err := tolerance.New(cfg.Epsilon)
	if err != nil {
		return nil, fmt.Errorf("%w: epsilon %v", ErrOptionViolation, cfg.Epsilon)
	}

	back := g
	if g.HasDirectedEdges() {
		back = core.ReversedView(g)
	}

	a := newArena(g)
	n := a.size()
	r := &runner{
		orig:   g,
		cfg:    cfg,
		cmp:    cmp,
		arena:  a,
		fwd:    newSide(g, cfg, n),
		bwd:    newSide(back, cfg, n),
		best:   math.Inf(1),
		source: source,
		target: target,
		src:    a.index(source),
		tgt:    a.index(target),
	}

	return r, nil
}

// run alternates strictly between the directions: one settle forward, one
// backward, until the sum criterion (or a drained frontier) proves no
// cheaper route remains.
func (r *runner) run() (*route.Path, error) {
	// 1) Seed both frontiers at distance zero.
	r.fwd.dist[r.src] = 0
	if err := r.fwd.open.Insert(r.src, 0); err != nil {
		return nil, fmt.Errorf("bidir: seeding forward frontier: %w", err)
	}
	r.bwd.dist[r.tgt] = 0
	if err := r.bwd.open.Insert(r.tgt, 0); err != nil {
		return nil, fmt.Errorf("bidir: seeding backward frontier: %w", err)
	}

	// 2) Alternate until neither queued vertex can start a cheaper route.
	for {
		if err := r.cfg.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("bidir: search interrupted: %w", err)
		}

		// A drained frontier means its direction has settled everything it
		// can reach: every possible route has been offered as a candidate.
		if r.fwd.open.IsEmpty() || r.bwd.open.IsEmpty() {
			break
		}

		minF, err := r.fwd.open.Min()
		if err != nil {
			return nil, fmt.Errorf("bidir: forward frontier: %w", err)
		}
		minB, err := r.bwd.open.Min()
		if err != nil {
			return nil, fmt.Errorf("bidir: backward frontier: %w", err)
		}
		if !r.cmp.Less(minF.Key+minB.Key, r.best) {
			break
		}

		if err = r.step(r.fwd, r.bwd, false); err != nil {
			return nil, err
		}
		if err = r.step(r.bwd, r.fwd, true); err != nil {
			return nil, err
		}
	}

	// 3) No meeting: the searches never touched, so no path exists.
	if !r.meet.found {
		return nil, nil
	}

	return r.reconstruct()
}

// step settles one vertex on side s and relaxes its outgoing edges.
func (r *runner) step(s, other *side, backward bool) error {
	it, err := s.open.DeleteMin()
	if err != nil {
		return fmt.Errorf("bidir: frontier: %w", err)
	}
	s.closed[it.Vertex] = true

	// Trees touched: both directions settled this vertex, so a complete
	// route through it is known.
	if other.closed[it.Vertex] {
		if cand := s.dist[it.Vertex] + other.dist[it.Vertex]; r.cmp.Less(cand, r.best) {
			r.best = cand
			r.meet = meeting{found: true, fwdVertex: it.Vertex, bwdVertex: it.Vertex}
		}
	}

	return r.relax(s, other, it.Vertex, backward)
}

// relax scans the outgoing edges of u on side s, recording bridge candidates
// into the other side's seen set and improving this side's distances.
func (r *runner) relax(s, other *side, u int, backward bool) error {
	uid := r.arena.ids[u]
	edges, err := s.g.OutgoingEdgesOf(uid)
	if err != nil {
		return fmt.Errorf("bidir: outgoing edges of %q: %w", uid, err)
	}

	var (
		e    *core.Edge
		v    int
		cand float64
	)
	for _, e = range edges {
		v = r.arena.index(e.Opposite(uid))
		// A self-loop neither bridges nor improves.
		if v == u {
			continue
		}

		// Bridge check first: an edge into the other side's seen set
		// completes a candidate route whether or not this side improves v.
		if !math.IsInf(other.dist[v], 1) {
			if cand = s.dist[u] + e.Weight + other.dist[v]; r.cmp.Less(cand, r.best) {
				bridge, berr := r.originalEdge(e)
				if berr != nil {
					return berr
				}
				m := meeting{found: true, bridge: bridge}
				if backward {
					m.fwdVertex, m.bwdVertex = v, u
				} else {
					m.fwdVertex, m.bwdVertex = u, v
				}
				r.best = cand
				r.meet = m
			}
		}

		cand = s.dist[u] + e.Weight
		if !r.cmp.Less(cand, s.dist[v]) {
			continue
		}
		// With non-negative weights a settled distance cannot improve.
		if s.closed[v] {
			continue
		}

		s.dist[v] = cand
		s.pred[v] = e
		if s.open.Contains(v) {
			err = s.open.DecreaseKey(v, cand)
		} else {
			err = s.open.Insert(v, cand)
		}
		if err != nil {
			return fmt.Errorf("bidir: frontier update for %q: %w", e.Opposite(uid), err)
		}
	}

	return nil
}

// originalEdge maps an edge scanned by the backward side to the caller's
// graph. The reversed view preserves edge IDs, so the lookup recovers the
// original orientation; forward-side edges pass through untouched.
func (r *runner) originalEdge(e *core.Edge) (*core.Edge, error) {
	if r.bwd.g == r.orig {
		return e, nil
	}
	orig, err := r.orig.GetEdge(e.ID)
	if err != nil {
		return nil, fmt.Errorf("bidir: mapping reversed edge %s: %w", e.ID, err)
	}

	return orig, nil
}

// reconstruct stitches forward tree + bridge + backward tree into one path
// over the original graph and re-validates it through route.NewPath.
func (r *runner) reconstruct() (*route.Path, error) {
	// 1) Forward half: walk source←fwdVertex predecessors, then reverse.
	rev := make([]*core.Edge, 0, 8)
	cur := r.meet.fwdVertex
	for cur != r.src {
		e := r.fwd.pred[cur]
		if e == nil || len(rev) > r.arena.size() {
			return nil, fmt.Errorf("bidir: reconstructing %q→%q: broken forward chain", r.source, r.target)
		}
		rev = append(rev, e)
		cur = r.arena.index(e.Opposite(r.arena.ids[cur]))
	}
	edges := make([]*core.Edge, 0, 2*len(rev)+1)
	for i := len(rev) - 1; i >= 0; i-- {
		edges = append(edges, rev[i])
	}

	// 2) The bridge edge, already in original orientation.
	if r.meet.bridge != nil {
		edges = append(edges, r.meet.bridge)
	}

	// 3) Backward half: walking bwdVertex←target predecessors in the
	//    reversed view yields the original-orientation edges in forward
	//    order, one GetEdge remap at a time.
	cur = r.meet.bwdVertex
	steps := 0
	for cur != r.tgt {
		e := r.bwd.pred[cur]
		if e == nil || steps > r.arena.size() {
			return nil, fmt.Errorf("bidir: reconstructing %q→%q: broken backward chain", r.source, r.target)
		}
		orig, err := r.originalEdge(e)
		if err != nil {
			return nil, err
		}
		edges = append(edges, orig)
		cur = r.arena.index(e.Opposite(r.arena.ids[cur]))
		steps++
	}

	p, err := route.NewPath(r.orig, edges, r.source)
	if err != nil {
		return nil, fmt.Errorf("bidir: reconstructing %q→%q: %w", r.source, r.target, err)
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
