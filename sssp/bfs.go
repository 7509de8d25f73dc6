package sssp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/route"
)

// BFS computes the hop-count tree from the source vertex (Options.Source)
// over an unweighted graph: the distance recorded for every reached vertex is
// the minimum number of edges from the source, and the predecessor edge is
// the one that discovered it.
//
// The graph must be unweighted; on a weighted graph hop counting silently
// contradicts the weights, so the engine refuses with ErrWeightedGraph and
// points the caller at Dijkstra. When hop counts over a weighted graph are
// the actual goal, run BFS on core.UnweightedView(g). Discovery order is
// deterministic: vertices are interned in sorted order and edges scanned in
// ascending edge-ID order.
//
// WithMaxHops(k) bounds the search depth: vertices at depth k are reached but
// not expanded, so anything farther than k hops stays unreachable.
//
// Preconditions and validation (in order):
//
//  1. Options must be well-formed (ErrOptionViolation).
//  2. Source must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must be unweighted (ErrWeightedGraph).
//  5. g must contain Source (ErrVertexNotFound).
//
// Options honored: WithContext, WithMaxHops.
//
// Complexity:
//
//   - Time:  O(V + E log E) including the sorted adjacency queries.
//   - Space: O(V).
func BFS(g *core.Graph, opts ...Option) (*route.Tree, error) {
	// 1) Build and validate Options.
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Precondition checks; same order as the weighted engines, with the
	//    weight requirement inverted.
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 3) Dense per-run state.
	a := newArena(g)
	n := a.size()
	dist := unreachableDistances(n)
	pred := make([]*core.Edge, n)

	src := a.index(cfg.Source)
	dist[src] = 0

	// 4) Plain FIFO wave expansion; head indexes into the backing slice, so
	//    the queue doubles as the visit order.
	queue := make([]int, 0, n)
	queue = append(queue, src)
	var (
		head, u, v int
		depth      float64
		uid        string
		edges      []*core.Edge
		e          *core.Edge
	)
	for head = 0; head < len(queue); head++ {
		if err = cfg.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("sssp: bfs interrupted: %w", err)
		}

		u = queue[head]
		depth = dist[u]

		// The hop cap reaches depth-k vertices but does not expand them.
		if cfg.MaxHops > 0 && depth >= float64(cfg.MaxHops) {
			continue
		}

		uid = a.ids[u]
		if edges, err = g.OutgoingEdgesOf(uid); err != nil {
			return nil, fmt.Errorf("sssp: outgoing edges of %q: %w", uid, err)
		}
		for _, e = range edges {
			v = a.index(e.Opposite(uid))
			if !math.IsInf(dist[v], 1) {
				continue // already discovered (self-loops land here too)
			}
			dist[v] = depth + 1
			pred[v] = e
			queue = append(queue, v)
		}
	}

	// 5) Convert dense state into the public tree form.
	return assembleTree(g, a, cfg.Source, dist, pred)
}
