package kdisjoint

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sort"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/route"
	"github.com/katalvlaran/lvlpath/tolerance"
)

// FindPaths returns up to k pairwise edge-disjoint source→sink paths of
// minimum total weight, sorted by ascending weight. Fewer than k paths
// (none at all comes back as (nil, nil)) means the graph holds no more,
// which is an answer rather than an error.
//
// Preconditions and validation (in order):
//
//  1. Options must be well-formed (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be uniformly directed; mixed graphs are rejected
//     (ErrNotDirected).
//  4. g must be simple: no multi-edges, no loops (ErrNotSimple).
//  5. g must be weighted (ErrUnweightedGraph).
//  6. k must be at least 1 (ErrBadK).
//  7. source and sink must differ (ErrSameEndpoints) and both exist
//     (ErrVertexNotFound).
//  8. Without WithBellmanFordRounds, no edge may have negative weight
//     (ErrNegativeWeight).
//
// Options honored: WithEpsilon, WithFrontier, WithBellmanFordRounds,
// WithLogger.
//
// Complexity:
//
//   - Time:  O(k·(V+E)·log V) with Dijkstra rounds, O(k·V·E) with
//     Bellman-Ford rounds.
//   - Space: O(V+E) for the working graph.
func FindPaths(g *core.Graph, source, sink string, k int, opts ...Option) ([]*route.Path, error) {
	// 1) Build and validate Options.
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Graph shape.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() || g.MixedEdges() {
		return nil, ErrNotDirected
	}
	if g.Multigraph() || g.Looped() {
		return nil, ErrNotSimple
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}

	// 3) Arguments.
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadK, k)
	}
	if source == sink {
		return nil, fmt.Errorf("%w: %q", ErrSameEndpoints, source)
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if !g.HasVertex(sink) {
		return nil, fmt.Errorf("%w: sink %q", ErrVertexNotFound, sink)
	}

	// 4) Dijkstra rounds need non-negative input weights.
	if !cfg.BellmanFord {
		if err = scanNegative(g); err != nil {
			return nil, err
		}
	}

	cmp, err := tolerance.New(cfg.Epsilon)
	if err != nil {
		return nil, fmt.Errorf("%w: epsilon %v", ErrOptionViolation, cfg.Epsilon)
	}

	// 5) Successive shortest-path rounds on the private working graph.
	w := newWorkGraph(g)
	src, dst := w.arena.index(source), w.arena.index(sink)
	found := 0
	for round := 1; round <= k; round++ {
		var (
			dist    []float64
			predArc []int
		)
		if cfg.BellmanFord {
			dist, predArc, err = w.bellmanFordRound(src, cmp)
		} else {
			dist, predArc, err = w.dijkstraRound(src, cfg, cmp)
		}
		if err != nil {
			return nil, err
		}
		if math.IsInf(dist[dst], 1) {
			cfg.Logger.Debug("sink unreachable, stopping early",
				slog.Int("round", round),
				slog.Int("paths", found),
			)

			break
		}

		// Collect the round's path arcs by walking predecessors sink→source.
		onPath := make([]int, 0, 8)
		for v := dst; v != src; {
			idx := predArc[v]
			if idx < 0 || len(onPath) > len(w.arcs) {
				return nil, fmt.Errorf("%w: broken predecessor chain at %q", ErrInternal, w.arena.ids[v])
			}
			onPath = append(onPath, idx)
			v = w.arcs[idx].from
		}

		cfg.Logger.Debug("round complete",
			slog.Int("round", round),
			slog.Float64("distance", dist[dst]),
			slog.Int("arcs", len(onPath)),
		)

		// 6) Rebase every weight on this round's potentials, then reverse
		//    the path at weight zero (exactly zero, clearing rounding drift).
		w.reduce(dist)
		var idx int
		for _, idx = range onPath {
			w.reverse(idx)
			w.arcs[idx].w = 0
		}
		found++
	}
	if found == 0 {
		return nil, nil
	}

	// 7) Cancel opposite traversals and stitch the survivors into paths.
	paths, err := w.stitch(g, source, src, dst, found)
	if err != nil {
		return nil, err
	}

	// 8) Deterministic presentation order.
	sortPaths(paths, cmp)

	return paths, nil
}

// stitch peels `count` simple paths out of the net-used edge set. An arc
// that ended up reversed was traversed by an odd number of rounds: net one
// forward use of its original edge. Arcs still forward cancel out.
func (w *workGraph) stitch(g *core.Graph, source string, src, dst, count int) ([]*route.Path, error) {
	n := w.arena.size()

	// 1) Successor lists of net-used arcs by original tail, in ascending
	//    original-target order (unique per tail on a simple graph).
	used := make([][]int, n)
	for i := range w.arcs {
		if w.arcs[i].forward {
			continue
		}
		u := w.arena.index(w.arcs[i].orig.From)
		used[u] = append(used[u], i)
	}
	var l []int
	for _, l = range used {
		sort.Slice(l, func(a, b int) bool {
			return w.arcs[l[a]].orig.To < w.arcs[l[b]].orig.To
		})
	}

	// 2) Walk source→sink once per path, consuming one successor per visit.
	cursor := make([]int, n)
	paths := make([]*route.Path, 0, count)
	for p := 0; p < count; p++ {
		seq, err := w.walkOne(src, dst, used, cursor)
		if err != nil {
			return nil, err
		}
		edges := make([]*core.Edge, len(seq))
		for i, idx := range seq {
			edges[i] = w.arcs[idx].orig
		}
		path, perr := route.NewPath(g, edges, source)
		if perr != nil {
			return nil, fmt.Errorf("%w: stitching path %d: %v", ErrInternal, p+1, perr)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// walkOne follows successor lists from src to dst. Revisiting a vertex
// closes a zero-weight detour left over from cancellation; the detour's
// arcs are spliced out and stay consumed, so every returned walk is simple.
func (w *workGraph) walkOne(src, dst int, used [][]int, cursor []int) ([]int, error) {
	seq := make([]int, 0, 8)
	seenAt := map[int]int{src: 0}
	cur := src
	for cur != dst {
		l := used[cur]
		if cursor[cur] >= len(l) {
			return nil, fmt.Errorf("%w: stitching stuck at %q", ErrInternal, w.arena.ids[cur])
		}
		idx := l[cursor[cur]]
		cursor[cur]++
		seq = append(seq, idx)
		cur = w.arena.index(w.arcs[idx].orig.To)
		if pos, ok := seenAt[cur]; ok {
			var di int
			for _, di = range seq[pos:] {
				delete(seenAt, w.arena.index(w.arcs[di].orig.To))
			}
			seenAt[cur] = pos
			seq = seq[:pos]

			continue
		}
		seenAt[cur] = len(seq)
		if len(seq) > len(w.arcs) {
			return nil, fmt.Errorf("%w: stitching walk exceeded the arc count", ErrInternal)
		}
	}

	return seq, nil
}

// scanNegative fails fast on any negative edge weight.
func scanNegative(g *core.Graph) error {
	var e *core.Edge
	for _, e = range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight %v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// sortPaths orders the result set by ascending weight, then edge count,
// then lexicographic vertex sequence.
func sortPaths(paths []*route.Path, cmp tolerance.Comparator) {
	sort.SliceStable(paths, func(i, j int) bool {
		a, b := paths[i], paths[j]
		if cmp.Less(a.Weight, b.Weight) {
			return true
		}
		if cmp.Less(b.Weight, a.Weight) {
			return false
		}
		if a.Len() != b.Len() {
			return a.Len() < b.Len()
		}

		return slices.Compare(a.Vertices, b.Vertices) < 0
	})
}
