package sssp

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/route"
)

// Between computes one shortest path from source to target on the weighted
// graph g. It is Dijkstra with an early exit: the run stops the moment the
// target is settled, so on large graphs with a near source-target pair only a
// small ball around the source is explored.
//
// Returns (nil, nil) when the target is unreachable; a nil path with a nil
// error is the documented "no path" answer, mirroring route.Tree.PathTo.
// Equal endpoints yield route.Trivial(source).
//
// The positional source argument takes precedence over any Source option.
// Validation matches Dijkstra, plus the target must exist in g
// (ErrVertexNotFound).
//
// Options honored: WithEpsilon, WithFrontier, WithContext, WithMaxDistance,
// WithInfEdgeThreshold.
//
// Complexity: worst case identical to Dijkstra; typically bounded by the
// ball of radius dist(source, target).
func Between(g *core.Graph, source, target string, opts ...Option) (*route.Path, error) {
	// 1) Build and validate Options; positional endpoints override.
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	cfg.Source = source

	// 2) Precondition checks, then the target (same rules as the source).
	if err = validateWeightedRun(g, cfg); err != nil {
		return nil, err
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}
	if err = scanNegative(g); err != nil {
		return nil, err
	}

	// 3) Equal endpoints need no search.
	if source == target {
		return route.Trivial(source), nil
	}

	// 4) Early-exit Dijkstra run.
	r, err := newDijkstraRunner(g, cfg, noTarget)
	if err != nil {
		return nil, err
	}
	r.target = r.arena.index(target)
	if err = r.run(); err != nil {
		return nil, err
	}

	// 5) Unreachable target: no path, no error.
	ti := r.target
	if r.pred[ti] == nil {
		return nil, nil
	}

	// 6) Walk the dense predecessor chain backward and re-assemble through
	//    NewPath, which re-validates continuity and sums the weight.
	rev := make([]*core.Edge, 0, 8)
	cur := ti
	srcIdx := r.arena.index(source)
	for cur != srcIdx {
		e := r.pred[cur]
		if e == nil || len(rev) > r.arena.size() {
			return nil, fmt.Errorf("sssp: reconstructing %q→%q: broken predecessor chain", source, target)
		}
		rev = append(rev, e)
		cur = r.arena.index(e.Opposite(r.arena.ids[cur]))
	}
	edges := make([]*core.Edge, len(rev))
	for i, e := range rev {
		edges[len(rev)-1-i] = e
	}
	p, err := route.NewPath(g, edges, source)
	if err != nil {
		return nil, fmt.Errorf("sssp: reconstructing %q→%q: %w", source, target, err)
	}

	return p, nil
}
