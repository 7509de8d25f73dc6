package kdisjoint

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlpath/route"
	"github.com/katalvlaran/lvlpath/tolerance"
)

// dijkstraRound settles the working graph's alive arcs from src in ascending
// distance order. Valid whenever working weights are non-negative, which the
// reduced-cost transform guarantees between rounds. Returns dense distances
// and, per vertex, the arc index that finalized it (-1 for none).
func (w *workGraph) dijkstraRound(src int, cfg Options, cmp tolerance.Comparator) ([]float64, []int, error) {
	n := w.arena.size()
	dist := make([]float64, n)
	predArc := make([]int, n)
	closed := make([]bool, n)
	for i := 0; i < n; i++ {
		dist[i] = route.Unreachable
		predArc[i] = -1
	}

	// 1) Seed the frontier with the source at distance zero.
	open := cfg.Frontier(n)
	dist[src] = 0
	if err := open.Insert(src, 0); err != nil {
		return nil, nil, fmt.Errorf("kdisjoint: seeding frontier: %w", err)
	}

	// 2) Settle in ascending distance order.
	for !open.IsEmpty() {
		it, err := open.DeleteMin()
		if err != nil {
			return nil, nil, fmt.Errorf("kdisjoint: frontier: %w", err)
		}
		u := it.Vertex
		closed[u] = true

		var (
			idx  int
			cand float64
		)
		for _, idx = range w.next[u] {
			a := &w.arcs[idx]
			// Stale out-list entries and dead arcs do not leave u anymore.
			if !a.alive || a.from != u {
				continue
			}
			cand = dist[u] + a.w
			if !cmp.Less(cand, dist[a.to]) {
				continue
			}
			if closed[a.to] {
				continue
			}

			dist[a.to] = cand
			predArc[a.to] = idx
			if open.Contains(a.to) {
				err = open.DecreaseKey(a.to, cand)
			} else {
				err = open.Insert(a.to, cand)
			}
			if err != nil {
				return nil, nil, fmt.Errorf("kdisjoint: frontier update for %q: %w", w.arena.ids[a.to], err)
			}
		}
	}

	return dist, predArc, nil
}

// bellmanFordRound relaxes every alive arc up to V-1 times; tolerates
// negative working weights and detects negative cycles with one extra pass.
// Arc order is fixed, so the round is deterministic.
func (w *workGraph) bellmanFordRound(src int, cmp tolerance.Comparator) ([]float64, []int, error) {
	n := w.arena.size()
	dist := make([]float64, n)
	predArc := make([]int, n)
	for i := 0; i < n; i++ {
		dist[i] = route.Unreachable
		predArc[i] = -1
	}
	dist[src] = 0

	// 1) V-1 relaxation passes with an early exit once a pass goes quiet.
	var (
		i        int
		cand     float64
		improved bool
	)
	for pass := 1; pass < n; pass++ {
		improved = false
		for i = range w.arcs {
			a := &w.arcs[i]
			if !a.alive || math.IsInf(dist[a.from], 1) {
				continue
			}
			cand = dist[a.from] + a.w
			if cmp.Less(cand, dist[a.to]) {
				dist[a.to] = cand
				predArc[a.to] = i
				improved = true
			}
		}
		if !improved {
			break
		}
	}

	// 2) A pass that could still improve proves a reachable negative cycle.
	if improved {
		for i = range w.arcs {
			a := &w.arcs[i]
			if !a.alive || math.IsInf(dist[a.from], 1) {
				continue
			}
			if cmp.Less(dist[a.from]+a.w, dist[a.to]) {
				return nil, nil, ErrNegativeCycle
			}
		}
	}

	return dist, predArc, nil
}
