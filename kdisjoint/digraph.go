package kdisjoint

import (
	"math"

	"github.com/katalvlaran/lvlpath/core"
)

// arena assigns every vertex ID a dense index in [0,V), in sorted-ID order.
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

// warc is one working arc. From/to flip when a round's path reverses the
// arc; forward tracks the net orientation relative to the original edge.
type warc struct {
	from    int
	to      int
	w       float64 // current working weight (reduced across rounds)
	alive   bool
	forward bool
	orig    *core.Edge
}

// workGraph is the private digraph the rounds mutate: a flat arc array plus
// per-vertex out-lists of arc indexes. Reversal is O(1): flip the arc in
// place and append its index to the new tail's list, leaving the old entry
// stale; every scan skips entries whose arc no longer leaves the vertex.
type workGraph struct {
	arena *arena
	arcs  []warc
	next  [][]int // vertex → indexes of arcs that left it at some point
}

// newWorkGraph snapshots g into the arena form, one arc per edge in
// ascending edge-ID order. The caller's graph is read, never written.
func newWorkGraph(g *core.Graph) *workGraph {
	a := newArena(g)
	edges := g.Edges()
	w := &workGraph{
		arena: a,
		arcs:  make([]warc, 0, len(edges)),
		next:  make([][]int, a.size()),
	}
	var e *core.Edge
	for _, e = range edges {
		u, v := a.index(e.From), a.index(e.To)
		w.arcs = append(w.arcs, warc{from: u, to: v, w: e.Weight, alive: true, forward: true, orig: e})
		w.next[u] = append(w.next[u], len(w.arcs)-1)
	}

	return w
}

// reverse flips arc i in place and registers it at its new tail.
func (w *workGraph) reverse(i int) {
	a := &w.arcs[i]
	a.from, a.to = a.to, a.from
	a.forward = !a.forward
	w.next[a.from] = append(w.next[a.from], i)
}

// reduce rebases every alive arc onto the round's potentials:
// w' = w + dist(from) - dist(to), non-negative by the optimality of dist.
// An arc touching a vertex this round never reached cannot sit on any later
// source→sink path (reversals only rewire the reached region), so it dies
// here instead of poisoning the arithmetic with infinities.
func (w *workGraph) reduce(dist []float64) {
	for i := range w.arcs {
		a := &w.arcs[i]
		if !a.alive {
			continue
		}
		if math.IsInf(dist[a.from], 1) || math.IsInf(dist[a.to], 1) {
			a.alive = false
			continue
		}
		a.w += dist[a.from] - dist[a.to]
	}
}
