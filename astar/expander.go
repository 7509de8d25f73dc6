package astar

import (
	"math"

	"github.com/katalvlaran/lvlpath/core"
)

// expander is the per-mode expansion strategy plugged into the engine loop:
// beforeExpand runs right after a vertex is dequeued, onSuccessor once per
// outgoing edge scanned during its expansion. The engine loop itself is
// shared; only these two hooks differ between the heuristic grades.
type expander interface {
	beforeExpand(r *runner, v int)
	onSuccessor(r *runner, v, s int, w float64)
}

// consistentExpander is the default mode. A consistent heuristic needs no
// correction, so both hooks are no-ops and expansion costs exactly what
// Dijkstra's relaxation does plus one heuristic call per vertex.
type consistentExpander struct{}

func (consistentExpander) beforeExpand(*runner, int)              {}
func (consistentExpander) onSuccessor(*runner, int, int, float64) {}

// inconsistentExpander implements the bidirectional pathmax correction
// (BPMX). It carries a dense incoming-adjacency snapshot so the backward
// pull-up does not pay the O(E) cost of core.Graph.IncomingEdgesOf on every
// expansion.
type inconsistentExpander struct {
	in [][]*core.Edge // index → edges entering the vertex, ascending edge ID
}

// newInconsistentExpander snapshots incoming adjacency in one O(V+E) sweep.
// core.Graph.Edges returns edges in ascending ID order, so each bucket stays
// ID-ordered and the pull-up scan is deterministic.
func newInconsistentExpander(g *core.Graph, a *arena) *inconsistentExpander {
	in := make([][]*core.Edge, a.size())
	var e *core.Edge
	for _, e = range g.Edges() {
		if e.Directed {
			ti := a.index(e.To)
			in[ti] = append(in[ti], e)

			continue
		}
		// Undirected: traversable into either endpoint; self-loops once.
		fi, ti := a.index(e.From), a.index(e.To)
		in[ti] = append(in[ti], e)
		if fi != ti {
			in[fi] = append(in[fi], e)
		}
	}

	return &inconsistentExpander{in: in}
}

// beforeExpand is the backward half of the correction: lift h(v) to the best
// bound implied by incoming neighbors, h(v) = max(h(v), h(u) − w(u,v)). Only
// already-cached estimates participate; the pull-up never triggers a new
// heuristic evaluation.
func (x *inconsistentExpander) beforeExpand(r *runner, v int) {
	hv := r.heuristicAt(v)
	vid := r.arena.ids[v]
	var (
		e      *core.Edge
		u      int
		lifted float64
	)
	for _, e = range x.in[v] {
		u = r.arena.index(e.Opposite(vid))
		if u == v {
			continue
		}
		if math.IsNaN(r.hScore[u]) {
			continue
		}
		if lifted = r.hScore[u] - e.Weight; r.cmp.Less(hv, lifted) {
			hv = lifted
		}
	}
	r.hScore[v] = hv
}

// onSuccessor is the forward half: propagate the lifted estimate one edge
// ahead, h(s) = max(h(s), h(v) − w(v,s)), within the same expansion step.
func (x *inconsistentExpander) onSuccessor(r *runner, v, s int, w float64) {
	if lifted := r.hScore[v] - w; r.cmp.Less(r.heuristicAt(s), lifted) {
		r.hScore[s] = lifted
	}
}
