package sssp

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/route"
	"github.com/katalvlaran/lvlpath/tolerance"
)

// arena assigns every vertex ID a dense index in [0,V), in the sorted order
// core.Graph.Vertices returns. Dense indices let the engines keep distance,
// predecessor and closed state in flat slices, and make frontier tie-breaking
// (ascending index == ascending ID) deterministic.
type arena struct {
	ids []string       // index → vertex ID
	at  map[string]int // vertex ID → index
}

// newArena snapshots the vertex set of g. Mutations of g after this point are
// not observed by the run.
func newArena(g *core.Graph) *arena {
	ids := g.Vertices()
	at := make(map[string]int, len(ids))
	for i, id := range ids {
		at[id] = i
	}

	return &arena{ids: ids, at: at}
}

// index returns the dense index of id, or -1 when id is not in the snapshot.
func (a *arena) index(id string) int {
	i, ok := a.at[id]
	if !ok {
		return -1
	}

	return i
}

// size returns the number of vertices in the snapshot.
func (a *arena) size() int { return len(a.ids) }

// unreachableDistances returns a fresh dense distance slice with every entry
// initialized to route.Unreachable.
func unreachableDistances(n int) []float64 {
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = route.Unreachable
	}

	return dist
}

// assembleTree converts dense engine state back into the public tree form.
// A route.NewTree failure here means the engine violated a tree invariant.
func assembleTree(g *core.Graph, a *arena, source string, dist []float64, pred []*core.Edge) (*route.Tree, error) {
	dm := make(map[string]float64, a.size())
	pm := make(map[string]*core.Edge, a.size())
	for i, id := range a.ids {
		dm[id] = dist[i]
		if pred[i] != nil {
			pm[id] = pred[i]
		}
	}
	tree, err := route.NewTree(g, source, dm, pm)
	if err != nil {
		return nil, fmt.Errorf("sssp: assembling tree: %w", err)
	}

	return tree, nil
}

// applyOptions materializes the configuration for one run and surfaces any
// violation an option recorded.
func applyOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}

	return cfg, nil
}

// comparatorFor builds the tolerance comparator for a validated config.
func comparatorFor(cfg Options) (tolerance.Comparator, error) {
	cmp, err := tolerance.New(cfg.Epsilon)
	if err != nil {
		return tolerance.Comparator{}, fmt.Errorf("%w: epsilon %v", ErrOptionViolation, cfg.Epsilon)
	}

	return cmp, nil
}

// validateWeightedRun performs the shared precondition checks of the weighted
// engines, in the same order for every engine:
//
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
func validateWeightedRun(g *core.Graph, cfg Options) error {
	if cfg.Source == "" {
		return ErrEmptySource
	}
	if g == nil {
		return ErrNilGraph
	}
	if !g.Weighted() {
		return ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	return nil
}

// scanNegative fails fast when any edge carries a negative weight.
// O(E); run once per engine invocation, before any relaxation.
func scanNegative(g *core.Graph) error {
	var e *core.Edge
	for _, e = range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}
