package kdisjoint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/frontier"
	"github.com/katalvlaran/lvlpath/kdisjoint"
	"github.com/katalvlaran/lvlpath/route"
)

// eps is the assertion tolerance; matches tolerance.DefaultEpsilon.
const eps = 1e-9

type edgeSpec struct {
	from, to string
	w        float64
}

// digraph builds a simple weighted digraph from the edge list.
func digraph(t *testing.T, specs []edgeSpec) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, spec := range specs {
		_, err := g.AddEdge(spec.from, spec.to, spec.w)
		require.NoError(t, err)
	}

	return g
}

// suurballeFixture is the classic two-path graph: the single shortest path
// A→B→D→F (weight 3) blocks both cheap disjoint pairs, so round two must
// travel the reversed B→D arc and cancel that edge out of the result.
func suurballeFixture(t *testing.T) *core.Graph {
	t.Helper()

	return digraph(t, []edgeSpec{
		{"A", "B", 1}, {"A", "C", 2}, {"B", "D", 1}, {"B", "E", 2},
		{"C", "D", 2}, {"D", "F", 1}, {"E", "F", 2},
	})
}

// requireEdgeDisjoint asserts no edge ID appears in two paths.
func requireEdgeDisjoint(t *testing.T, paths []*route.Path) {
	t.Helper()
	seen := make(map[string]int)
	for i, p := range paths {
		for _, e := range p.Edges {
			if j, dup := seen[e.ID]; dup {
				t.Fatalf("edge %s (%s→%s) appears in paths %d and %d", e.ID, e.From, e.To, j, i)
			}
			seen[e.ID] = i
		}
	}
}

func TestFindPathsValidation(t *testing.T) {
	simple := digraph(t, []edgeSpec{{"A", "B", 1}})

	undirected := core.NewGraph(core.WithWeighted())
	_, err := undirected.AddEdge("A", "B", 1)
	require.NoError(t, err)

	mixed := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMixedEdges())
	_, err = mixed.AddEdge("A", "B", 1)
	require.NoError(t, err)

	multi := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	_, err = multi.AddEdge("A", "B", 1)
	require.NoError(t, err)

	loopy := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops())
	_, err = loopy.AddEdge("A", "B", 1)
	require.NoError(t, err)

	unweighted := core.NewGraph(core.WithDirected(true))
	_, err = unweighted.AddEdge("A", "B", 0)
	require.NoError(t, err)

	negative := digraph(t, []edgeSpec{{"A", "B", -1}})

	cases := []struct {
		name         string
		g            *core.Graph
		source, sink string
		k            int
		opts         []kdisjoint.Option
		want         error
	}{
		{"nil graph", nil, "A", "B", 1, nil, kdisjoint.ErrNilGraph},
		{"undirected graph", undirected, "A", "B", 1, nil, kdisjoint.ErrNotDirected},
		{"mixed graph", mixed, "A", "B", 1, nil, kdisjoint.ErrNotDirected},
		{"multigraph", multi, "A", "B", 1, nil, kdisjoint.ErrNotSimple},
		{"loops allowed", loopy, "A", "B", 1, nil, kdisjoint.ErrNotSimple},
		{"unweighted graph", unweighted, "A", "B", 1, nil, kdisjoint.ErrUnweightedGraph},
		{"zero k", simple, "A", "B", 0, nil, kdisjoint.ErrBadK},
		{"negative k", simple, "A", "B", -2, nil, kdisjoint.ErrBadK},
		{"same endpoints", simple, "A", "A", 1, nil, kdisjoint.ErrSameEndpoints},
		{"missing source", simple, "ghost", "B", 1, nil, kdisjoint.ErrVertexNotFound},
		{"missing sink", simple, "A", "ghost", 1, nil, kdisjoint.ErrVertexNotFound},
		{"negative weight without Bellman-Ford", negative, "A", "B", 1, nil, kdisjoint.ErrNegativeWeight},
		{"bad epsilon", simple, "A", "B", 1, []kdisjoint.Option{kdisjoint.WithEpsilon(-1)}, kdisjoint.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kdisjoint.FindPaths(tc.g, tc.source, tc.sink, tc.k, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSingleRound: k=1 degenerates to one plain shortest path.
func TestSingleRound(t *testing.T) {
	g := suurballeFixture(t)

	paths, err := kdisjoint.FindPaths(g, "A", "F", 1)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, []string{"A", "B", "D", "F"}, paths[0].Vertices)
	require.InDelta(t, 3.0, paths[0].Weight, eps)
}

// TestTwoDisjointRoutes: a graph with two independent routes yields both,
// cheapest first, even when more were requested.
func TestTwoDisjointRoutes(t *testing.T) {
	g := digraph(t, []edgeSpec{
		{"S", "A", 1}, {"A", "T", 2},
		{"S", "B", 2}, {"B", "T", 2},
	})

	paths, err := kdisjoint.FindPaths(g, "S", "T", 3)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	require.Equal(t, []string{"S", "A", "T"}, paths[0].Vertices)
	require.InDelta(t, 3.0, paths[0].Weight, eps)
	require.Equal(t, []string{"S", "B", "T"}, paths[1].Vertices)
	require.InDelta(t, 4.0, paths[1].Weight, eps)
	requireEdgeDisjoint(t, paths)
}

// TestCancellation: the globally best pair avoids the single shortest
// path's middle edge; the engine must claim B→D in round one, travel it
// backward in round two and drop it from both results.
func TestCancellation(t *testing.T) {
	g := suurballeFixture(t)

	paths, err := kdisjoint.FindPaths(g, "A", "F", 2)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	require.Equal(t, []string{"A", "B", "E", "F"}, paths[0].Vertices)
	require.Equal(t, []string{"A", "C", "D", "F"}, paths[1].Vertices)
	require.InDelta(t, 5.0, paths[0].Weight, eps)
	require.InDelta(t, 5.0, paths[1].Weight, eps)
	requireEdgeDisjoint(t, paths)

	for _, p := range paths {
		for _, e := range p.Edges {
			require.False(t, e.From == "B" && e.To == "D", "cancelled edge leaked into a result")
		}
	}
}

// TestBellmanFordRoundsAgree: Bhandari's solver must reproduce the
// Suurballe result on non-negative weights.
func TestBellmanFordRoundsAgree(t *testing.T) {
	g := suurballeFixture(t)

	ref, err := kdisjoint.FindPaths(g, "A", "F", 2)
	require.NoError(t, err)
	got, err := kdisjoint.FindPaths(g, "A", "F", 2, kdisjoint.WithBellmanFordRounds())
	require.NoError(t, err)

	require.Len(t, got, len(ref))
	for i := range ref {
		require.Equal(t, ref[i].Vertices, got[i].Vertices)
		require.InDelta(t, ref[i].Weight, got[i].Weight, eps)
	}
}

// TestPairingHeapAgrees: the frontier choice must not change the answer.
func TestPairingHeapAgrees(t *testing.T) {
	g := suurballeFixture(t)

	ref, err := kdisjoint.FindPaths(g, "A", "F", 2)
	require.NoError(t, err)
	got, err := kdisjoint.FindPaths(g, "A", "F", 2, kdisjoint.WithFrontier(frontier.NewPairingHeap))
	require.NoError(t, err)

	require.Len(t, got, len(ref))
	for i := range ref {
		require.Equal(t, ref[i].Vertices, got[i].Vertices)
	}
}

// TestNegativeWeights: rejected eagerly under Dijkstra rounds, solved under
// Bellman-Ford rounds; returned weights are original-edge sums.
func TestNegativeWeights(t *testing.T) {
	g := digraph(t, []edgeSpec{
		{"S", "A", 2}, {"S", "B", 3}, {"A", "T", 2}, {"B", "T", -1}, {"A", "B", 1},
	})

	_, err := kdisjoint.FindPaths(g, "S", "T", 2)
	require.ErrorIs(t, err, kdisjoint.ErrNegativeWeight)

	paths, err := kdisjoint.FindPaths(g, "S", "T", 2, kdisjoint.WithBellmanFordRounds())
	require.NoError(t, err)
	require.Len(t, paths, 2)
	require.Equal(t, []string{"S", "B", "T"}, paths[0].Vertices)
	require.InDelta(t, 2.0, paths[0].Weight, eps)
	require.Equal(t, []string{"S", "A", "T"}, paths[1].Vertices)
	require.InDelta(t, 4.0, paths[1].Weight, eps)
	requireEdgeDisjoint(t, paths)
}

// TestNegativeCycle: a reachable negative cycle is an error, not a hang.
func TestNegativeCycle(t *testing.T) {
	g := digraph(t, []edgeSpec{
		{"S", "A", 1}, {"A", "B", -3}, {"B", "A", 1}, {"A", "T", 5},
	})

	_, err := kdisjoint.FindPaths(g, "S", "T", 2, kdisjoint.WithBellmanFordRounds())
	require.ErrorIs(t, err, kdisjoint.ErrNegativeCycle)
}

// TestFewerThanK: a bridge bottleneck caps the result below k without error.
func TestFewerThanK(t *testing.T) {
	g := digraph(t, []edgeSpec{{"S", "A", 1}, {"A", "T", 1}})

	paths, err := kdisjoint.FindPaths(g, "S", "T", 4)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, []string{"S", "A", "T"}, paths[0].Vertices)
}

// TestNoPath: an unreachable sink yields (nil, nil).
func TestNoPath(t *testing.T) {
	g := digraph(t, []edgeSpec{{"S", "A", 1}, {"T", "B", 1}})

	paths, err := kdisjoint.FindPaths(g, "S", "T", 2)
	require.NoError(t, err)
	require.Nil(t, paths)
}

// TestCallerGraphUnchanged: all round bookkeeping happens on the private
// working graph; the input must come back byte-for-byte identical.
func TestCallerGraphUnchanged(t *testing.T) {
	g := suurballeFixture(t)

	type edgeState struct {
		from, to string
		w        float64
		directed bool
	}
	before := make(map[string]edgeState)
	for _, e := range g.Edges() {
		before[e.ID] = edgeState{from: e.From, to: e.To, w: e.Weight, directed: e.Directed}
	}
	vertsBefore := g.Vertices()

	_, err := kdisjoint.FindPaths(g, "A", "F", 2)
	require.NoError(t, err)

	require.Equal(t, vertsBefore, g.Vertices())
	after := g.Edges()
	require.Len(t, after, len(before))
	for _, e := range after {
		require.Equal(t, before[e.ID], edgeState{from: e.From, to: e.To, w: e.Weight, directed: e.Directed})
	}
}
