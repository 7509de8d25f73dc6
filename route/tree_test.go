package route_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/route"
)

// treeFixture builds the chain A→B→C→D and the dist/pred maps a correct
// engine would emit for source A, leaving the isolated vertex "E" unreached.
func treeFixture(t *testing.T) (*core.Graph, map[string]float64, map[string]*core.Edge) {
	t.Helper()
	g, edges := chainGraph(t)
	require.NoError(t, g.AddVertex("E"))

	dist := map[string]float64{
		"A": 0, "B": 1, "C": 3, "D": 6,
		"E": math.Inf(1),
	}
	pred := map[string]*core.Edge{
		"B": edges[0], "C": edges[1], "D": edges[2],
	}

	return g, dist, pred
}

func TestNewTree_Validation(t *testing.T) {
	g, dist, pred := treeFixture(t)

	_, err := route.NewTree(nil, "A", dist, pred)
	require.ErrorIs(t, err, route.ErrNilGraph)

	_, err = route.NewTree(g, "", dist, pred)
	require.ErrorIs(t, err, route.ErrEmptySource)

	// A source with no distance entry, or a non-zero one, is an engine bug.
	_, err = route.NewTree(g, "Z", dist, pred)
	require.ErrorIs(t, err, route.ErrBadSourceDistance)

	dist["A"] = 0.5
	_, err = route.NewTree(g, "A", dist, pred)
	require.ErrorIs(t, err, route.ErrBadSourceDistance)
	dist["A"] = 0

	// A predecessor edge out of an unreached vertex is inconsistent.
	bad, err2 := g.AddEdge("E", "D", 1)
	require.NoError(t, err2)
	pred["D"] = edgeByID(t, g, bad)
	_, err = route.NewTree(g, "A", dist, pred)
	require.ErrorIs(t, err, route.ErrDanglingPredecessor)
}

func TestTree_Lookups(t *testing.T) {
	g, dist, pred := treeFixture(t)
	tree, err := route.NewTree(g, "A", dist, pred)
	require.NoError(t, err)

	require.Equal(t, "A", tree.Source())
	require.InDelta(t, 0.0, tree.WeightTo("A"), 1e-12)
	require.InDelta(t, 3.0, tree.WeightTo("C"), 1e-12)
	require.True(t, tree.Reached("D"))

	// Unreached and unknown vertices both report Unreachable.
	require.Equal(t, route.Unreachable, tree.WeightTo("E"))
	require.Equal(t, route.Unreachable, tree.WeightTo("nope"))
	require.False(t, tree.Reached("E"))
	require.False(t, tree.Reached("nope"))

	require.Nil(t, tree.PredecessorEdge("A"))
	require.Equal(t, pred["C"], tree.PredecessorEdge("C"))
}

func TestTree_PathTo(t *testing.T) {
	g, dist, pred := treeFixture(t)
	tree, err := route.NewTree(g, "A", dist, pred)
	require.NoError(t, err)

	// Source yields the trivial path.
	p := tree.PathTo("A")
	require.NotNil(t, p)
	require.Equal(t, []string{"A"}, p.Vertices)
	require.Zero(t, p.Weight)

	// Full chain reconstruction, weight taken from the tree metric.
	p = tree.PathTo("D")
	require.NotNil(t, p)
	require.Equal(t, []string{"A", "B", "C", "D"}, p.Vertices)
	require.Equal(t, 3, p.Len())
	require.InDelta(t, 6.0, p.Weight, 1e-12)
	require.True(t, p.Simple())

	// Unreachable vertices have no path.
	require.Nil(t, tree.PathTo("E"))
	require.Nil(t, tree.PathTo("nope"))
}

func TestTree_PathToUndirectedPredecessors(t *testing.T) {
	// Undirected triangle: predecessor edges must be walkable from either end.
	g := core.NewGraph(core.WithWeighted())
	sa, err := g.AddEdge("S", "A", 2)
	require.NoError(t, err)
	ab, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("S", "B", 5)
	require.NoError(t, err)

	dist := map[string]float64{"S": 0, "A": 2, "B": 4}
	pred := map[string]*core.Edge{
		"A": edgeByID(t, g, sa),
		"B": edgeByID(t, g, ab),
	}
	tree, err := route.NewTree(g, "S", dist, pred)
	require.NoError(t, err)

	p := tree.PathTo("B")
	require.NotNil(t, p)
	require.Equal(t, []string{"S", "A", "B"}, p.Vertices)
	require.InDelta(t, 4.0, p.Weight, 1e-12)
}
