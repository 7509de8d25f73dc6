package sssp_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/core"
)

// eps is the assertion tolerance; matches tolerance.DefaultEpsilon.
const eps = 1e-9

// requireSameDistance asserts two engine answers agree for one vertex.
// Unreachable must pair with unreachable; InDelta on two infinities computes
// NaN, so the infinite case is compared exactly.
func requireSameDistance(t *testing.T, want, got float64, msgAndArgs ...interface{}) {
	t.Helper()
	if math.IsInf(want, 1) || math.IsInf(got, 1) {
		require.Equal(t, want, got, msgAndArgs...)

		return
	}
	require.InDelta(t, want, got, eps, msgAndArgs...)
}

// diamond builds the weighted digraph
//
//	A→B(1), B→D(1), A→C(5), C→D(1)
//
// plus the isolated vertex X. Shortest A→D is A→B→D with weight 2.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, spec := range []struct {
		from, to string
		w        float64
	}{
		{"A", "B", 1}, {"B", "D", 1}, {"A", "C", 5}, {"C", "D", 1},
	} {
		_, err := g.AddEdge(spec.from, spec.to, spec.w)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("X"))

	return g
}

// vname yields zero-padded vertex IDs so sorted-ID order matches numeric order.
func vname(i int) string { return fmt.Sprintf("v%03d", i) }

// newRand returns a seeded generator; fixed seeds keep the random-graph
// tests reproducible.
func newRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// randomGraph builds a weighted digraph of n vertices: a spanning chain for
// guaranteed reachability plus `extra` random arcs with weights in
// [1, 1+maxW). Duplicate arcs are simply skipped (multi-edges stay disabled).
func randomGraph(t *testing.T, rng *rand.Rand, n, extra int, maxW float64) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for i := 1; i < n; i++ {
		_, err := g.AddEdge(vname(i-1), vname(i), 1+rng.Float64()*maxW)
		require.NoError(t, err)
	}
	for k := 0; k < extra; k++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		_, err := g.AddEdge(vname(u), vname(v), 1+rng.Float64()*maxW)
		if err != nil && !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
			t.Fatalf("adding random edge: %v", err)
		}
	}

	return g
}
