package tolerance_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlpath/tolerance"
)

// TestNew_Validation locks in the ErrBadEpsilon contract.
func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name string
		eps  float64
		ok   bool
	}{
		{"positive", 1e-6, true},
		{"default-sized", tolerance.DefaultEpsilon, true},
		{"zero", 0, false},
		{"negative", -1e-9, false},
		{"nan", math.NaN(), false},
		{"posinf", math.Inf(1), false},
		{"neginf", math.Inf(-1), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmp, err := tolerance.New(tc.eps)
			if tc.ok {
				if err != nil {
					t.Fatalf("New(%g): unexpected error: %v", tc.eps, err)
				}
				if cmp.Epsilon() != tc.eps {
					t.Fatalf("Epsilon()=%g want %g", cmp.Epsilon(), tc.eps)
				}
				return
			}
			if !errors.Is(err, tolerance.ErrBadEpsilon) {
				t.Fatalf("New(%g): want ErrBadEpsilon, got %v", tc.eps, err)
			}
		})
	}
}

// TestComparator_Compare covers the three-way contract including the
// near-equal band and infinite values.
func TestComparator_Compare(t *testing.T) {
	cmp, err := tolerance.New(1e-9)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	inf := math.Inf(1)

	cases := []struct {
		name string
		a, b float64
		want int
	}{
		{"exact-equal", 1.5, 1.5, 0},
		{"within-eps-above", 1.0 + 5e-10, 1.0, 0},
		{"within-eps-below", 1.0 - 5e-10, 1.0, 0},
		{"near-eps-inside", 1.0 + 9e-10, 1.0, 0},
		{"strictly-less", 1.0, 2.0, -1},
		{"strictly-greater", 2.0, 1.0, 1},
		{"just-outside-eps", 1.0 + 3e-9, 1.0, 1},
		{"both-infinite", inf, inf, 0},
		{"finite-vs-inf", 1e300, inf, -1},
		{"inf-vs-finite", inf, 1e300, 1},
		{"negatives", -2.0, -1.0, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cmp.Compare(tc.a, tc.b); got != tc.want {
				t.Fatalf("Compare(%g,%g)=%d want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

// TestComparator_Predicates checks Less/LessOrEqual/Eq/Min consistency with
// Compare on a representative grid.
func TestComparator_Predicates(t *testing.T) {
	cmp := tolerance.Default()

	// Near-equal values: not Less, but LessOrEqual and Eq.
	a, b := 1.0, 1.0+2e-10
	if cmp.Less(a, b) {
		t.Fatalf("Less(%g,%g) must be false within eps", a, b)
	}
	if !cmp.LessOrEqual(a, b) {
		t.Fatalf("LessOrEqual(%g,%g) must be true within eps", a, b)
	}
	if !cmp.Eq(a, b) {
		t.Fatalf("Eq(%g,%g) must be true within eps", a, b)
	}

	// Clear separation.
	if !cmp.Less(1.0, 2.0) {
		t.Fatal("Less(1,2) must be true")
	}
	if cmp.Less(2.0, 1.0) {
		t.Fatal("Less(2,1) must be false")
	}

	// Min picks the smaller value; first argument wins ties.
	if got := cmp.Min(3.0, 4.0); got != 3.0 {
		t.Fatalf("Min(3,4)=%g want 3", got)
	}
	if got := cmp.Min(4.0, 3.0); got != 3.0 {
		t.Fatalf("Min(4,3)=%g want 3", got)
	}
	if got := cmp.Min(a, b); got != a {
		t.Fatalf("Min near-equal must return the first argument; got %g", got)
	}
}

// TestComparator_ZeroValueExact documents that the zero value compares
// exactly (no tolerance band).
func TestComparator_ZeroValueExact(t *testing.T) {
	var cmp tolerance.Comparator

	if cmp.Eq(1.0, 1.0+1e-15) {
		t.Fatal("zero-value comparator must not tolerate any difference")
	}
	if !cmp.Eq(1.0, 1.0) {
		t.Fatal("zero-value comparator must still see exact equality")
	}
}
