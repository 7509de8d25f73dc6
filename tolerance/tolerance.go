package tolerance

import (
	"errors"
	"math"
)

// DefaultEpsilon is the tolerance used by Default and by every engine that
// is not given an explicit epsilon option.
const DefaultEpsilon = 1e-9

// ErrBadEpsilon is returned by New when epsilon is zero, negative, NaN or ±Inf.
var ErrBadEpsilon = errors.New("tolerance: epsilon must be a positive finite number")

// Comparator compares float64 values under an epsilon tolerance.
//
// The zero value compares exactly (ε = 0); prefer Default() or New(eps) so
// accumulated floating-point noise does not flip relaxation decisions.
// Comparator is immutable and safe to copy and share across goroutines.
type Comparator struct {
	eps float64
}

// New returns a Comparator with the given epsilon.
// Epsilon must be a positive finite number; otherwise ErrBadEpsilon.
func New(eps float64) (Comparator, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return Comparator{}, ErrBadEpsilon
	}

	return Comparator{eps: eps}, nil
}

// Default returns a Comparator with DefaultEpsilon.
func Default() Comparator {
	return Comparator{eps: DefaultEpsilon}
}

// Epsilon returns the tolerance the Comparator was built with.
func (c Comparator) Epsilon() float64 { return c.eps }

// Compare returns -1 if a < b−ε, +1 if a > b+ε, and 0 otherwise.
//
// The exact-equality fast path also makes two +Inf (or two −Inf) values
// compare equal, which |a−b| alone cannot (Inf−Inf is NaN).
func (c Comparator) Compare(a, b float64) int {
	if a == b {
		return 0
	}
	if math.Abs(a-b) <= c.eps {
		return 0
	}
	if a < b {
		return -1
	}

	return 1
}

// Eq reports whether a and b are equal within the tolerance.
func (c Comparator) Eq(a, b float64) bool { return c.Compare(a, b) == 0 }

// Less reports whether a is strictly smaller than b, i.e. a < b−ε.
// Relaxation loops use Less as the improvement test: an update that is not
// strictly smaller is dropped, which guarantees termination.
func (c Comparator) Less(a, b float64) bool { return c.Compare(a, b) < 0 }

// LessOrEqual reports whether a is smaller than or equal to b under the
// tolerance, i.e. a ≤ b+ε.
func (c Comparator) LessOrEqual(a, b float64) bool { return c.Compare(a, b) <= 0 }

// Min returns the smaller of a and b under the tolerance; a wins ties.
func (c Comparator) Min(a, b float64) float64 {
	if c.Compare(a, b) <= 0 {
		return a
	}

	return b
}
