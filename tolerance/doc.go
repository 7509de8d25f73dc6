// Package tolerance centralizes approximate float64 comparison for the
// shortest-path engines.
//
// # What
//
// Edge weights and accumulated path distances are float64 values; summing
// them in different orders produces results that differ in the last bits.
// Comparing such sums with == or < directly makes relaxation decisions
// depend on traversal order. Every distance comparison in lvlpath therefore
// routes through a Comparator, which treats two values within a configurable
// epsilon of each other as equal.
//
// # Semantics
//
// For a Comparator with epsilon ε:
//
//	Compare(a,b) == 0   ⇔  |a−b| ≤ ε   (a and b are "equal")
//	Compare(a,b) == -1  ⇔  a < b − ε   (a is strictly smaller)
//	Compare(a,b) == +1  ⇔  a > b + ε   (a is strictly larger)
//
// Less / LessOrEqual / Eq are predicates over Compare; Min picks the smaller
// value under the same relation (a wins ties). +Inf is a first-class value:
// two infinite distances are equal, and any finite value is strictly smaller
// than +Inf.
//
// # Usage
//
//	cmp := tolerance.Default()              // ε = 1e-9
//	cmp, err := tolerance.New(1e-6)         // custom ε, validated
//	if cmp.Less(cand, best) { ... }         // strict improvement test
//
// A strict improvement under Less is what keeps the relaxation loops of
// Dijkstra, Bellman-Ford and A* terminating: an update within ε is "equal"
// and is not applied, so no infinite re-relaxation on numerically noisy
// graphs.
//
// Construction errors:
//
//	ErrBadEpsilon – epsilon is not a positive finite number.
package tolerance
