// Package astar provides goal-directed shortest-path search over a weighted
// core.Graph. A* is Dijkstra with a compass: the frontier is ordered by
// f(v) = g(v) + h(v, target), where g is the best known distance from the
// source and h is a caller-supplied Heuristic estimating the remaining
// distance to the target. A good heuristic steers expansion toward the
// target and leaves most of the graph untouched; a zero heuristic degrades
// gracefully into plain Dijkstra.
//
// # Heuristic contract
//
// Correct results require an admissible heuristic: h never overestimates the
// true remaining distance. Admissible heuristics come in two grades:
//
//   - Consistent (monotone): h(u) ≤ w(u,v) + h(v) for every edge u→v. The
//     default mode assumes this; each vertex is expanded at most once in the
//     common case and the first path popped for the target is optimal.
//   - Inconsistent: admissible but not monotone. Declare it with
//     WithInconsistentHeuristic() and the engine adds the bidirectional
//     pathmax correction (BPMX): before expanding a vertex its cached h is
//     pulled up from incoming neighbors' cached estimates, and the lifted
//     value is propagated forward to successors during the expansion. The
//     correction bounds re-expansions to O(V²) where naive inconsistent A*
//     can go exponential.
//
// Either way the engine reopens a closed vertex whenever its g strictly
// improves, so an admissible-but-misdeclared heuristic costs time, not
// correctness. An inadmissible heuristic voids the optimality guarantee
// entirely: the search still terminates with a valid path, it just may not
// be the cheapest one.
//
// Heuristic values are computed once per vertex and cached for the rest of
// the run (BPMX may later raise, never re-evaluate, a cached entry), so an
// expensive estimate is paid at most V times.
//
// # Results
//
// FindPath returns a *route.Path, route.Trivial(source) when source ==
// target, and (nil, nil) when the frontier drains without reaching the
// target: no path is a legitimate answer on a disconnected graph, not an
// error.
//
// Determinism matches the sssp engines: dense arena in sorted-ID order,
// ascending edge-ID adjacency scans, frontier ties broken by ascending
// vertex index.
//
// Error catalogue: ErrNilGraph, ErrNilHeuristic, ErrUnweightedGraph,
// ErrVertexNotFound, ErrNegativeWeight, ErrOptionViolation.
package astar
