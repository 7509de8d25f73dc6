// Package deltastep provides Δ-stepping, the bucket-based parallel
// single-source shortest-path algorithm, over a weighted core.Graph with
// non-negative edge weights.
//
// Dijkstra settles one vertex at a time because it insists on exact
// ascending distance order. Δ-stepping relaxes that: tentative distances are
// grouped into buckets of width delta, and every vertex in the current
// bucket is expanded together. Edges are partitioned once per run into
// light (weight ≤ delta) and heavy (weight > delta) sets. The current
// bucket is drained in sub-rounds that relax only light edges (light
// relaxations may refill the same bucket, hence the inner loop); once it
// stabilizes, the heavy edges of everything it released fire exactly once.
// Heavy targets always land in later buckets, so the bucket cursor only moves
// forward and the cyclic array of ⌈maxWeight/delta⌉+1 buckets never wraps
// onto live entries.
//
// # Concurrency
//
// Each relaxation batch is split into at most `parallelism` tasks, submitted
// to an ants goroutine pool and awaited on a sync.WaitGroup barrier before
// the next phase starts (bulk-synchronous: no task outlives its phase). The
// only shared mutation point is the per-vertex relax, which locks that
// vertex's mutex around the dist/pred/bucket-membership triple, so a vertex
// is never lost from all buckets or present in two. With WithLoadBalancing
// the batch is split by outgoing-arc count instead of vertex count, which
// helps on skewed degree distributions.
//
// The Engine may serve many Paths calls, concurrently if desired: every
// call builds its own run state and only shares the pool. Close releases
// the pool, unless it was injected via WithPool; then its lifecycle belongs
// to the caller.
//
// # Determinism
//
// Final distances always equal Dijkstra's, for every delta and parallelism
// combination. The predecessor tree is a valid shortest-path tree but, when
// a vertex has several equal-cost parents, which one the tree records
// depends on relaxation timing; weights returned by PathTo never vary, the
// vertex sequences may.
//
// # Choosing delta
//
// Small delta approaches Dijkstra (many tiny buckets, little parallelism);
// large delta approaches Bellman-Ford (few huge buckets, much re-relaxation).
// When WithDelta is not given the engine uses maxEdgeWeight/maxOutDegree,
// the standard heuristic, falling back to 1 on degenerate graphs.
//
// Error catalogue: ErrNilGraph, ErrUnweightedGraph, ErrNegativeWeight,
// ErrEmptySource, ErrVertexNotFound, ErrBadDelta, ErrBadParallelism,
// ErrClosed, ErrOptionViolation.
package deltastep
