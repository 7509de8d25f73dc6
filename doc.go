// Package lvlpath is your in-memory toolkit for one question in every shape
// it comes: what is the best route through a weighted graph?
//
// 🚀 What is lvlpath?
//
//	A modern, deterministic shortest-path engine family sharing one graph
//	core and one set of search primitives:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Tolerance: epsilon-aware float64 comparison for stable relaxations
//		• Frontier: addressable min-priority queues (binary & pairing heaps)
//		• sssp: Dijkstra, Bellman-Ford (negative-cycle detection), unweighted
//		  BFS hop trees, point-to-point Between, batched ManySources
//		• astar: goal-directed A* with consistent or inconsistent heuristics
//		• bidir: bidirectional Dijkstra meeting in the middle
//		• deltastep: parallel Δ-stepping over a shared worker pool
//		• kdisjoint: k edge-disjoint routes (Suurballe / Bhandari)
//
// ✨ Why choose lvlpath?
//
//   - Deterministic – same graph, same options, same answer, every run
//   - Rock-solid guarantees – R/W locks on the core, invariants in-code
//   - Honest errors – package sentinels, errors.Is-friendly, no panics
//   - Tunable – functional options: epsilon, frontier, caps, parallelism
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/      — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	tolerance/ — the epsilon comparator every engine measures with
//	frontier/  — addressable priority queues driving best-first search
//	route/     — Path and Tree result types shared by all engines
//	sssp/      — single-source engines: Dijkstra, Bellman-Ford, BFS & friends
//	astar/     — heuristic-guided point-to-point search
//	bidir/     — two-frontier point-to-point search
//	deltastep/ — bucketed parallel single-source engine
//	kdisjoint/ — failure-independent route sets
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	four vertices, four unit edges: Dijkstra from A reaches D in two hops
//	through either corner, and every engine here agrees on the distance.
//
// Dive into the per-package docs for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/lvlpath
package lvlpath
