package sssp

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/route"
)

// ManySources computes one Dijkstra tree per source, concurrently, and
// returns them keyed by source ID. The graph is shared read-only across the
// runs; every run owns its dense state, so the only coordination point is the
// result map.
//
// Concurrency is bounded by WithParallelism (default runtime.NumCPU()). The
// first failing run cancels the context the sibling runs observe, no further
// runs are launched, and the first error is returned wrapped with its source
// ID. Duplicate source IDs are computed once.
//
// An empty (or all-duplicate-free empty) source list is a no-op: an empty map
// and a nil error.
//
// Options honored: everything Dijkstra honors, plus WithParallelism. A
// Source option is ignored; the sources slice is authoritative.
//
// Complexity: O(S/P) Dijkstra runs wall-clock, S = len(sources),
// P = parallelism.
func ManySources(g *core.Graph, sources []string, opts ...Option) (map[string]*route.Tree, error) {
	// 1) Surface option violations before spawning anything.
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Dedupe sources, preserving first-seen order.
	uniq := make([]string, 0, len(sources))
	seen := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		uniq = append(uniq, s)
	}
	if len(uniq) == 0 {
		return map[string]*route.Tree{}, nil
	}

	limit := cfg.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	// 3) Fan out under the parallelism bound; the group context cancels the
	//    in-flight runs on first failure.
	eg, ctx := errgroup.WithContext(cfg.Ctx)
	eg.SetLimit(limit)

	var mu sync.Mutex
	out := make(map[string]*route.Tree, len(uniq))
	for _, src := range uniq {
		if ctx.Err() != nil {
			break // a sibling already failed; stop launching
		}
		src := src // per-iteration copy for the closure (go < 1.22)
		eg.Go(func() error {
			runOpts := make([]Option, 0, len(opts)+2)
			runOpts = append(runOpts, opts...)
			runOpts = append(runOpts, Source(src), WithContext(ctx))
			tree, runErr := Dijkstra(g, runOpts...)
			if runErr != nil {
				return fmt.Errorf("sssp: source %q: %w", src, runErr)
			}
			mu.Lock()
			out[src] = tree
			mu.Unlock()

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
