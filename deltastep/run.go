package deltastep

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/route"
)

// noBucket marks a vertex currently queued in no bucket.
const noBucket = -1

// arc is one outgoing adjacency entry: dense target index, weight and the
// originating edge for predecessor bookkeeping.
type arc struct {
	to int
	w  float64
	e  *core.Edge
}

// arena assigns every vertex ID a dense index in [0,V), in sorted-ID order.
type arena struct {
	ids []string       // index → vertex ID
	at  map[string]int // vertex ID → index
}

func newArena(g *core.Graph) *arena {
	ids := g.Vertices()
	at := make(map[string]int, len(ids))
	for i, id := range ids {
		at[id] = i
	}

	return &arena{ids: ids, at: at}
}

func (a *arena) index(id string) int {
	i, ok := a.at[id]
	if !ok {
		return -1
	}

	return i
}

func (a *arena) size() int { return len(a.ids) }

// bucket is one slot of the cyclic bucket array. Membership mutates under
// the bucket mutex; a vertex mutex, when needed, is always acquired first.
type bucket struct {
	mu  sync.Mutex
	set map[int]struct{}
}

func (b *bucket) add(v int) {
	b.mu.Lock()
	b.set[v] = struct{}{}
	b.mu.Unlock()
}

func (b *bucket) remove(v int) {
	b.mu.Lock()
	delete(b.set, v)
	b.mu.Unlock()
}

func (b *bucket) size() int {
	b.mu.Lock()
	n := len(b.set)
	b.mu.Unlock()

	return n
}

// drain empties the bucket and returns its members in ascending index order;
// sorting keeps batch splitting reproducible.
func (b *bucket) drain() []int {
	b.mu.Lock()
	out := make([]int, 0, len(b.set))
	for v := range b.set {
		out = append(out, v)
	}
	clear(b.set)
	b.mu.Unlock()
	sort.Ints(out)

	return out
}

// runState is the mutable state of one Paths call.
type runState struct {
	eng      *Engine
	arena    *arena
	delta    float64
	nb       int            // cyclic bucket count, ⌈maxWeight/delta⌉+1
	light    [][]arc        // index → out-arcs with weight ≤ delta
	heavy    [][]arc        // index → out-arcs with weight > delta
	dist     []float64      // index → best-known distance, vertex-locked
	pred     []*core.Edge   // index → edge that last improved dist, vertex-locked
	bucketOf []int          // index → cyclic slot holding the vertex, or noBucket
	mu       []sync.Mutex   // index → lock over that vertex's dist/pred/bucketOf
	buckets  []*bucket
	src      int
}

// newRunState snapshots the graph into dense adjacency, resolves delta (the
// automatic heuristic reads maxEdgeWeight/maxOutDegree from this snapshot)
// and partitions every arc into the light or heavy set.
func newRunState(e *Engine, source string) (*runState, error) {
	a := newArena(e.g)
	n := a.size()

	out := make([][]arc, n)
	maxW := 0.0
	maxDeg := 0
	for u := 0; u < n; u++ {
		edges, err := e.g.OutgoingEdgesOf(a.ids[u])
		if err != nil {
			return nil, fmt.Errorf("deltastep: outgoing edges of %q: %w", a.ids[u], err)
		}
		arcs := make([]arc, 0, len(edges))
		for _, ed := range edges {
			v := a.index(ed.Opposite(a.ids[u]))
			// A self-loop cannot improve anything.
			if v == u {
				continue
			}
			arcs = append(arcs, arc{to: v, w: ed.Weight, e: ed})
			if ed.Weight > maxW {
				maxW = ed.Weight
			}
		}
		out[u] = arcs
		if len(arcs) > maxDeg {
			maxDeg = len(arcs)
		}
	}

	delta := e.cfg.Delta
	if delta == 0 {
		if maxDeg > 0 {
			delta = maxW / float64(maxDeg)
		}
		if delta <= 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
			delta = 1
		}
	}

	r := &runState{
		eng:      e,
		arena:    a,
		delta:    delta,
		nb:       int(math.Ceil(maxW/delta)) + 1,
		light:    make([][]arc, n),
		heavy:    make([][]arc, n),
		dist:     make([]float64, n),
		pred:     make([]*core.Edge, n),
		bucketOf: make([]int, n),
		mu:       make([]sync.Mutex, n),
		src:      a.index(source),
	}
	for u := 0; u < n; u++ {
		r.dist[u] = route.Unreachable
		r.bucketOf[u] = noBucket
		for _, ac := range out[u] {
			if ac.w <= delta {
				r.light[u] = append(r.light[u], ac)
			} else {
				r.heavy[u] = append(r.heavy[u], ac)
			}
		}
	}
	r.buckets = make([]*bucket, r.nb)
	for i := range r.buckets {
		r.buckets[i] = &bucket{set: make(map[int]struct{})}
	}

	return r, nil
}

// run is the coordinator loop: advance the cursor to the next populated
// bucket, stabilize it, fire its heavy arcs, repeat until every bucket is
// empty. Heavy targets always land ahead of the cursor, so it only moves
// forward.
func (r *runState) run() error {
	// 1) Seed the source at distance zero into bucket 0.
	r.dist[r.src] = 0
	r.bucketOf[r.src] = 0
	r.buckets[0].add(r.src)

	// 2) Walk the buckets in ascending distance band order.
	k := 0
	for {
		next, ok := r.nextBucket(k)
		if !ok {
			break
		}
		k = next
		if err := r.processBucket(k); err != nil {
			return err
		}
		k++
	}

	return nil
}

// nextBucket scans one full cycle ahead of `from` for the first populated
// slot. Every queued tentative distance lies within maxWeight of the
// cursor's band, so one cycle always suffices.
func (r *runState) nextBucket(from int) (int, bool) {
	for off := 0; off < r.nb; off++ {
		if r.buckets[(from+off)%r.nb].size() > 0 {
			return from + off, true
		}
	}

	return 0, false
}

// processBucket runs the two phases of one bucket: light sub-rounds until
// the bucket stops refilling, then one heavy pass over everything it
// released.
func (r *runState) processBucket(k int) error {
	b := r.buckets[k%r.nb]
	drained := make(map[int]struct{})

	// Phase 1: relax light arcs only; re-insertions may refill this same
	// bucket, hence the inner loop.
	rounds := 0
	for {
		batch := b.drain()
		if len(batch) == 0 {
			break
		}
		rounds++
		var v int
		for _, v = range batch {
			r.mu[v].Lock()
			r.bucketOf[v] = noBucket
			r.mu[v].Unlock()
			drained[v] = struct{}{}
		}
		if err := r.parallelRelax(batch, r.light); err != nil {
			return err
		}
	}

	// Phase 2: heavy arcs of every released vertex fire exactly once; their
	// targets land in strictly later buckets.
	released := make([]int, 0, len(drained))
	for v := range drained {
		released = append(released, v)
	}
	sort.Ints(released)
	if err := r.parallelRelax(released, r.heavy); err != nil {
		return err
	}

	r.eng.log.Debug("bucket processed",
		slog.Int("bucket", k),
		slog.Int("released", len(released)),
		slog.Int("lightRounds", rounds),
	)

	return nil
}

// parallelRelax fans one batch out across the pool and waits on the phase
// barrier. Bulk-synchronous: no task outlives its phase.
func (r *runState) parallelRelax(batch []int, adj [][]arc) error {
	if len(batch) == 0 {
		return nil
	}
	chunks := r.split(batch, adj)
	if len(chunks) == 1 {
		// One chunk relaxes inline; the pool round-trip buys nothing.
		r.relaxChunk(chunks[0], adj)

		return nil
	}

	var (
		wg        sync.WaitGroup
		submitErr error
	)
	for _, chunk := range chunks {
		chunk := chunk // per-iteration copy for the closure (go < 1.22)
		wg.Add(1)
		err := r.eng.pool.Submit(func() {
			defer wg.Done()
			r.relaxChunk(chunk, adj)
		})
		if err != nil {
			wg.Done()
			submitErr = fmt.Errorf("deltastep: submitting relax task: %w", err)

			break
		}
	}
	wg.Wait()

	return submitErr
}

// split partitions the batch into at most Parallelism chunks: contiguous
// equal-vertex slices, or, with load balancing, slices carrying roughly
// equal outgoing-arc counts.
func (r *runState) split(batch []int, adj [][]arc) [][]int {
	p := r.eng.cfg.Parallelism
	if p > len(batch) {
		p = len(batch)
	}
	if p <= 1 {
		return [][]int{batch}
	}

	if !r.eng.cfg.LoadBalancing {
		per := (len(batch) + p - 1) / p
		chunks := make([][]int, 0, p)
		for i := 0; i < len(batch); i += per {
			end := i + per
			if end > len(batch) {
				end = len(batch)
			}
			chunks = append(chunks, batch[i:end])
		}

		return chunks
	}

	total := 0
	for _, u := range batch {
		total += len(adj[u])
	}
	if total == 0 {
		return [][]int{batch}
	}
	target := (total + p - 1) / p
	chunks := make([][]int, 0, p)
	start, load := 0, 0
	for i, u := range batch {
		load += len(adj[u])
		if load >= target && len(chunks) < p-1 {
			chunks = append(chunks, batch[start:i+1])
			start, load = i+1, 0
		}
	}
	if start < len(batch) {
		chunks = append(chunks, batch[start:])
	}

	return chunks
}

// relaxChunk is the worker body: relax every arc of every chunk vertex from
// that vertex's current distance.
func (r *runState) relaxChunk(chunk []int, adj [][]arc) {
	var (
		u  int
		ac arc
		du float64
	)
	for _, u = range chunk {
		du = r.distOf(u)
		for _, ac = range adj[u] {
			r.relax(ac.to, ac.e, du+ac.w)
		}
	}
}

// distOf reads a vertex's distance under its lock; a concurrent relax into
// u during the same phase must not tear the read.
func (r *runState) distOf(u int) float64 {
	r.mu[u].Lock()
	d := r.dist[u]
	r.mu[u].Unlock()

	return d
}

// relax is the sole mutation point. The vertex mutex spans the whole
// dist/pred/bucket-move triple, so a vertex is in exactly one bucket (or
// none) at every instant and never carries a distance from one bucket while
// queued in another.
func (r *runState) relax(v int, via *core.Edge, cand float64) {
	r.mu[v].Lock()
	defer r.mu[v].Unlock()

	if !r.eng.cmp.Less(cand, r.dist[v]) {
		return
	}
	r.dist[v] = cand
	r.pred[v] = via

	next := int(cand/r.delta) % r.nb
	if next == r.bucketOf[v] {
		return
	}
	if r.bucketOf[v] != noBucket {
		r.buckets[r.bucketOf[v]].remove(v)
	}
	r.buckets[next].add(v)
	r.bucketOf[v] = next
}

// assembleTree converts dense engine state back into the public tree form.
func (r *runState) assembleTree(source string) (*route.Tree, error) {
	dm := make(map[string]float64, r.arena.size())
	pm := make(map[string]*core.Edge, r.arena.size())
	for i, id := range r.arena.ids {
		dm[id] = r.dist[i]
		if r.pred[i] != nil {
			pm[id] = r.pred[i]
		}
	}
	tree, err := route.NewTree(r.eng.g, source, dm, pm)
	if err != nil {
		return nil, fmt.Errorf("deltastep: assembling tree: %w", err)
	}

	return tree, nil
}
