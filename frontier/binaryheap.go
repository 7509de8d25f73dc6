package frontier

// notInHeap marks a vertex that currently has no slot in the item array.
const notInHeap = -1

// binaryHeap is an array-backed 2-ary min-heap plus a position arena mapping
// vertex index → slot. The arena is what makes DecreaseKey addressable:
// locating a vertex is O(1), re-heapifying is O(log n).
//
// Invariants:
//   - items is heap-ordered under less().
//   - pos[v] == i  ⇔  items[i].Vertex == v, for every open v.
//   - pos[v] == notInHeap for every non-open v.
type binaryHeap struct {
	items []Item
	pos   []int
}

// NewBinaryHeap returns the default Frontier implementation: an array-backed
// binary heap with O(log n) Insert, DecreaseKey and DeleteMin.
// capacityHint pre-sizes the storage for that many vertices; the heap grows
// beyond the hint transparently.
func NewBinaryHeap(capacityHint int) Frontier {
	if capacityHint < 0 {
		capacityHint = 0
	}

	h := &binaryHeap{
		items: make([]Item, 0, capacityHint),
		pos:   make([]int, capacityHint),
	}
	for i := range h.pos {
		h.pos[i] = notInHeap
	}

	return h
}

// ensure grows the position arena to cover vertex.
func (h *binaryHeap) ensure(vertex int) {
	for len(h.pos) <= vertex {
		h.pos = append(h.pos, notInHeap)
	}
}

// less orders by key ascending, then vertex ascending. The vertex tie-break
// keeps DeleteMin deterministic across runs.
func (h *binaryHeap) less(i, j int) bool {
	if h.items[i].Key != h.items[j].Key {
		return h.items[i].Key < h.items[j].Key
	}

	return h.items[i].Vertex < h.items[j].Vertex
}

// swap exchanges two slots and updates the position arena.
func (h *binaryHeap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].Vertex] = i
	h.pos[h.items[j].Vertex] = j
}

func (h *binaryHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *binaryHeap) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		small := left
		if right := left + 1; right < n && h.less(right, left) {
			small = right
		}
		if !h.less(small, i) {
			return
		}
		h.swap(i, small)
		i = small
	}
}

// Insert opens vertex with the given key.
// Errors: ErrBadVertex, ErrDuplicateVertex.
func (h *binaryHeap) Insert(vertex int, key float64) error {
	if vertex < 0 {
		return ErrBadVertex
	}
	h.ensure(vertex)
	if h.pos[vertex] != notInHeap {
		return ErrDuplicateVertex
	}

	h.items = append(h.items, Item{Vertex: vertex, Key: key})
	i := len(h.items) - 1
	h.pos[vertex] = i
	h.siftUp(i)

	return nil
}

// DecreaseKey lowers the key of an open vertex.
// Errors: ErrBadVertex, ErrNotOpen, ErrKeyIncrease.
func (h *binaryHeap) DecreaseKey(vertex int, key float64) error {
	if vertex < 0 {
		return ErrBadVertex
	}
	if vertex >= len(h.pos) || h.pos[vertex] == notInHeap {
		return ErrNotOpen
	}

	i := h.pos[vertex]
	if key > h.items[i].Key {
		return ErrKeyIncrease
	}
	h.items[i].Key = key
	h.siftUp(i)

	return nil
}

// DeleteMin removes and returns the smallest open item.
// Errors: ErrEmptyFrontier, ErrCorrupt.
func (h *binaryHeap) DeleteMin() (Item, error) {
	if len(h.items) == 0 {
		return Item{}, ErrEmptyFrontier
	}

	root := h.items[0]
	if h.pos[root.Vertex] != 0 {
		// The arena disagrees with the heap; refuse to return garbage.
		return Item{}, ErrCorrupt
	}

	last := len(h.items) - 1
	h.swap(0, last)
	h.items = h.items[:last]
	h.pos[root.Vertex] = notInHeap
	if last > 0 {
		h.siftDown(0)
	}

	return root, nil
}

// Min returns the smallest open item without removing it.
// Errors: ErrEmptyFrontier.
func (h *binaryHeap) Min() (Item, error) {
	if len(h.items) == 0 {
		return Item{}, ErrEmptyFrontier
	}

	return h.items[0], nil
}

// Contains reports whether vertex is open.
func (h *binaryHeap) Contains(vertex int) bool {
	return vertex >= 0 && vertex < len(h.pos) && h.pos[vertex] != notInHeap
}

// Len returns the number of open vertices.
func (h *binaryHeap) Len() int { return len(h.items) }

// IsEmpty reports whether no vertex is open.
func (h *binaryHeap) IsEmpty() bool { return len(h.items) == 0 }

// Clear drops all open vertices but keeps allocated capacity for reuse.
func (h *binaryHeap) Clear() {
	for _, it := range h.items {
		h.pos[it.Vertex] = notInHeap
	}
	h.items = h.items[:0]
}
