package frontier

// pairingNode is one element of the pairing heap. prev points at the parent
// when the node is a leftmost child, and at the left sibling otherwise; that
// single back-pointer is enough to cut a node out in O(1) for DecreaseKey.
type pairingNode struct {
	item    Item
	child   *pairingNode // leftmost child
	sibling *pairingNode // next sibling to the right
	prev    *pairingNode // parent or left sibling
}

// pairingHeap is a pointer-based pairing heap with a vertex → node arena.
// Insert and DecreaseKey are O(1) (amortized for DecreaseKey); DeleteMin
// pays with the two-pass pair merge.
type pairingHeap struct {
	root    *pairingNode
	nodes   []*pairingNode // vertex -> node, nil when not open
	size    int
	scratch []*pairingNode // reused by mergePairs
}

// NewPairingHeap returns a pairing-heap Frontier. Compared to the binary
// heap it trades slower DeleteMin for near-free Insert and DecreaseKey; on
// decrease-key-heavy dense graphs that trade can win. Same contract.
func NewPairingHeap(capacityHint int) Frontier {
	if capacityHint < 0 {
		capacityHint = 0
	}

	return &pairingHeap{nodes: make([]*pairingNode, capacityHint)}
}

func (h *pairingHeap) ensure(vertex int) {
	for len(h.nodes) <= vertex {
		h.nodes = append(h.nodes, nil)
	}
}

// itemLess is the total order shared with the binary heap: key ascending,
// vertex ascending on ties. A total order makes DeleteMin deterministic.
func itemLess(a, b Item) bool {
	if a.Key != b.Key {
		return a.Key < b.Key
	}

	return a.Vertex < b.Vertex
}

// meld links two heap roots; the larger one becomes the leftmost child of
// the smaller. Both arguments must be detached (nil prev and sibling).
func meld(a, b *pairingNode) *pairingNode {
	if itemLess(b.item, a.item) {
		a, b = b, a
	}
	b.prev = a
	b.sibling = a.child
	if a.child != nil {
		a.child.prev = b
	}
	a.child = b

	return a
}

// Insert opens vertex with the given key.
// Errors: ErrBadVertex, ErrDuplicateVertex.
func (h *pairingHeap) Insert(vertex int, key float64) error {
	if vertex < 0 {
		return ErrBadVertex
	}
	h.ensure(vertex)
	if h.nodes[vertex] != nil {
		return ErrDuplicateVertex
	}

	n := &pairingNode{item: Item{Vertex: vertex, Key: key}}
	h.nodes[vertex] = n
	if h.root == nil {
		h.root = n
	} else {
		h.root = meld(h.root, n)
	}
	h.size++

	return nil
}

// DecreaseKey lowers the key of an open vertex by cutting its subtree and
// melding it back at the root.
// Errors: ErrBadVertex, ErrNotOpen, ErrKeyIncrease.
func (h *pairingHeap) DecreaseKey(vertex int, key float64) error {
	if vertex < 0 {
		return ErrBadVertex
	}
	if vertex >= len(h.nodes) || h.nodes[vertex] == nil {
		return ErrNotOpen
	}

	n := h.nodes[vertex]
	if key > n.item.Key {
		return ErrKeyIncrease
	}
	n.item.Key = key
	if n == h.root {
		return nil
	}

	// Cut n out of its sibling list.
	if n.prev.child == n {
		n.prev.child = n.sibling
	} else {
		n.prev.sibling = n.sibling
	}
	if n.sibling != nil {
		n.sibling.prev = n.prev
	}
	n.prev, n.sibling = nil, nil

	h.root = meld(h.root, n)

	return nil
}

// mergePairs performs the standard two-pass merge over a child list:
// left-to-right melding of adjacent pairs, then right-to-left accumulation.
func (h *pairingHeap) mergePairs(first *pairingNode) *pairingNode {
	if first == nil {
		return nil
	}

	h.scratch = h.scratch[:0]
	for first != nil {
		a := first
		b := a.sibling
		if b != nil {
			first = b.sibling
		} else {
			first = nil
		}
		a.prev, a.sibling = nil, nil
		if b != nil {
			b.prev, b.sibling = nil, nil
			a = meld(a, b)
		}
		h.scratch = append(h.scratch, a)
	}

	root := h.scratch[len(h.scratch)-1]
	for i := len(h.scratch) - 2; i >= 0; i-- {
		root = meld(h.scratch[i], root)
	}

	return root
}

// DeleteMin removes and returns the smallest open item.
// Errors: ErrEmptyFrontier, ErrCorrupt.
func (h *pairingHeap) DeleteMin() (Item, error) {
	if h.root == nil {
		return Item{}, ErrEmptyFrontier
	}

	min := h.root.item
	if h.nodes[min.Vertex] != h.root {
		return Item{}, ErrCorrupt
	}

	h.nodes[min.Vertex] = nil
	h.root = h.mergePairs(h.root.child)
	h.size--

	return min, nil
}

// Min returns the smallest open item without removing it.
// Errors: ErrEmptyFrontier.
func (h *pairingHeap) Min() (Item, error) {
	if h.root == nil {
		return Item{}, ErrEmptyFrontier
	}

	return h.root.item, nil
}

// Contains reports whether vertex is open.
func (h *pairingHeap) Contains(vertex int) bool {
	return vertex >= 0 && vertex < len(h.nodes) && h.nodes[vertex] != nil
}

// Len returns the number of open vertices.
func (h *pairingHeap) Len() int { return h.size }

// IsEmpty reports whether no vertex is open.
func (h *pairingHeap) IsEmpty() bool { return h.root == nil }

// Clear drops all open vertices but keeps the arena capacity for reuse.
func (h *pairingHeap) Clear() {
	for i := range h.nodes {
		h.nodes[i] = nil
	}
	h.root = nil
	h.size = 0
}
