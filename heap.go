package pathz

// compareNodes is the heap ordering policy: FCost ascending, ties broken by
// HCost ascending so nodes believed closer to the goal are expanded first.
// The tie-break reduces expanded-node count without affecting optimality.
// Reference identity short-circuits to equal.
func compareNodes[N Node[N]](a, b N) int {
	if a == b {
		return 0
	}
	switch {
	case a.FCost() < b.FCost():
		return -1
	case a.FCost() > b.FCost():
		return 1
	case a.HCost() < b.HCost():
		return -1
	case a.HCost() > b.HCost():
		return 1
	}
	return 0
}

// Heap is an array-backed binary min-heap over searchable nodes, ordered by
// compareNodes. It supports Push, Pop and Count only; there is no
// decrease-key. When a node's cost improves while it is already queued, the
// engine pushes a second copy; the stale copy is recognized at pop time by
// its ClosedVersion and discarded. This trades extra heap entries for zero
// bookkeeping (no node-to-slot index map).
type Heap[N Node[N]] struct {
	items []N
}

// NewHeap creates a heap with room for capacity entries before growing.
func NewHeap[N Node[N]](capacity int) *Heap[N] {
	return &Heap[N]{items: make([]N, 0, capacity)}
}

// Count returns the number of entries, stale duplicates included.
func (h *Heap[N]) Count() int { return len(h.items) }

// Push adds a node, duplicates allowed.
func (h *Heap[N]) Push(n N) {
	h.items = append(h.items, n)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the minimum entry. It reports false on an empty
// heap instead of panicking; reaching that state mid-search would mean the
// engine's loop invariant is broken, and a validated failure beats reading
// past the end of the backing array.
func (h *Heap[N]) Pop() (N, bool) {
	var zero N
	n := len(h.items)
	if n == 0 {
		return zero, false
	}
	top := h.items[0]
	h.items[0] = h.items[n-1]
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return top, true
}

func (h *Heap[N]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if compareNodes(h.items[i], h.items[parent]) >= 0 {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *Heap[N]) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && compareNodes(h.items[right], h.items[left]) < 0 {
			smallest = right
		}
		if compareNodes(h.items[smallest], h.items[i]) >= 0 {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
