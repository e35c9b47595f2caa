package astar

// openItem is a queued node with its insertion sequence and heap position.
type openItem struct {
	node  Node
	seq   uint64 // insertion order, breaks ties between equal f
	index int    // position in the heap, -1 once popped or removed
}

// openPQ is a min-heap of *openItem ordered by (f, seq) ascending.
// Popping it yields exactly the front of an f-sorted list in which new
// entries are inserted after existing entries of equal f.
type openPQ []*openItem

// Len returns the number of items in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less orders by f, then by insertion sequence.
func (pq openPQ) Less(i, j int) bool {
	fi, fj := pq[i].node.F(), pq[j].node.F()
	if fi != fj {
		return fi < fj
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements and keeps their indices current.
func (pq openPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x, which must be an *openItem. Called by heap.Push.
func (pq *openPQ) Push(x interface{}) {
	item := x.(*openItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

// Pop removes and returns the last element. Called by heap.Pop and heap.Remove.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}
