package search

import "github.com/katalvlaran/gridpath/grid"

// openItem is an A* open-set entry. seq records first insertion and is
// kept on re-prioritisation so ties stay stable.
type openItem struct {
	at     grid.Coord
	cost   int  // TotalCost at the time of the last push or fix
	seq    int  // insertion order
	index  int  // position in openQueue, -1 once popped
	closed bool // expanded
}

// openQueue is a min-heap of *openItem ordered by (cost, seq).
// Items track their own index so heap.Fix can re-prioritise them.
type openQueue []*openItem

// Len returns the number of items in the heap.
func (pq openQueue) Len() int { return len(pq) }

// Less orders by cost, then by insertion order.
func (pq openQueue) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements and their recorded indexes.
func (pq openQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push appends x, which must be an *openItem.
func (pq *openQueue) Push(x interface{}) {
	it := x.(*openItem)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

// Pop removes and returns the last element.
func (pq *openQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[:n-1]

	return it
}
