package crucible

import (
	"container/heap"
)

// frontierItem is a pending state with its lower-bound total cost and the
// insertion sequence number used to break ties.
type frontierItem struct {
	bound int64
	seq   uint64
	state *State
}

// frontierPQ is a min-heap ordered by (bound, seq).
type frontierPQ []frontierItem

// Len returns the number of items in the heap.
func (pq frontierPQ) Len() int { return len(pq) }

// Less orders by bound, then by insertion order.
func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].bound != pq[j].bound {
		return pq[i].bound < pq[j].bound
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type frontierItem.
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = frontierItem{}
	*pq = old[:n-1]

	return item
}

// frontier is the stable priority queue of pending states. The bound of a
// state is its accumulated cost plus the Manhattan distance to target,
// which never overestimates because every cell costs at least minCost.
type frontier struct {
	pq      frontierPQ
	target  Position
	minCost int64
	seq     uint64
}

func newFrontier(target Position, minCost int) *frontier {
	return &frontier{
		pq:      make(frontierPQ, 0, 64),
		target:  target,
		minCost: int64(minCost),
	}
}

// bound returns the admissible lower bound on the total cost through s.
func (f *frontier) bound(s *State) int64 {
	return s.Cost + f.minCost*s.Pos.Manhattan(f.target)
}

// push enqueues s and returns its bound.
func (f *frontier) push(s *State) int64 {
	b := f.bound(s)
	heap.Push(&f.pq, frontierItem{bound: b, seq: f.seq, state: s})
	f.seq++

	return b
}

// pop removes the state with the lowest bound, oldest first on ties.
// The caller guarantees Len() > 0.
func (f *frontier) pop() (int64, *State) {
	item := heap.Pop(&f.pq).(frontierItem)

	return item.bound, item.state
}

// Len returns the number of pending states.
func (f *frontier) Len() int { return f.pq.Len() }
