package pathing

import (
	"container/heap"

	"github.com/empireu/daleks-go/internal/model"
)

// pqItem is one entry in a priority queue ordered by an externally
// supplied priority (Dijkstra cost, or manhattan distance to a goal).
type pqItem struct {
	pos      model.Vector2D
	priority float64
}

// posHeap is a lazy-deletion binary min-heap: callers push new priorities
// for the same position without removing the old entry, and discard
// popped entries that are stale by comparing against a side-table of
// current best costs.
type posHeap []pqItem

func (h posHeap) Len() int            { return len(h) }
func (h posHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h posHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *posHeap) Push(x interface{}) { *h = append(*h, x.(pqItem)) }
func (h *posHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func newPosHeap() *posHeap {
	h := &posHeap{}
	heap.Init(h)
	return h
}

func (h *posHeap) push(pos model.Vector2D, priority float64) {
	heap.Push(h, pqItem{pos: pos, priority: priority})
}

func (h *posHeap) pop() (model.Vector2D, float64, bool) {
	if h.Len() == 0 {
		return model.Vector2D{}, 0, false
	}
	item := heap.Pop(h).(pqItem)
	return item.pos, item.priority, true
}
