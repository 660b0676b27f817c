// SPDX-License-Identifier: MIT

package frontier

import (
	"container/heap"
	"strings"

	"github.com/katalvlaran/shortpath/core"
)

// item is a heap slot that knows its own index, so heap.Fix can restore
// order after a decrease without scanning.
type item struct {
	entry Entry
	index int // position in indexedHeap, -1 once popped
}

// indexedHeap implements heap.Interface and keeps item.index current.
type indexedHeap []*item

func (h indexedHeap) Len() int           { return len(h) }
func (h indexedHeap) Less(i, j int) bool { return h[i].entry.Priority < h[j].entry.Priority }
func (h indexedHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *indexedHeap) Push(x any) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *indexedHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]

	return it
}

// IndexedQueue is a Frontier whose node→slot map gives O(1) Contains and
// O(log n) DecreaseOrUpdate.
//
// Duplicate pushes of one node are all kept; DecreaseOrUpdate acts on the
// most recently pushed live entry for that node.
type IndexedQueue struct {
	h     indexedHeap
	slots map[core.NodeKey][]*item
}

// Compile-time interface check.
var _ Frontier = (*IndexedQueue)(nil)

// NewIndexedQueue returns an empty queue with room for capacity entries.
func NewIndexedQueue(capacity int) *IndexedQueue {
	return &IndexedQueue{
		h:     make(indexedHeap, 0, capacity),
		slots: make(map[core.NodeKey][]*item, capacity),
	}
}

// Push inserts e in O(log n).
func (q *IndexedQueue) Push(e Entry) {
	if q.slots == nil {
		q.slots = make(map[core.NodeKey][]*item)
	}
	it := &item{entry: e}
	heap.Push(&q.h, it)
	q.slots[e.Node] = append(q.slots[e.Node], it)
}

// PopMin removes and returns the minimum entry in O(log n).
func (q *IndexedQueue) PopMin() (Entry, error) {
	if len(q.h) == 0 {
		return Entry{}, ErrEmpty
	}

	it := heap.Pop(&q.h).(*item)
	q.forget(it)

	return it.entry, nil
}

// Peek returns the minimum entry in O(1).
func (q *IndexedQueue) Peek() (Entry, error) {
	if len(q.h) == 0 {
		return Entry{}, ErrEmpty
	}

	return q.h[0].entry, nil
}

// Contains reports whether node has a live entry. O(1).
func (q *IndexedQueue) Contains(node core.NodeKey) bool {
	return len(q.slots[node]) > 0
}

// DecreaseOrUpdate lowers node's priority when newPriority is strictly
// smaller and sifts the slot into place. O(log n).
func (q *IndexedQueue) DecreaseOrUpdate(node core.NodeKey, newPriority int64) bool {
	live := q.slots[node]
	if len(live) == 0 {
		return false
	}

	it := live[len(live)-1]
	if newPriority >= it.entry.Priority {
		return false
	}

	it.entry.Priority = newPriority
	heap.Fix(&q.h, it.index)

	return true
}

// IsEmpty reports whether the queue holds no entries.
func (q *IndexedQueue) IsEmpty() bool { return len(q.h) == 0 }

// Len returns the number of live entries.
func (q *IndexedQueue) Len() int { return len(q.h) }

// String renders entries in storage (heap array) order.
func (q *IndexedQueue) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, it := range q.h {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(it.entry.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

// forget drops a popped item from its node's slot list.
func (q *IndexedQueue) forget(it *item) {
	live := q.slots[it.entry.Node]
	for i, other := range live {
		if other == it {
			live = append(live[:i], live[i+1:]...)
			break
		}
	}
	if len(live) == 0 {
		delete(q.slots, it.entry.Node)
		return
	}
	q.slots[it.entry.Node] = live
}
