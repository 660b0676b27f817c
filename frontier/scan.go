// SPDX-License-Identifier: MIT

package frontier

import (
	"container/heap"
	"strings"

	"github.com/katalvlaran/shortpath/core"
)

// entryHeap is a min-heap of Entry ordered by Priority ascending.
type entryHeap []Entry

// Len returns the number of items in the heap.
func (h entryHeap) Len() int { return len(h) }

// Less defines the comparison: smaller priority → popped first.
func (h entryHeap) Less(i, j int) bool { return h[i].Priority < h[j].Priority }

// Swap swaps two elements in the heap.
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds x onto the heap. Called by heap.Push; x must be an Entry.
func (h *entryHeap) Push(x any) { *h = append(*h, x.(Entry)) }

// Pop removes the last element. Called by heap.Pop.
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// ScanQueue is a Frontier backed by container/heap whose lookups scan the
// storage linearly.
//
// A successful DecreaseOrUpdate overwrites the stored priority in place and
// re-heapifies the full storage. Both Contains and DecreaseOrUpdate are O(n);
// Push and PopMin are O(log n).
//
// The zero value is an empty, ready-to-use queue.
type ScanQueue struct {
	h entryHeap
}

// Compile-time interface check.
var _ Frontier = (*ScanQueue)(nil)

// NewScanQueue returns an empty queue with room for capacity entries.
func NewScanQueue(capacity int) *ScanQueue {
	return &ScanQueue{h: make(entryHeap, 0, capacity)}
}

// Push inserts e in O(log n).
func (q *ScanQueue) Push(e Entry) { heap.Push(&q.h, e) }

// PopMin removes and returns the minimum entry in O(log n).
func (q *ScanQueue) PopMin() (Entry, error) {
	if len(q.h) == 0 {
		return Entry{}, ErrEmpty
	}

	return heap.Pop(&q.h).(Entry), nil
}

// Peek returns the minimum entry in O(1).
func (q *ScanQueue) Peek() (Entry, error) {
	if len(q.h) == 0 {
		return Entry{}, ErrEmpty
	}

	return q.h[0], nil
}

// Contains reports whether node has a live entry. O(n).
func (q *ScanQueue) Contains(node core.NodeKey) bool {
	return q.find(node) >= 0
}

// DecreaseOrUpdate lowers node's priority when newPriority is strictly
// smaller, then re-heapifies. O(n).
func (q *ScanQueue) DecreaseOrUpdate(node core.NodeKey, newPriority int64) bool {
	i := q.find(node)
	if i < 0 {
		return false
	}
	if newPriority >= q.h[i].Priority {
		return false
	}

	q.h[i].Priority = newPriority
	heap.Init(&q.h)

	return true
}

// IsEmpty reports whether the queue holds no entries.
func (q *ScanQueue) IsEmpty() bool { return len(q.h) == 0 }

// Len returns the number of live entries.
func (q *ScanQueue) Len() int { return len(q.h) }

// String renders entries in storage (heap array) order.
func (q *ScanQueue) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range q.h {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

// find returns the first storage slot holding node, or -1.
func (q *ScanQueue) find(node core.NodeKey) int {
	for i := range q.h {
		if q.h[i].Node == node {
			return i
		}
	}

	return -1
}
