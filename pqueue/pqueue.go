// Package pqueue provides a minimum-priority queue with handle-based
// decrease-key, the collaborator consumed by the shortest-path engine.
//
// Insert returns a *Item handle; DecreaseKey reorders that exact entry
// in place via the item's back-pointer index, so each value occupies at
// most one heap slot — no lazy duplicates to skip on extraction.
//
// Complexity:
//
//   - Insert, ExtractMin, DecreaseKey: O(log N)
//   - PeekMin, Len: O(1)
package pqueue

import (
	"container/heap"
	"errors"
)

// Sentinel errors for queue misuse.
var (
	// ErrKeyIncrease is returned when DecreaseKey receives a priority
	// larger than the item's current one.
	ErrKeyIncrease = errors.New("pqueue: new priority exceeds current")

	// ErrDetached is returned when DecreaseKey receives a handle that has
	// already been extracted from the queue.
	ErrDetached = errors.New("pqueue: item no longer in queue")
)

// Item is the handle returned by Insert, usable with DecreaseKey until
// the item is extracted.
type Item[V any] struct {
	value    V
	priority int64
	index    int // position in the heap slice; -1 once extracted
}

// Priority returns the item's current priority.
func (it *Item[V]) Priority() int64 { return it.priority }

// Value returns the item's payload.
func (it *Item[V]) Value() V { return it.value }

// Queue is a binary min-heap of values ordered by int64 priority.
// The zero value is ready to use. Not safe for concurrent access.
type Queue[V any] struct {
	items minHeap[V]
}

// Len returns the number of queued items.
func (q *Queue[V]) Len() int { return q.items.Len() }

// Insert adds value with the given priority and returns its handle.
func (q *Queue[V]) Insert(priority int64, value V) *Item[V] {
	it := &Item[V]{value: value, priority: priority}
	heap.Push(&q.items, it)

	return it
}

// ExtractMin removes and returns the value with the smallest priority.
// The second result is false when the queue is empty.
func (q *Queue[V]) ExtractMin() (V, bool) {
	if q.items.Len() == 0 {
		var zero V
		return zero, false
	}
	it := heap.Pop(&q.items).(*Item[V])

	return it.value, true
}

// PeekMin returns the value with the smallest priority without removing
// it. The second result is false when the queue is empty.
func (q *Queue[V]) PeekMin() (V, bool) {
	if q.items.Len() == 0 {
		var zero V
		return zero, false
	}

	return q.items[0].value, true
}

// DecreaseKey lowers the priority of a queued item and restores heap
// order around it. ErrDetached if the item was already extracted;
// ErrKeyIncrease if the new priority is larger than the current one.
func (q *Queue[V]) DecreaseKey(it *Item[V], priority int64) error {
	if it.index < 0 {
		return ErrDetached
	}
	if priority > it.priority {
		return ErrKeyIncrease
	}
	it.priority = priority
	heap.Fix(&q.items, it.index)

	return nil
}

// minHeap implements container/heap over item handles, maintaining each
// item's back-pointer index on every move.
type minHeap[V any] []*Item[V]

func (h minHeap[V]) Len() int { return len(h) }

func (h minHeap[V]) Less(i, j int) bool { return h[i].priority < h[j].priority }

func (h minHeap[V]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *minHeap[V]) Push(x any) {
	it := x.(*Item[V])
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *minHeap[V]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // release the slot
	it.index = -1  // mark extracted
	*h = old[:n-1]

	return it
}
