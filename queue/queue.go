// Package queue provides an indexed binary min-heap over dense integer ids,
// the open list of the informed grid searches.
//
// Keys live with the caller: the heap orders ids through a less function
// and the caller calls Fix after lowering an id's key. Every id knows its
// heap position, so Contains is O(1) and Fix is O(log n), which
// gives A* a real decrease-key instead of a full re-heapify.
package queue

import "container/heap"

// absent marks an id that is not in the heap.
const absent = -1

// MinHeap is an indexed min-heap of ids in [0, capacity).
type MinHeap struct {
	items idHeap
}

// New returns an empty heap for ids in [0, capacity) ordered by less.
func New(capacity int, less func(a, b int) bool) *MinHeap {
	pos := make([]int, capacity)
	for i := range pos {
		pos[i] = absent
	}
	return &MinHeap{items: idHeap{pos: pos, less: less}}
}

// Len returns the number of queued ids.
func (h *MinHeap) Len() int { return h.items.Len() }

// Contains reports whether id is queued.
func (h *MinHeap) Contains(id int) bool { return h.items.pos[id] != absent }

// Push queues id. Pushing an id that is already queued re-establishes its
// position instead.
func (h *MinHeap) Push(id int) {
	if h.Contains(id) {
		h.Fix(id)
		return
	}
	heap.Push(&h.items, id)
}

// Pop removes and returns the minimum id. It panics on an empty heap.
func (h *MinHeap) Pop() int { return heap.Pop(&h.items).(int) }

// Fix restores heap order after the key of a queued id changed.
// Ids that are not queued are ignored.
func (h *MinHeap) Fix(id int) {
	if p := h.items.pos[id]; p != absent {
		heap.Fix(&h.items, p)
	}
}

// Clear empties the heap in O(len).
func (h *MinHeap) Clear() {
	for _, id := range h.items.ids {
		h.items.pos[id] = absent
	}
	h.items.ids = h.items.ids[:0]
}

// idHeap implements heap.Interface and keeps pos in sync with ids.
type idHeap struct {
	ids  []int
	pos  []int // id -> index in ids, absent when not queued
	less func(a, b int) bool
}

func (q idHeap) Len() int           { return len(q.ids) }
func (q idHeap) Less(i, j int) bool { return q.less(q.ids[i], q.ids[j]) }
func (q idHeap) Swap(i, j int) {
	q.ids[i], q.ids[j] = q.ids[j], q.ids[i]
	q.pos[q.ids[i]] = i
	q.pos[q.ids[j]] = j
}

func (q *idHeap) Push(x any) {
	id := x.(int)
	q.pos[id] = len(q.ids)
	q.ids = append(q.ids, id)
}

func (q *idHeap) Pop() any {
	n := len(q.ids)
	id := q.ids[n-1]
	q.pos[id] = absent // for safety
	q.ids = q.ids[:n-1]
	return id
}
