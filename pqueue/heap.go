// Package pqueue implements the 1-indexed binary min-heap of edges used
// by sequential Prim. Slot 0 is unused; parent = i/2, children = 2i and
// 2i+1; ordering follows edge.Less, with ties broken toward the left
// child.
//
// The layout mirrors github.com/katalvlaran/lvlath/matrix.Dense's
// staged, bounds-checked style, rather than container/heap's
// heap.Interface: an array with explicit capacity and explicit sift
// operations, not a generic container.
package pqueue

import "github.com/katalvlaran/distmst/edge"

// Heap is a 1-indexed, array-backed binary min-heap of edges.
type Heap struct {
	data []edge.Edge // data[0] is unused
}

// New allocates a Heap with room for up to capacity edges without
// reallocating. Sequential Prim passes M+1: every one of the M edges can
// be pushed at most once, guarded by the visited check before each push,
// so the heap never holds more than M edges.
func New(capacity int) *Heap {
	h := &Heap{data: make([]edge.Edge, 1, capacity+1)}

	return h
}

// Len returns the number of edges currently stored.
func (h *Heap) Len() int {
	return len(h.data) - 1
}

// Push appends e and sifts it up under the edge order.
// Stage 1 (Append): grow the backing slice by one slot.
// Stage 2 (Sift up): swap with the parent while the parent orders after e.
func (h *Heap) Push(e edge.Edge) {
	h.data = append(h.data, e)
	node := len(h.data) - 1

	for node > 1 {
		parent := node / 2
		if !edge.Less(h.data[node], h.data[parent]) {
			break
		}
		h.data[parent], h.data[node] = h.data[node], h.data[parent]
		node = parent
	}
}

// PopMin removes and returns the minimum edge under the edge order.
// Stage 1 (Extract): slot 1 holds the minimum by the heap invariant.
// Stage 2 (Reseat): move the last element into slot 1 and shrink by one.
// Stage 3 (Sift down): swap with the smaller child (left on ties) while
// it orders before the current node.
func (h *Heap) PopMin() edge.Edge {
	min := h.data[1]
	last := len(h.data) - 1
	h.data[1] = h.data[last]
	h.data = h.data[:last]

	node := 1
	size := len(h.data) - 1
	for {
		left, right := 2*node, 2*node+1
		smallest := node
		if left <= size && edge.Less(h.data[left], h.data[smallest]) {
			smallest = left
		}
		if right <= size && edge.Less(h.data[right], h.data[smallest]) {
			smallest = right
		}
		if smallest == node {
			break
		}
		h.data[node], h.data[smallest] = h.data[smallest], h.data[node]
		node = smallest
	}

	return min
}
