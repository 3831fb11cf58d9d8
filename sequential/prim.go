package sequential

import (
	"github.com/katalvlaran/distmst/adjacency"
	"github.com/katalvlaran/distmst/edge"
	"github.com/katalvlaran/distmst/pqueue"
)

// Prim computes the MST of adj by growing a frontier from vertex 0 with a
// binary min-heap of candidate edges. m is the edge count; the heap is
// sized m+1 since each of the m edges may be pushed at most once via the
// visited check.
//
// Lazy deletion is intentional: the heap may hold frontier edges that a
// later pop has already superseded. Popping filters those by checking
// whether both endpoints are already visited, rather than implementing
// decrease-key.
func Prim(adj *adjacency.Matrix, m int) []edge.Edge {
	n := adj.N()
	visited := make([]bool, n)
	heap := pqueue.New(m + 1)
	tree := make([]edge.Edge, 0, maxInt(n-1, 0))

	pushNeighbors := func(v int) {
		for u := 0; u < n; u++ {
			if visited[u] {
				continue
			}
			w, _ := adj.At(v, u)
			if w == 0 {
				continue
			}
			e, _ := edge.New(v, u, w)
			heap.Push(e)
		}
	}

	visited[0] = true
	pushNeighbors(0)

	for heap.Len() > 0 && len(tree) < n-1 {
		e := heap.PopMin()
		node := e.I
		if visited[node] {
			node = e.J
		}
		if visited[node] {
			continue // stale frontier entry, both endpoints already in tree
		}
		tree = append(tree, e)
		visited[node] = true
		pushNeighbors(node)
	}

	return tree
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
