// Package unionfind implements a path-compressed, rank-weighted disjoint-set
// forest over vertex ids 0..N-1, and the union-find edge selection routine
// reused verbatim by sequential Kruskal, by per-rank submatrix forest
// construction in parallel Kruskal, and by every forest merge step in
// parallel Kruskal.
//
// This is the same disjoint-set algorithm as
// github.com/katalvlaran/lvlath/prim_kruskal.Kruskal's inline DSU, lifted
// into its own package and generalized from map[string]string to an int
// slice indexed by vertex id, and from recursive to iterative find, so
// that stack depth never approaches N on a long find chain.
package unionfind

import "github.com/katalvlaran/distmst/edge"

// Forest is a disjoint-set forest over vertex ids 0..N-1.
type Forest struct {
	father []int
	rank   []int
}

// New builds a Forest of n singleton sets, each vertex its own root with
// rank 1 (rank is a height upper bound, always at least 1).
func New(n int) *Forest {
	f := &Forest{
		father: make([]int, n),
		rank:   make([]int, n),
	}
	for v := range f.father {
		f.father[v] = v
		f.rank[v] = 1
	}

	return f
}

// Find returns v's root, applying full path compression along the
// traversed chain.
func (f *Forest) Find(v int) int {
	root := v
	for f.father[root] != root {
		root = f.father[root]
	}

	curr := v
	for curr != root {
		next := f.father[curr]
		f.father[curr] = root
		curr = next
	}

	return root
}

// Union merges the sets rooted at a and b. Both arguments must already be
// roots (callers always test Find(i) != Find(j) first); Union on equal
// roots is a caller-side no-op.
func (f *Forest) Union(a, b int) {
	if a == b {
		return
	}
	switch {
	case f.rank[a] < f.rank[b]:
		f.father[a] = b
	case f.rank[a] > f.rank[b]:
		f.father[b] = a
	default:
		f.father[b] = a
		f.rank[a]++
	}
}

// Build iterates sortedEdges in order, unioning the endpoints of every edge
// that connects distinct components and appending it to the returned tree.
// It stops once n-1 edges have been emitted, where n is the number of
// vertices the Forest was built with. The returned count is len(tree); on a
// disconnected input it is smaller than n-1.
func Build(n int, sortedEdges []edge.Edge) []edge.Edge {
	f := New(n)
	tree := make([]edge.Edge, 0, maxInt(n-1, 0))
	target := n - 1

	for _, e := range sortedEdges {
		if len(tree) >= target {
			break
		}
		rootI, rootJ := f.Find(e.I), f.Find(e.J)
		if rootI == rootJ {
			continue
		}
		f.Union(rootI, rootJ)
		tree = append(tree, e)
	}

	return tree
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
