package sequential

import (
	"sort"

	"github.com/katalvlaran/distmst/adjacency"
	"github.com/katalvlaran/distmst/edge"
	"github.com/katalvlaran/distmst/unionfind"
)

// Kruskal computes the MST of adj by sorting every edge under the
// canonical edge order and running union-find selection. The result has
// N-1 edges when adj is connected; fewer otherwise, since a disconnected
// graph yields a spanning forest rather than a tree.
func Kruskal(adj *adjacency.Matrix) []edge.Edge {
	edges := adj.UpperTriangleEdges()
	sort.SliceStable(edges, func(i, j int) bool { return edge.Less(edges[i], edges[j]) })

	return unionfind.Build(adj.N(), edges)
}
