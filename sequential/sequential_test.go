package sequential_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/distmst/adjacency"
	"github.com/katalvlaran/distmst/edge"
	"github.com/katalvlaran/distmst/sequential"
)

// buildS1 constructs scenario S1:
// N=4, edges {(0,1,1),(0,2,4),(1,2,2),(1,3,5),(2,3,3)}.
func buildS1(t *testing.T) (*adjacency.Matrix, int) {
	t.Helper()
	m, err := adjacency.New(4)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(0, 2, 4))
	require.NoError(t, m.Set(1, 2, 2))
	require.NoError(t, m.Set(1, 3, 5))
	require.NoError(t, m.Set(2, 3, 3))

	return m, 5
}

func totalWeight(tree []edge.Edge) int {
	sum := 0
	for _, e := range tree {
		sum += e.W
	}

	return sum
}

func TestKruskalS1(t *testing.T) {
	adj, _ := buildS1(t)
	tree := sequential.Kruskal(adj)
	require.Len(t, tree, 3)
	require.Equal(t, 6, totalWeight(tree))
	want := []struct{ i, j int }{{0, 1}, {1, 2}, {2, 3}}
	for i, e := range tree {
		require.Equal(t, want[i].i, e.I)
		require.Equal(t, want[i].j, e.J)
	}
}

func TestPrimS1(t *testing.T) {
	adj, m := buildS1(t)
	tree := sequential.Prim(adj, m)
	require.Len(t, tree, 3)
	require.Equal(t, 6, totalWeight(tree))
}

func TestKruskalAndPrimAgreeOnWeight(t *testing.T) {
	adj, m := buildS1(t)
	k := sequential.Kruskal(adj)
	p := sequential.Prim(adj, m)
	require.Equal(t, totalWeight(k), totalWeight(p))
}

// S3: triangle, all weights 1 -> tie-break picks (0,1),(0,2).
func TestKruskalTieBreakScenarioS3(t *testing.T) {
	m, err := adjacency.New(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 2, 1))
	require.NoError(t, m.Set(0, 2, 1))

	tree := sequential.Kruskal(m)
	require.Equal(t, []edge.Edge{{I: 0, J: 1, W: 1}, {I: 0, J: 2, W: 1}}, tree)
}

func TestKruskalSingleVertexYieldsEmptyOutput(t *testing.T) {
	m, err := adjacency.New(1)
	require.NoError(t, err)
	tree := sequential.Kruskal(m)
	require.Empty(t, tree)
}

func TestKruskalOnDisconnectedGraphYieldsForest(t *testing.T) {
	m, err := adjacency.New(4)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(2, 3, 1))
	tree := sequential.Kruskal(m)
	require.Len(t, tree, 2)
}

func TestKruskalIdempotentOnItsOwnOutput(t *testing.T) {
	adj, _ := buildS1(t)
	tree := sequential.Kruskal(adj)

	rebuilt, err := adjacency.New(adj.N())
	require.NoError(t, err)
	for _, e := range tree {
		require.NoError(t, rebuilt.Set(e.I, e.J, e.W))
	}
	again := sequential.Kruskal(rebuilt)
	require.Equal(t, tree, again)
}
