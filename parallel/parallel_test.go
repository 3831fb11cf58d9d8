package parallel_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/distmst/adjacency"
	"github.com/katalvlaran/distmst/edge"
	"github.com/katalvlaran/distmst/parallel"
	"github.com/katalvlaran/distmst/sequential"
	"github.com/katalvlaran/distmst/transport"
)

// buildS1 mirrors sequential's scenario S1 fixture:
// N=4, edges {(0,1,1),(0,2,4),(1,2,2),(1,3,5),(2,3,3)}, MST weight 6.
func buildS1(t *testing.T) *adjacency.Matrix {
	t.Helper()
	m, err := adjacency.New(4)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(0, 2, 4))
	require.NoError(t, m.Set(1, 2, 2))
	require.NoError(t, m.Set(1, 3, 5))
	require.NoError(t, m.Set(2, 3, 3))

	return m
}

func sortedWeight(edges []edge.Edge) (int, []edge.Edge) {
	cp := append([]edge.Edge(nil), edges...)
	sort.SliceStable(cp, func(i, j int) bool { return edge.Less(cp[i], cp[j]) })
	sum := 0
	for _, e := range cp {
		sum += e.W
	}

	return sum, cp
}

func runParallelKruskal(t *testing.T, adj *adjacency.Matrix, p int) []edge.Edge {
	t.Helper()
	comms := transport.NewLocalCluster(p)
	results := make([][]edge.Edge, p)
	errs := make([]error, p)

	done := make(chan int, p)
	for r := 0; r < p; r++ {
		r := r
		go func() {
			results[r], errs[r] = parallel.Kruskal(context.Background(), comms[r], adj)
			done <- r
		}()
	}
	for i := 0; i < p; i++ {
		<-done
	}
	for r := 0; r < p; r++ {
		require.NoError(t, errs[r])
	}

	return results[0]
}

func runParallelPrim(t *testing.T, adj *adjacency.Matrix, p int) []edge.Edge {
	t.Helper()
	comms := transport.NewLocalCluster(p)
	results := make([][]edge.Edge, p)
	errs := make([]error, p)

	done := make(chan int, p)
	for r := 0; r < p; r++ {
		r := r
		go func() {
			results[r], errs[r] = parallel.Prim(context.Background(), comms[r], adj)
			done <- r
		}()
	}
	for i := 0; i < p; i++ {
		<-done
	}
	for r := 0; r < p; r++ {
		require.NoError(t, errs[r])
	}

	return results[0]
}

func TestParallelKruskalMatchesSequentialAcrossP(t *testing.T) {
	adj := buildS1(t)
	seq := sequential.Kruskal(adj)
	wantWeight, wantSorted := sortedWeight(seq)

	for _, p := range []int{1, 2, 4} {
		t.Run("", func(t *testing.T) {
			got := runParallelKruskal(t, adj, p)
			require.Len(t, got, 3)
			gotWeight, gotSorted := sortedWeight(got)
			require.Equal(t, wantWeight, gotWeight)
			require.Equal(t, wantSorted, gotSorted)
		})
	}
}

func TestParallelPrimMatchesSequentialAcrossP(t *testing.T) {
	adj := buildS1(t)
	seq := sequential.Kruskal(adj)
	wantWeight, _ := sortedWeight(seq)

	for _, p := range []int{1, 2, 4} {
		t.Run("", func(t *testing.T) {
			got := runParallelPrim(t, adj, p)
			require.Len(t, got, 3)
			gotWeight, _ := sortedWeight(got)
			require.Equal(t, wantWeight, gotWeight)
		})
	}
}

func TestParallelKruskalOnNonPowerOfTwoProcessCount(t *testing.T) {
	adj := buildS1(t)
	got := runParallelKruskal(t, adj, 3)
	gotWeight, _ := sortedWeight(got)
	require.Equal(t, 6, gotWeight)
	require.Len(t, got, 3)
}

func TestParallelKruskalSingleVertex(t *testing.T) {
	adj, err := adjacency.New(1)
	require.NoError(t, err)
	got := runParallelKruskal(t, adj, 2)
	require.Empty(t, got)
}
