package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/distmst/adjacency"
)

func buildTriangle(t *testing.T) *adjacency.Matrix {
	t.Helper()
	m, err := adjacency.New(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 2, 2))
	require.NoError(t, m.Set(0, 2, 4))

	return m
}

func TestSetIsSymmetric(t *testing.T) {
	m := buildTriangle(t)
	w, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 1, w)
}

func TestAtOutOfBounds(t *testing.T) {
	m := buildTriangle(t)
	_, err := m.At(3, 0)
	require.ErrorIs(t, err, adjacency.ErrIndexOutOfBounds)
}

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	_, err := adjacency.New(0)
	require.ErrorIs(t, err, adjacency.ErrInvalidDimensions)
}

func TestUpperTriangleEdgesSkipsZerosAndDiagonal(t *testing.T) {
	m := buildTriangle(t)
	edges := m.UpperTriangleEdges()
	require.Len(t, edges, 3)
	for _, e := range edges {
		require.LessOrEqual(t, e.I, e.J)
		require.NotZero(t, e.W)
	}
}

func TestRowBlockClampsLastRank(t *testing.T) {
	// N=10, size=3 -> nbRows=4: ranks own [0,4) [4,8) [8,10)(clamped)
	start, end := adjacency.RowBlock(10, 3, 2)
	require.Equal(t, 8, start)
	require.Equal(t, 10, end)

	start, end = adjacency.RowBlock(10, 3, 0)
	require.Equal(t, 0, start)
	require.Equal(t, 4, end)
}

func TestNbRows(t *testing.T) {
	require.Equal(t, 4, adjacency.NbRows(10, 3))
	require.Equal(t, 3, adjacency.NbRows(9, 3))
}
