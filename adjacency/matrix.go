// Package adjacency provides the dense, row-major adjacency matrix that
// every MST algorithm in distmst reads: an N×N matrix, symmetric, zero
// diagonal, zero meaning "no edge". It is stored as a flat int slice
// rather than a mutable vertex/edge set; the algorithms only read it.
//
// Layout and bounds-checking follow
// github.com/katalvlaran/lvlath/matrix.Dense; filling a matrix from edge
// lists (through New and Set) belongs to callers such as
// internal/fixtures.
package adjacency

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/distmst/edge"
)

// ErrInvalidDimensions indicates a non-positive vertex count was supplied.
var ErrInvalidDimensions = errors.New("adjacency: dimensions must be > 0")

// ErrIndexOutOfBounds indicates a row or column index outside [0, N).
var ErrIndexOutOfBounds = errors.New("adjacency: index out of bounds")

func matrixErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// Matrix is a dense N×N row-major weight matrix. At returns 0 for "no
// edge"; the diagonal is always zero.
type Matrix struct {
	n    int
	data []int // flat backing storage, length == n*n
}

// New allocates an N×N Matrix initialized to zero (no edges).
func New(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{n: n, data: make([]int, n*n)}, nil
}

// N returns the vertex count.
func (m *Matrix) N() int {
	return m.n
}

func (m *Matrix) index(i, j int) (int, error) {
	if i < 0 || i >= m.n {
		return 0, matrixErrorf("At", i, j, ErrIndexOutOfBounds)
	}
	if j < 0 || j >= m.n {
		return 0, matrixErrorf("At", i, j, ErrIndexOutOfBounds)
	}

	return i*m.n + j, nil
}

// At returns the weight of edge (i, j); 0 means no edge.
func (m *Matrix) At(i, j int) (int, error) {
	idx, err := m.index(i, j)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns the weight of edge (i, j), mirrored to (j, i) so the matrix
// stays symmetric.
func (m *Matrix) Set(i, j, w int) error {
	idx, err := m.index(i, j)
	if err != nil {
		return err
	}
	other, err := m.index(j, i)
	if err != nil {
		return err
	}
	m.data[idx] = w
	m.data[other] = w

	return nil
}

// UpperTriangleEdges enumerates every non-zero entry of the upper
// triangle (i <= j, diagonal excluded since it is always zero) as
// edge.Edge values, in row-major scan order. Sequential Kruskal sorts
// this list; callers that need a different order re-sort it themselves.
func (m *Matrix) UpperTriangleEdges() []edge.Edge {
	var edges []edge.Edge
	for i := 0; i < m.n; i++ {
		base := i * m.n
		for j := i; j < m.n; j++ {
			w := m.data[base+j]
			if w == 0 {
				continue
			}
			e, _ := edge.New(i, j, w) // i <= j already, never errors
			edges = append(edges, e)
		}
	}

	return edges
}

// RowBlock returns the half-open range of rows [start, end) rank owns out
// of size ranks total: nbRows = ceil(N/size); the last rank may own
// fewer rows, clamped to N.
func RowBlock(n, size, rank int) (start, end int) {
	nbRows := (n + size - 1) / size
	start = rank * nbRows
	end = start + nbRows
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}

	return start, end
}

// NbRows returns ceil(N/size), the row-block width every rank (but
// possibly the last) owns.
func NbRows(n, size int) int {
	return (n + size - 1) / size
}
