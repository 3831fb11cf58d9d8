// Package edge defines the canonical undirected edge representation shared
// by every algorithm in distmst, and the single total order ("the edge
// order") that every sort, heap, and tie-break in the module respects.
//
// Errors:
//
//	ErrNegativeWeight - a non-negative weight invariant was violated.
package edge

import "errors"

// ErrNegativeWeight indicates a weight below zero was supplied to New.
// The data model only ever carries non-negative weights; zero
// itself means "no edge" in an adjacency matrix, never "edge of cost 0"
// on a constructed Edge.
var ErrNegativeWeight = errors.New("edge: negative weight")

// Edge is an undirected, weighted connection between two vertex ids,
// normalized so that I <= J. Two edges are equal when their fields match
// structurally.
type Edge struct {
	I, J int
	W    int
}

// New builds an Edge from an unordered pair, storing the smaller endpoint
// as I and the larger as J.
func New(a, b, w int) (Edge, error) {
	if w < 0 {
		return Edge{}, ErrNegativeWeight
	}
	if a > b {
		a, b = b, a
	}

	return Edge{I: a, J: b, W: w}, nil
}

// Less implements the canonical edge order: lower weight first, then
// lower I, then lower J. It is a strict weak order consistent with a
// stable sort — ties on all three fields are equal and keep whatever
// relative order the input had.
func Less(a, b Edge) bool {
	if a.W != b.W {
		return a.W < b.W
	}
	if a.I != b.I {
		return a.I < b.I
	}

	return a.J < b.J
}

// Compare returns -1, 0, or 1 for a relative to b under the edge order,
// for callers that prefer cmp-style comparators (sort.SliceStable,
// slices.SortFunc).
func Compare(a, b Edge) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}
