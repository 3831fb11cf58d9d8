package parallel

import (
	"context"
	"errors"

	"github.com/katalvlaran/distmst/adjacency"
	"github.com/katalvlaran/distmst/edge"
	"github.com/katalvlaran/distmst/transport"
)

// ErrNoCandidateEdge indicates a parallel Prim iteration found no valid
// candidate edge on any rank, which can only happen if adj is
// disconnected. It is raised on rank 0 and fed to Comm.Abort so the
// whole group terminates together.
var ErrNoCandidateEdge = errors.New("parallel: no candidate edge found (graph is disconnected)")

// noCandidate is the sentinel gathered from a rank whose row block has no
// unvisited vertex with a usable border entry this iteration.
var noCandidate = edge.Edge{I: -1}

// Prim computes the MST of adj across comm's process group by reducing a
// per-rank border array through rank 0 each iteration. Every rank must
// call Prim; only rank 0's returned edges form the complete tree, in
// admission order.
func Prim(ctx context.Context, comm transport.Comm, adj *adjacency.Matrix) ([]edge.Edge, error) {
	n := adj.N()
	rank := comm.Rank()
	nbRows := adjacency.NbRows(n, comm.Size())

	visited := make([]bool, n)
	borderW, borderZ := initBorder(adj, n, nbRows, rank, visited)

	var tree []edge.Edge
	for iter := 0; iter < n-1; iter++ {
		local := findClosestBorder(adj, n, nbRows, rank, visited, borderW, borderZ)

		gathered, err := comm.Gather(ctx, local)
		if err != nil {
			return nil, err
		}

		newVertex := -1
		var chosen edge.Edge
		if rank == 0 {
			chosen, err = selectGlobalMin(gathered)
			if err != nil {
				comm.Abort("ERROR: %s", err)

				return nil, err
			}
			newVertex = chosen.I
			normalized, _ := edge.New(chosen.I, chosen.J, chosen.W)
			tree = append(tree, normalized)
		}

		if err := comm.Broadcast(ctx, 0, &newVertex); err != nil {
			return nil, err
		}

		addVertexToBorder(adj, n, nbRows, rank, newVertex, visited, borderW, borderZ)
	}

	return tree, nil
}

// initBorder marks vertex 0 visited and populates every local row's
// border entry with its edge to vertex 0.
func initBorder(adj *adjacency.Matrix, n, nbRows, rank int, visited []bool) (w, z []int) {
	visited[0] = true
	w = make([]int, nbRows)
	z = make([]int, nbRows)
	for y := 0; y < nbRows; y++ {
		v := rank*nbRows + y
		if v >= n {
			break
		}
		weight, _ := adj.At(v, 0)
		w[y] = weight
		z[y] = 0
	}

	return w, z
}

// asCandidateOrder builds the canonical (I<=J) form of a raw (v, z, w)
// triple purely for comparison under the edge order; the raw candidate
// itself is never mutated, since its first field must stay v (the
// global row index of the admitting rank) for later extraction.
func asCandidateOrder(e edge.Edge) edge.Edge {
	normalized, _ := edge.New(e.I, e.J, e.W)

	return normalized
}

// findClosestBorder scans rank's local rows for the unvisited row with
// the minimum candidate edge under the edge order, skipping w==0 entries
// (no connection yet). It returns the sentinel noCandidate if every local
// row is visited or disconnected from the tree so far.
func findClosestBorder(adj *adjacency.Matrix, n, nbRows, rank int, visited []bool, borderW, borderZ []int) edge.Edge {
	best := noCandidate
	found := false

	for y := 0; y < nbRows; y++ {
		v := rank*nbRows + y
		if v >= n {
			break
		}
		if visited[v] || borderW[y] == 0 {
			continue
		}
		candidate := edge.Edge{I: v, J: borderZ[y], W: borderW[y]}
		if !found || edge.Less(asCandidateOrder(candidate), asCandidateOrder(best)) {
			best = candidate
			found = true
		}
	}

	return best
}

// selectGlobalMin picks the overall minimum candidate under the edge
// order, ignoring sentinels, and asserts at least one valid candidate
// exists.
func selectGlobalMin(candidates []edge.Edge) (edge.Edge, error) {
	var best edge.Edge
	found := false
	for _, c := range candidates {
		if c.I == -1 {
			continue
		}
		if !found || edge.Less(asCandidateOrder(c), asCandidateOrder(best)) {
			best = c
			found = true
		}
	}
	if !found {
		return edge.Edge{}, ErrNoCandidateEdge
	}

	return best, nil
}

// addVertexToBorder marks newVertex visited and, for every local row
// still unvisited and adjacent to it, replaces the border entry when
// (newVertex, y) is strictly better under the edge order — comparing by
// the *global* endpoint id, not the row-local index y, so the result
// matches the sequential algorithms regardless of row-block size. w==0
// is treated as infinitely bad so an empty border entry is always
// replaced.
func addVertexToBorder(adj *adjacency.Matrix, n, nbRows, rank, newVertex int, visited []bool, borderW, borderZ []int) {
	visited[newVertex] = true

	for y := 0; y < nbRows; y++ {
		v := rank*nbRows + y
		if v >= n || visited[v] {
			continue
		}
		w, _ := adj.At(v, newVertex)
		if w == 0 {
			continue
		}
		if borderW[y] == 0 {
			borderW[y], borderZ[y] = w, newVertex

			continue
		}
		current, _ := edge.New(borderZ[y], v, borderW[y])
		candidate, _ := edge.New(newVertex, v, w)
		if edge.Less(candidate, current) {
			borderW[y], borderZ[y] = w, newVertex
		}
	}
}
