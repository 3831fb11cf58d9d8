package parallel

import (
	"context"
	"sort"

	"github.com/katalvlaran/distmst/adjacency"
	"github.com/katalvlaran/distmst/edge"
	"github.com/katalvlaran/distmst/transport"
	"github.com/katalvlaran/distmst/unionfind"
)

// Kruskal computes the MST of adj across comm's process group using
// row-block submatrix forests merged pairwise across a processor
// hypercube. Every rank must call Kruskal; only rank 0's returned edges
// form the complete tree.
func Kruskal(ctx context.Context, comm transport.Comm, adj *adjacency.Matrix) ([]edge.Edge, error) {
	n := adj.N()
	size := comm.Size()
	rank := comm.Rank()
	nbRows := adjacency.NbRows(n, size)

	forest := buildLocalForest(adj, n, nbRows, rank)

	receiver := true
	for step, bitSource := 1, rank; step*nbRows < n; step, bitSource = step<<1, bitSource>>1 {
		bit := bitSource & 1

		if bit == 1 {
			receiver = false

			if rank%step == 0 {
				target := rank - step
				if err := comm.Send(ctx, target, forest); err != nil {
					return nil, err
				}
			}

			bipartite := buildBipartiteForest(adj, n, nbRows, rank, step)
			target := (rank - rank%step) - step
			if err := comm.Send(ctx, target, bipartite); err != nil {
				return nil, err
			}

			continue
		}

		if !receiver {
			continue // idle this step: already demoted to sender earlier
		}

		received, err := receiveStep(ctx, comm, rank, size, step)
		if err != nil {
			return nil, err
		}

		merged := foldMerge(forest, received...)
		forest = unionfind.Build(n, merged)
	}

	return forest, nil
}

// buildLocalForest computes the MST of the on-diagonal nbRows x nbRows
// submatrix owned by rank.
func buildLocalForest(adj *adjacency.Matrix, n, nbRows, rank int) []edge.Edge {
	start := rank * nbRows

	var edges []edge.Edge
	for i := 0; i < nbRows; i++ {
		realI := rank*nbRows + i
		if realI >= n {
			break
		}
		for j := start; j <= realI; j++ {
			w, _ := adj.At(realI, j)
			if w == 0 {
				continue
			}
			e, _ := edge.New(realI, j, w)
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edge.Less(edges[i], edges[j]) })

	return unionfind.Build(n, edges)
}

// buildBipartiteForest computes the MST of the bipartite submatrix
// spanning rank's own rows and the columns of the peer group at
// distance step: the edges crossing between two already-merged forests
// are exactly what a correct merge needs to consider, and nothing else.
func buildBipartiteForest(adj *adjacency.Matrix, n, nbRows, rank, step int) []edge.Edge {
	start := ((rank - rank%step) - step) * nbRows

	var edges []edge.Edge
	for i := 0; i < nbRows; i++ {
		realI := rank*nbRows + i
		if realI >= n {
			break
		}
		for j := start; j < start+nbRows*step; j++ {
			w, _ := adj.At(realI, j)
			if w == 0 {
				continue
			}
			e, _ := edge.New(realI, j, w)
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edge.Less(edges[i], edges[j]) })

	return unionfind.Build(n, edges)
}

// receiveStep gathers everything a receiving rank is owed at this
// hypercube step: the peer group leader's forest from rank+step, then a
// bipartite forest from each rank in [rank+step, rank+2*step) that
// actually exists: peers are short-circuited when the process count is
// not a power of two and a theoretical peer rank doesn't exist.
func receiveStep(ctx context.Context, comm transport.Comm, rank, size, step int) ([][]edge.Edge, error) {
	var lists [][]edge.Edge

	leader := rank + step
	if leader < size {
		forest, err := comm.Recv(ctx, leader)
		if err != nil {
			return nil, err
		}
		lists = append(lists, forest)
	}

	for peer := rank + step; peer < rank+2*step && peer < size; peer++ {
		bipartite, err := comm.Recv(ctx, peer)
		if err != nil {
			return nil, err
		}
		lists = append(lists, bipartite)
	}

	return lists, nil
}
