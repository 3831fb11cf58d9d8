// Package mst implements distmst's external interface: a single
// Compute entry point. It dispatches to sequential
// or parallel Prim/Kruskal by algorithm name, enforces the
// sequential/P==1 precondition, and on rank 0 writes the N-1 tree edges
// to the caller's io.Writer.
//
// The dispatch-by-name shape follows
// github.com/katalvlaran/lvlath/prim_kruskal.Compute and its
// MSTOptions/Option pattern, generalized from a two-way (Prim/Kruskal)
// single-process choice to four algorithm names and the
// sequential-vs-parallel precondition those names carry.
package mst

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/distmst/adjacency"
	"github.com/katalvlaran/distmst/edge"
	"github.com/katalvlaran/distmst/parallel"
	"github.com/katalvlaran/distmst/sequential"
	"github.com/katalvlaran/distmst/transport"
)

// Algorithm names, passed verbatim as Compute's algoName argument.
const (
	PrimSeq    = "prim-seq"
	KruskalSeq = "kruskal-seq"
	PrimPar    = "prim-par"
	KruskalPar = "kruskal-par"
)

// ErrUnknownAlgorithm indicates algoName matched none of the four
// recognized algorithm names.
var ErrUnknownAlgorithm = errors.New("mst: unknown algorithm name")

// ErrSequentialRequiresSingleProcess indicates a sequential algorithm was
// requested with more than one process in comm's group.
var ErrSequentialRequiresSingleProcess = errors.New("mst: sequential algorithm requires exactly one process")

// Compute runs algoName on adj (N vertices, M edges) across comm's
// process group. On rank 0, out receives the resulting N-1 tree edges
// as "<i> <j>\n" lines, i<=j, in the order the algorithm produced them;
// non-zero ranks write nothing. Misconfiguration and logic violations
// are reported on rank 0 ("ERROR: ...") and fed to comm.Abort so the
// whole group terminates together.
func Compute(ctx context.Context, comm transport.Comm, adj *adjacency.Matrix, m int, algoName string, out io.Writer) error {
	rank := comm.Rank()
	size := comm.Size()

	sequentialRequested := algoName == PrimSeq || algoName == KruskalSeq
	if sequentialRequested && size != 1 {
		if rank == 0 {
			fmt.Fprintf(out, "ERROR: Sequential algorithm is ran with %d processes.\n", size)
			comm.Abort("ERROR: sequential algorithm %s requires 1 process, got %d", algoName, size)
		}

		return ErrSequentialRequiresSingleProcess
	}

	var (
		tree []edge.Edge
		err  error
	)

	switch algoName {
	case PrimSeq:
		tree = sequential.Prim(adj, m)
	case KruskalSeq:
		tree = sequential.Kruskal(adj)
	case PrimPar:
		tree, err = parallel.Prim(ctx, comm, adj)
	case KruskalPar:
		tree, err = parallel.Kruskal(ctx, comm, adj)
	default:
		if rank == 0 {
			fmt.Fprintf(out, "ERROR: Invalid algorithm name: %s.\n", algoName)
			comm.Abort("ERROR: invalid algorithm name: %s", algoName)
		}

		return ErrUnknownAlgorithm
	}

	if err != nil {
		return err
	}

	if rank == 0 {
		for _, e := range tree {
			fmt.Fprintf(out, "%d %d\n", e.I, e.J)
		}
	}

	return nil
}
