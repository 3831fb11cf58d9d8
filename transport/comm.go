// Package transport provides the process-group substrate the parallel
// algorithms coordinate over: Comm, a small interface for point-to-point
// send/receive plus two collectives (gather, broadcast), and
// LocalCluster, an in-process, goroutine-per-rank implementation built
// on buffered channels.
//
// Process-group bootstrap (who holds rank/size) is treated as an
// external collaborator — but running the parallel algorithms at all,
// including in this module's own tests, requires something that hands
// out ranks and carries messages. Comm is that something, factored out
// so a real MPI binding could implement it without touching package
// parallel.
//
// Every Comm method blocks only at the message-passing primitive
// itself; there is no shared memory or locking visible to callers, and
// Abort surfaces a fatal error to every rank rather than letting any of
// them hang.
package transport

import (
	"context"
	"errors"

	"github.com/katalvlaran/distmst/edge"
)

// ErrAborted is returned by any blocked Comm call once Abort has been
// called on any rank of the same cluster.
var ErrAborted = errors.New("transport: process group aborted")

// Comm is one rank's view of a P-process group.
type Comm interface {
	// Rank returns this process's rank in [0, Size()).
	Rank() int
	// Size returns the number of processes in the group.
	Size() int
	// Send delivers edges to rank to, tagged 0, blocking until accepted.
	// Messages between the same ordered pair of ranks are delivered in
	// send order.
	Send(ctx context.Context, to int, edges []edge.Edge) error
	// Recv blocks until a message tagged 0 arrives from rank from.
	Recv(ctx context.Context, from int) ([]edge.Edge, error)
	// Gather collects every rank's local value at rank 0, in rank order.
	// The returned slice is non-nil only on rank 0; other ranks get nil.
	Gather(ctx context.Context, local edge.Edge) ([]edge.Edge, error)
	// Broadcast distributes *v from root to every rank; on entry *v is
	// only meaningful on root, on return it holds root's value on every
	// rank.
	Broadcast(ctx context.Context, root int, v *int) error
	// Abort reports a fatal, unrecoverable error and unblocks every
	// pending Send/Recv/Gather/Broadcast across the whole group with
	// ErrAborted, mirroring MPI_Abort.
	Abort(format string, args ...any)
}
