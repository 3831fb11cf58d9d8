package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/distmst/edge"
)

// localCluster is the shared state behind every rank's Comm: one
// buffered channel per ordered (from, to) pair, so sends between the
// same two ranks are delivered in send order, and a cluster-wide abort
// signal every blocked call selects on.
type localCluster struct {
	size int

	mu    sync.Mutex
	pairs map[[2]int]chan []int32

	abort    chan struct{}
	abortErr error
	once     sync.Once
}

// NewLocalCluster builds p Comm values, one per rank, wired to the same
// in-process cluster. This is the module's one concrete Comm
// implementation: goroutines stand in for processes, channels for the
// message-passing fabric. The only state the ranks share is the channels
// themselves, the mutex-guarded table that hands them out, and the abort
// signal; ranks never exchange data except through the channels.
func NewLocalCluster(p int) []Comm {
	cluster := &localCluster{
		size:  p,
		pairs: make(map[[2]int]chan []int32),
		abort: make(chan struct{}),
	}

	comms := make([]Comm, p)
	for r := 0; r < p; r++ {
		comms[r] = &localComm{cluster: cluster, rank: r}
	}

	return comms
}

func (c *localCluster) channel(from, to int) chan []int32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := [2]int{from, to}
	ch, ok := c.pairs[key]
	if !ok {
		ch = make(chan []int32, 4)
		c.pairs[key] = ch
	}

	return ch
}

type localComm struct {
	cluster *localCluster
	rank    int
}

func (c *localComm) Rank() int { return c.rank }
func (c *localComm) Size() int { return c.cluster.size }

func (c *localComm) sendRaw(ctx context.Context, to int, buf []int32) error {
	ch := c.cluster.channel(c.rank, to)
	select {
	case ch <- buf:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-c.cluster.abort:
		return ErrAborted
	}
}

func (c *localComm) recvRaw(ctx context.Context, from int) ([]int32, error) {
	ch := c.cluster.channel(from, c.rank)
	select {
	case buf := <-ch:
		return buf, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.cluster.abort:
		return nil, ErrAborted
	}
}

// Send implements Comm.
func (c *localComm) Send(ctx context.Context, to int, edges []edge.Edge) error {
	return c.sendRaw(ctx, to, EncodeEdges(edges))
}

// Recv implements Comm.
func (c *localComm) Recv(ctx context.Context, from int) ([]edge.Edge, error) {
	buf, err := c.recvRaw(ctx, from)
	if err != nil {
		return nil, err
	}

	return DecodeEdges(buf), nil
}

// Gather implements Comm by routing every non-root rank's value to rank
// 0 over the same point-to-point Send/Recv the wire codec already
// exercises, rather than a separate collective channel.
func (c *localComm) Gather(ctx context.Context, local edge.Edge) ([]edge.Edge, error) {
	if c.rank != 0 {
		if err := c.Send(ctx, 0, []edge.Edge{local}); err != nil {
			return nil, err
		}

		return nil, nil
	}

	result := make([]edge.Edge, c.cluster.size)
	result[0] = local
	for r := 1; r < c.cluster.size; r++ {
		edges, err := c.Recv(ctx, r)
		if err != nil {
			return nil, err
		}
		result[r] = edges[0]
	}

	return result, nil
}

// Broadcast implements Comm.
func (c *localComm) Broadcast(ctx context.Context, root int, v *int) error {
	if c.rank == root {
		for r := 0; r < c.cluster.size; r++ {
			if r == root {
				continue
			}
			if err := c.sendRaw(ctx, r, []int32{int32(*v)}); err != nil {
				return err
			}
		}

		return nil
	}

	buf, err := c.recvRaw(ctx, root)
	if err != nil {
		return err
	}
	*v = int(buf[0])

	return nil
}

// Abort implements Comm: it records the first reported error and closes
// the cluster-wide abort channel exactly once, unblocking every pending
// call on every rank with ErrAborted.
func (c *localComm) Abort(format string, args ...any) {
	c.cluster.once.Do(func() {
		c.cluster.abortErr = fmt.Errorf(format, args...)
		close(c.cluster.abort)
	})
}

// AbortErr returns the error built from the first Abort call's format and
// arguments, or nil if the group was never aborted. It is not part of
// Comm; callers outside this package reach it through an interface
// assertion such as interface{ AbortErr() error }.
func (c *localComm) AbortErr() error {
	c.cluster.mu.Lock()
	defer c.cluster.mu.Unlock()

	return c.cluster.abortErr
}
