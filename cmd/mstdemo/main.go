// Command mstdemo runs one of distmst's four MST algorithms over a
// randomly generated connected graph, simulating the requested number of
// MPI-style processes with goroutines and channels instead of a real
// cluster.
//
// Usage:
//
//	mstdemo -n 200 -extra 300 -p 8 -algo kruskal-par
//
// No flag-parsing library appears with usable source anywhere in the
// reference corpus (only a bare go.mod for one elsewhere in the
// ecosystem, with no code to learn its call pattern from), so this
// command uses the standard library's flag package.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/distmst/internal/fixtures"
	"github.com/katalvlaran/distmst/mst"
	"github.com/katalvlaran/distmst/transport"
)

func main() {
	n := flag.Int("n", 50, "number of vertices")
	extra := flag.Int("extra", 80, "extra chord edges beyond the spanning path")
	maxWeight := flag.Int("maxweight", 100, "maximum edge weight")
	seed := flag.Int64("seed", 1, "random graph seed")
	p := flag.Int("p", 4, "number of simulated processes")
	algo := flag.String("algo", mst.KruskalPar, "one of prim-seq, kruskal-seq, prim-par, kruskal-par")
	flag.Parse()

	if err := run(*n, *extra, *maxWeight, *seed, *p, *algo); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// discard drops everything written to it; non-root ranks' output sinks
// here, since Compute only ever writes the tree on rank 0.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func run(n, extra, maxWeight int, seed int64, p int, algo string) error {
	adj, edgeCount := fixtures.RandomConnected(n, extra, maxWeight, seed)
	comms := transport.NewLocalCluster(p)

	errs := make([]error, p)
	done := make(chan int, p)
	for r := 0; r < p; r++ {
		r := r
		var out io.Writer = discard{}
		if r == 0 {
			out = os.Stdout
		}
		go func() {
			errs[r] = mst.Compute(context.Background(), comms[r], adj, edgeCount, algo, out)
			done <- r
		}()
	}
	for i := 0; i < p; i++ {
		<-done
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
