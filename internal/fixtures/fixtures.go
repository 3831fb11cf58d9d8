// Package fixtures builds adjacency matrices for the module's test
// scenarios (S1-S6) and, for scenario S5, a random weighted
// connected graph.
//
// The random-connected-graph generator is grounded on
// github.com/katalvlaran/lvlath/builder's WeightFn/random-graph
// generators (builder.UniformWeightFn, builder.impl_random_sparse.go):
// same generate-edges-then-guarantee-connectivity approach, producing an
// *adjacency.Matrix instead of a *core.Graph.
package fixtures

import (
	"math/rand"

	"github.com/katalvlaran/distmst/adjacency"
)

// mustSet panics on an out-of-bounds index; every caller here passes
// coordinates within [0, N) by construction, so this can only fire on a
// fixture-authoring mistake.
func mustSet(m *adjacency.Matrix, i, j, w int) {
	if err := m.Set(i, j, w); err != nil {
		panic(err)
	}
}

// Each scenario builder S1-S6 returns the matrix and the total weight of
// its expected MST.

// S1 builds the 4-vertex scenario:
// edges {(0,1,1),(0,2,4),(1,2,2),(1,3,5),(2,3,3)}, MST weight 6.
func S1() (*adjacency.Matrix, int) {
	m, _ := adjacency.New(4)
	mustSet(m, 0, 1, 1)
	mustSet(m, 0, 2, 4)
	mustSet(m, 1, 2, 2)
	mustSet(m, 1, 3, 5)
	mustSet(m, 2, 3, 3)

	return m, 6
}

// S2 builds the 5-vertex path graph: edges (0,1),(1,2),
// (2,3),(3,4) with weights 1..4. The MST is the whole path.
func S2() (*adjacency.Matrix, int) {
	m, _ := adjacency.New(5)
	mustSet(m, 0, 1, 1)
	mustSet(m, 1, 2, 2)
	mustSet(m, 2, 3, 3)
	mustSet(m, 3, 4, 4)

	return m, 10
}

// S3 builds the 3-vertex all-equal-weight triangle. The
// tie-break (lower i, then lower j) selects (0,1),(0,2).
func S3() (*adjacency.Matrix, int) {
	m, _ := adjacency.New(3)
	mustSet(m, 0, 1, 1)
	mustSet(m, 1, 2, 1)
	mustSet(m, 0, 2, 1)

	return m, 2
}

// S4 builds a 6-vertex graph with two equally-good spanning trees, so
// that only the (i,j) tie-break distinguishes the expected MST. The
// 4-cycle 0-1-2-3 is all weight 1: any three of its four
// edges span {0,1,2,3}, so only the deterministic tie-break picks which
// one is left out. Kruskal's ascending-(i,j) processing order excludes
// (2,3): the MST is {(0,1),(0,3),(1,2)} plus the uniquely-weighted chain
// (3,4),(4,5) that pulls in the remaining two vertices.
func S4() (*adjacency.Matrix, int) {
	m, _ := adjacency.New(6)
	mustSet(m, 0, 1, 1)
	mustSet(m, 1, 2, 1)
	mustSet(m, 2, 3, 1)
	mustSet(m, 0, 3, 1)
	mustSet(m, 3, 4, 2)
	mustSet(m, 4, 5, 3)

	return m, 8
}

// S6 builds the 2-vertex single-edge scenario.
func S6() (*adjacency.Matrix, int) {
	m, _ := adjacency.New(2)
	mustSet(m, 0, 1, 7)

	return m, 7
}

// RandomConnected builds an N-vertex random weighted connected graph for
// scenario S5: a random spanning path guarantees connectivity, then
// extra random chords are layered on top, mirroring
// builder.impl_random_sparse.go's "spanning structure first, then extra
// edges" shape.
func RandomConnected(n int, extraEdges int, maxWeight int, seed int64) (*adjacency.Matrix, int) {
	rng := rand.New(rand.NewSource(seed))
	m, _ := adjacency.New(n)
	edgeCount := 0

	order := rng.Perm(n)
	for k := 1; k < n; k++ {
		a, b := order[k-1], order[k]
		mustSet(m, a, b, 1+rng.Intn(maxWeight))
		edgeCount++
	}

	for added := 0; added < extraEdges; {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		if w, _ := m.At(a, b); w != 0 {
			continue
		}
		mustSet(m, a, b, 1+rng.Intn(maxWeight))
		edgeCount++
		added++
	}

	return m, edgeCount
}
