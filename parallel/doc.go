// Package parallel implements the two distributed-memory MST variants:
// Kruskal via row-block submatrix forests merged pairwise across a
// processor hypercube, and Prim via a per-rank border array reduced
// through rank 0 each iteration.
//
// Both are expressed over transport.Comm's point-to-point and
// collective calls rather than raw message-passing primitives, and over
// edge.Edge/adjacency.Matrix rather than flat arrays of vertex indices.
package parallel
