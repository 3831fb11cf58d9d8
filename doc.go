// Package distmst computes the Minimum Spanning Tree of an undirected,
// weighted, connected graph, sequentially or across a distributed-memory
// process group.
//
// 🚀 What is distmst?
//
//	A small, dependency-light toolkit that brings together:
//
//	  • Core primitives: a canonical Edge, its total order, union-find, a binary heap
//	  • A dense adjacency matrix view sized for message-passing algorithms
//	  • Four MST variants: sequential Prim, sequential Kruskal, and their
//	    distributed-memory counterparts over a process-group abstraction
//
// ✨ Why choose distmst?
//
//   - Deterministic  — the (weight, i, j) edge order is the only source of
//     tie-breaking, so output is byte-identical across runs and process counts
//   - Pluggable transport — parallel algorithms depend on a small Comm
//     interface; the module ships an in-process, goroutine-based cluster for
//     running and testing them without a real MPI fabric
//   - Pure Go — no cgo, testify is the only dependency
//
// Under the hood, everything is organized under small leaf packages:
//
//	edge/       — canonical Edge and its total order
//	unionfind/  — path-compressed, rank-weighted disjoint-set forest
//	pqueue/     — 1-indexed binary min-heap of edges
//	adjacency/  — dense N×N weight matrix and row-block partitioning
//	sequential/ — Prim and Kruskal over a single process
//	transport/  — the Comm process-group abstraction, its wire codec, and
//	              an in-process LocalCluster implementation
//	parallel/   — Prim and Kruskal across a process group
//	mst/        — algorithm dispatch, the module's external interface
//
// Quick example: four vertices, a path-shaped MST.
//
//	0───1───2───3
//
// represents the cheapest way to connect four vertices once weights are
// applied to a denser graph.
package distmst
