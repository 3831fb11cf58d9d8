// Package sequential implements single-process Kruskal and Prim, the two
// MST algorithms that run only when the process group has exactly one
// member.
//
// Both are adapted from
// github.com/katalvlaran/lvlath/prim_kruskal.Kruskal and .Prim: same
// sort-then-union-find and heap-driven-frontier strategies, rewritten
// against edge.Edge/int vertex ids and *adjacency.Matrix instead of
// core.Edge/string ids and *core.Graph, and delegating union-find to
// the shared unionfind package instead of an inline DSU.
package sequential
