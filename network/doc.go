// Package network turns a parsed sparse matrix into the in-memory graph the
// rest of the pipeline works on.
//
// The network package provides:
//
//   - Graph: a node set {0 … N-1} with undirected (default) or directed
//     weighted adjacency, deterministic accessors and a BFS traversal.
//   - Build: the matrix→graph constructor. Self-loop entries are counted
//     and excluded, duplicate entries collapsing onto one edge merge with
//     first-seen-wins, isolated nodes stay in the node set, and
//     N = max(rows, cols) of the source matrix.
//   - BuildReport: the bookkeeping (self-loops, merged duplicates) the
//     validator folds into its diagnostics.
//
// Everything here is deterministic: the same matrix and options always
// produce an identical graph, and every accessor returns nodes in ascending
// order regardless of insertion history.
package network
