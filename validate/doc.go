// Package validate computes the structural diagnostics shown alongside a
// loaded network: entry-level symmetry of the source matrix, the self-loop
// count, connectivity via breadth-first components, and the basic summary
// statistics (node count, edge count, density).
//
// Diagnostics are advisory. An asymmetric or disconnected network is still
// a usable network; the Report carries Warnings, never errors, and nothing
// here mutates the graph.
//
// Every check is order-independent: shuffling the entries of the source
// file changes neither the Report nor the Stats.
package validate
