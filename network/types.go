// Package network: the Graph type, its option set and shared small types.

package network

// Graph is a fixed node set {0 … n-1} plus weighted adjacency. Undirected
// graphs store every edge mirrored (adj[u][v] and adj[v][u]); directed
// graphs store one arc per entry. The node set never changes after Build:
// isolated nodes are represented by empty adjacency, not absence.
//
// Graph is not safe for concurrent mutation; the session layer owns the
// locking. All read accessors are safe once the graph is built.
type Graph struct {
	n        int
	directed bool

	// adj[u] maps neighbor → weight; nil until u gains its first edge.
	adj []map[int]float64

	// edges counts undirected edges or directed arcs.
	edges int
}

// Edge is one adjacency in export form. Undirected edges are normalized to
// U < V; directed arcs keep their orientation.
type Edge struct {
	U, V int
	W    float64
}

// pairKey identifies an edge slot during deduplication: ordered (u,v) for
// directed builds, normalized {min,max} for undirected ones.
type pairKey struct{ u, v int }

// orderedPair builds the (u,v) key for directed de-duplication.
func orderedPair(u, v int) pairKey { return pairKey{u: u, v: v} }

// unorderedPair builds the {min,max} key for undirected de-duplication.
func unorderedPair(u, v int) pairKey {
	if u <= v {
		return pairKey{u: u, v: v}
	}

	return pairKey{u: v, v: u}
}

// DefaultDirected is the build default: undirected, mirroring the upload
// flow this tool exists for.
const DefaultDirected = false

// Option configures Build.
type Option func(*Options)

// Options stores the effective build configuration; fields are unexported,
// public entry points accept ...Option.
type Options struct {
	directed bool
}

// WithDirected treats every entry as a one-way arc.
func WithDirected() Option {
	return func(o *Options) { o.directed = true }
}

// WithUndirected restores the default undirected interpretation.
func WithUndirected() Option {
	return func(o *Options) { o.directed = false }
}

// gatherOptions resolves setters against defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{directed: DefaultDirected}
	for _, set := range user {
		set(&o)
	}

	return o
}
