// Package network: the matrix→graph builder.

package network

import (
	"fmt"
	"math"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/mtx"
)

// BuildReport is the bookkeeping Build produces alongside the graph. The
// validator reads SelfLoops into its report; the other counters feed logs
// and the upload summary.
type BuildReport struct {
	// SelfLoops counts entries with Row == Col. They never become edges.
	SelfLoops int

	// DuplicatesMerged counts entries that mapped onto an already-occupied
	// edge slot and were dropped by the first-seen-wins policy.
	DuplicatesMerged int

	// MirroredEntries counts arcs materialized from a symmetric-storage
	// matrix in a directed build (the file stores one triangle, the mirror
	// arc is implied). Always 0 for undirected builds.
	MirroredEntries int
}

// Build constructs a Graph from a coordinate matrix.
//
// Semantics, in the order they are applied:
//   - N = max(rows, cols); nodes 0 … N-1 all exist, isolated ones included.
//   - Every stored entry is a candidate edge (row, col, value), explicit
//     zero values included; the value becomes the edge weight as-is.
//   - Entries with row == col are counted as self-loops and excluded.
//   - Duplicate policy (deterministic, first-seen-wins): the first entry to
//     claim an edge slot keeps its weight, later entries for the same slot
//     are counted in DuplicatesMerged and dropped. Undirected builds key
//     slots by unordered pair, so (0,1) and (1,0) are the same slot;
//     directed builds key by ordered pair.
//   - A matrix parsed from a "symmetric" banner stores one triangle;
//     undirected builds need nothing extra (adjacency mirrors anyway),
//     directed builds materialize the implied mirror arc.
//
// The only failure paths are structural: nil input (ErrNilMatrix), an entry
// outside the declared dimensions (ErrEntryRange), or a non-finite weight
// (ErrNonFiniteWeight). Parsed input cannot trigger them; decoded or
// hand-built matrices can.
//
// Complexity: O(E) time over entries, O(N + E) space.
func Build(m *mtx.SparseMatrix, opts ...Option) (*Graph, *BuildReport, error) {
	o := gatherOptions(opts...)

	// --- Stage 1: validate input ---
	if m == nil {
		return nil, nil, ErrNilMatrix
	}
	var e mtx.Entry
	for i := range m.Entries {
		e = m.Entries[i]
		if e.Row < 0 || e.Row >= m.Rows || e.Col < 0 || e.Col >= m.Cols {
			return nil, nil, fmt.Errorf("Build: entry %d at (%d,%d): %w", i, e.Row, e.Col, ErrEntryRange)
		}
		if math.IsNaN(e.Val) || math.IsInf(e.Val, 0) {
			return nil, nil, fmt.Errorf("Build: entry %d at (%d,%d): %w", i, e.Row, e.Col, ErrNonFiniteWeight)
		}
	}

	// --- Stage 2: allocate the node set ---
	n := max(m.Rows, m.Cols)
	g := &Graph{
		n:        n,
		directed: o.directed,
		adj:      make([]map[int]float64, n),
	}
	rep := &BuildReport{}

	// --- Stage 3: populate deterministically, first-seen-wins ---
	seen := make(map[pairKey]struct{}, len(m.Entries))
	var u, v int
	var w float64
	for i := range m.Entries {
		u, v, w = m.Entries[i].Row, m.Entries[i].Col, m.Entries[i].Val

		if u == v {
			rep.SelfLoops++
			continue
		}

		if !o.directed {
			key := unorderedPair(u, v)
			if _, dup := seen[key]; dup {
				rep.DuplicatesMerged++
				continue
			}
			seen[key] = struct{}{}
			g.setAdj(u, v, w)
			g.setAdj(v, u, w)
			g.edges++
			continue
		}

		key := orderedPair(u, v)
		if _, dup := seen[key]; dup {
			rep.DuplicatesMerged++
		} else {
			seen[key] = struct{}{}
			g.setAdj(u, v, w)
			g.edges++
		}

		// Symmetric storage: the transposed arc is implied by the format.
		if m.Symmetric {
			mirror := orderedPair(v, u)
			if _, dup := seen[mirror]; !dup {
				seen[mirror] = struct{}{}
				g.setAdj(v, u, w)
				g.edges++
				rep.MirroredEntries++
			}
		}
	}

	return g, rep, nil
}

// setAdj writes one adjacency cell, creating the neighbor map lazily so
// isolated nodes cost one nil slice slot and nothing more.
func (g *Graph) setAdj(u, v int, w float64) {
	if g.adj[u] == nil {
		g.adj[u] = make(map[int]float64, 4)
	}
	g.adj[u][v] = w
}
