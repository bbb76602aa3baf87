// Package validate: the diagnosis entry point.

package validate

import (
	"fmt"
	"math"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/mtx"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/network"
)

// Validate diagnoses a parsed matrix and the graph built from it.
//
// The matrix answers the symmetry and self-loop questions (they are
// properties of the stored entries, some already filtered out of the
// graph); the graph answers connectivity. Both views describe the same
// upload, so callers pass the pair the session holds.
//
// Nil inputs yield a zero Report: validation runs strictly after a
// successful parse and build.
//
// Complexity: O(E) for the entry scan, O(N + E) for components.
func Validate(m *mtx.SparseMatrix, g *network.Graph, opts ...Option) *Report {
	rep := &Report{}
	if m == nil || g == nil {
		return rep
	}
	o := gatherOptions(opts...)

	rep.SelfLoops = countDiagonal(m)
	rep.Symmetric = m.Symmetric || symmetricEntries(m, o.tol)
	rep.Components = Components(g)
	rep.Connected = rep.Components == 1

	// Fixed warning order keeps the summary stable across runs.
	if !rep.Symmetric {
		rep.Warnings = append(rep.Warnings, Warning{
			Code:   WarnAsymmetric,
			Detail: "matrix is not symmetric; the undirected reading may distort results",
		})
	}
	if rep.SelfLoops > 0 {
		rep.Warnings = append(rep.Warnings, Warning{
			Code:   WarnSelfLoops,
			Detail: fmt.Sprintf("%d self-loop entries removed from the edge set", rep.SelfLoops),
		})
	}
	if !rep.Connected {
		rep.Warnings = append(rep.Warnings, Warning{
			Code:   WarnDisconnected,
			Detail: fmt.Sprintf("graph splits into %d components", rep.Components),
		})
	}

	return rep
}

// coord keys one off-diagonal cell.
type coord struct{ r, c int }

// symmetricEntries checks that every off-diagonal entry has a transposed
// partner within tolerance. Duplicate entries at the same cell follow the
// builder's rule: the first occurrence speaks for the cell. The scan is a
// set comparison, so input order cannot change the verdict.
func symmetricEntries(m *mtx.SparseMatrix, tol float64) bool {
	vals := make(map[coord]float64, len(m.Entries))
	var e mtx.Entry
	for i := range m.Entries {
		e = m.Entries[i]
		if e.Row == e.Col {
			continue
		}
		k := coord{r: e.Row, c: e.Col}
		if _, dup := vals[k]; !dup {
			vals[k] = e.Val
		}
	}

	for k, v := range vals {
		partner, ok := vals[coord{r: k.c, c: k.r}]
		if !ok || !within(v, partner, tol) {
			return false
		}
	}

	return true
}

// countDiagonal counts stored entries with row == col, duplicates included,
// matching what the builder excludes.
func countDiagonal(m *mtx.SparseMatrix) int {
	loops := 0
	for i := range m.Entries {
		if m.Entries[i].Row == m.Entries[i].Col {
			loops++
		}
	}

	return loops
}

// within applies the scaled tolerance rule from DefaultTolerance's doc.
func within(a, b, tol float64) bool {
	scale := 1.0
	if v := math.Abs(a); v > scale {
		scale = v
	}
	if v := math.Abs(b); v > scale {
		scale = v
	}

	return math.Abs(a-b) <= tol*scale
}
