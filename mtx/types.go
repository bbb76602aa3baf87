// SPDX-License-Identifier: MIT

// Package mtx: core data types for coordinate-format matrices.
// SparseMatrix is the hand-off value between the parser, the codec and the
// network builder: a dumb, ordered triplet list with declared dimensions.

package mtx

import (
	"math"
	"sort"
)

// Entry is one coordinate triplet with 0-based indices.
type Entry struct {
	Row int     // 0 ≤ Row < Rows
	Col int     // 0 ≤ Col < Cols
	Val float64 // finite; 1.0 for pattern entries
}

// SparseMatrix is a COO (coordinate) matrix: declared dimensions plus the
// entry list exactly as read. Duplicates are kept, order is kept; nothing is
// merged, mirrored or dropped at this layer.
//
// Invariant (checked by Check, guaranteed by Parse and the generators):
// every entry satisfies 0 ≤ Row < Rows and 0 ≤ Col < Cols.
type SparseMatrix struct {
	Rows, Cols int

	// Symmetric records a "symmetric" banner: the file stores one triangle
	// and the mirrored entries are implied, not materialized. Consumers that
	// mirror (builder, validator) must honor this flag.
	Symmetric bool

	Entries []Entry
}

// NNZ returns the stored entry count (duplicates included).
func (m *SparseMatrix) NNZ() int { return len(m.Entries) }

// Clone returns a deep copy; mutating the clone never touches the original.
func (m *SparseMatrix) Clone() *SparseMatrix {
	if m == nil {
		return nil
	}
	cp := &SparseMatrix{Rows: m.Rows, Cols: m.Cols, Symmetric: m.Symmetric}
	if m.Entries != nil {
		cp.Entries = make([]Entry, len(m.Entries))
		copy(cp.Entries, m.Entries)
	}

	return cp
}

// Equal reports exact structural equality: same dimensions, same symmetry
// flag, same entries in the same order with bit-identical values. This is the
// equality the encode/decode round-trip law is stated in.
func (m *SparseMatrix) Equal(o *SparseMatrix) bool {
	return m.equalWithin(o, 0)
}

// EqualWithin is Equal with a value tolerance: entries must line up
// positionally, values may differ by at most tol·max(1,|a|,|b|).
// Used to compare against lossy payload paths (dense fallback).
func (m *SparseMatrix) EqualWithin(o *SparseMatrix, tol float64) bool {
	return m.equalWithin(o, tol)
}

func (m *SparseMatrix) equalWithin(o *SparseMatrix, tol float64) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.Rows != o.Rows || m.Cols != o.Cols || m.Symmetric != o.Symmetric {
		return false
	}
	if len(m.Entries) != len(o.Entries) {
		return false
	}
	var a, b Entry
	for i := range m.Entries {
		a, b = m.Entries[i], o.Entries[i]
		if a.Row != b.Row || a.Col != b.Col {
			return false
		}
		if tol == 0 {
			if a.Val != b.Val {
				return false
			}
			continue
		}
		if !withinTol(a.Val, b.Val, tol) {
			return false
		}
	}

	return true
}

// Canonicalize returns a clone whose entries are stably sorted by (Row, Col).
// Duplicates survive in their original relative order. Dense decoding emits
// canonical order, so canonical forms are what cross-strategy comparisons use.
func (m *SparseMatrix) Canonicalize() *SparseMatrix {
	cp := m.Clone()
	if cp == nil {
		return nil
	}
	sort.SliceStable(cp.Entries, func(i, j int) bool {
		if cp.Entries[i].Row != cp.Entries[j].Row {
			return cp.Entries[i].Row < cp.Entries[j].Row
		}

		return cp.Entries[i].Col < cp.Entries[j].Col
	})

	return cp
}

// Check verifies the structural invariant: non-negative dimensions, every
// entry inside declared bounds, every value finite. Decoded payloads run
// through this before they are trusted.
func (m *SparseMatrix) Check() error {
	if m.Rows < 0 || m.Cols < 0 {
		return ErrBadShape
	}
	if len(m.Entries) > 0 && (m.Rows == 0 || m.Cols == 0) {
		return ErrBadShape
	}
	for i := range m.Entries {
		e := m.Entries[i]
		if e.Row < 0 || e.Row >= m.Rows || e.Col < 0 || e.Col >= m.Cols {
			return ErrIndexRange
		}
		if isNonFinite(e.Val) {
			return ErrValue
		}
	}

	return nil
}

// withinTol implements the package-wide tolerance rule: absolute for small
// magnitudes, relative for large ones.
func withinTol(a, b, tol float64) bool {
	scale := 1.0
	if abs := math.Abs(a); abs > scale {
		scale = abs
	}
	if abs := math.Abs(b); abs > scale {
		scale = abs
	}

	return math.Abs(a-b) <= tol*scale
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
