// SPDX-License-Identifier: MIT

// Package mtx: deterministic synthetic matrices.
// Fixtures for tests, benchmarks and the CLI `generate` command. Every
// generator emits a square matrix with BOTH triangles stored (general
// banner), unit weights and no diagonal entries, so the validator sees true
// entry-level symmetry and the builder's dedup path gets exercised.

package mtx

import (
	"fmt"
	"math/rand"
)

// unitWeight is the value every generated entry carries.
const unitWeight = 1.0

// defaultGenSeed replaces seed==0 so "unseeded" runs stay reproducible.
const defaultGenSeed int64 = 1

// GenPath returns the n-node path 0-1-2-…-(n-1). n must be ≥ 1.
func GenPath(n int) (*SparseMatrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("GenPath: n must be ≥ 1, got %d: %w", n, ErrBadShape)
	}
	m := newGen(n, 2*(n-1))
	for i := 0; i < n-1; i++ {
		m.mirror(i, i+1)
	}

	return m, nil
}

// GenCycle returns the n-cycle. n must be ≥ 3.
func GenCycle(n int) (*SparseMatrix, error) {
	if n < 3 {
		return nil, fmt.Errorf("GenCycle: n must be ≥ 3, got %d: %w", n, ErrBadShape)
	}
	m := newGen(n, 2*n)
	for i := 0; i < n; i++ {
		m.mirror(i, (i+1)%n)
	}

	return m, nil
}

// GenStar returns the n-node star with hub 0. n must be ≥ 2.
func GenStar(n int) (*SparseMatrix, error) {
	if n < 2 {
		return nil, fmt.Errorf("GenStar: n must be ≥ 2, got %d: %w", n, ErrBadShape)
	}
	m := newGen(n, 2*(n-1))
	for k := 1; k < n; k++ {
		m.mirror(0, k)
	}

	return m, nil
}

// GenComplete returns K_n. n must be ≥ 1.
func GenComplete(n int) (*SparseMatrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("GenComplete: n must be ≥ 1, got %d: %w", n, ErrBadShape)
	}
	m := newGen(n, n*(n-1))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.mirror(i, j)
		}
	}

	return m, nil
}

// GenRandomSparse returns an Erdős–Rényi style G(n, p) matrix: each unordered
// pair becomes an edge with probability p. seed==0 means defaultGenSeed; the
// same (n, p, seed) always yields the identical matrix.
func GenRandomSparse(n int, p float64, seed int64) (*SparseMatrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("GenRandomSparse: n must be ≥ 1, got %d: %w", n, ErrBadShape)
	}
	if isNonFinite(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("GenRandomSparse: p must be in [0,1], got %v: %w", p, ErrBadShape)
	}

	s := seed
	if s == 0 {
		s = defaultGenSeed
	}
	rng := rand.New(rand.NewSource(s))

	m := newGen(n, 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				m.mirror(i, j)
			}
		}
	}

	return m, nil
}

// newGen allocates an n×n general matrix with room for nnz entries.
func newGen(n, nnz int) *SparseMatrix {
	return &SparseMatrix{Rows: n, Cols: n, Entries: make([]Entry, 0, nnz)}
}

// mirror appends (i,j) and (j,i) with unit weight.
func (m *SparseMatrix) mirror(i, j int) {
	m.Entries = append(m.Entries,
		Entry{Row: i, Col: j, Val: unitWeight},
		Entry{Row: j, Col: i, Val: unitWeight},
	)
}
