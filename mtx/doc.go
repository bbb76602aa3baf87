// SPDX-License-Identifier: MIT

// Package mtx reads and writes sparse matrices in Matrix Market
// coordinate text format and defines the triplet representation the
// rest of the pipeline consumes.
//
// The mtx package provides:
//
//   - Parse: coordinate text → SparseMatrix, with line-exact errors
//     (malformed banner, bad size line, out-of-range index, non-numeric
//     value, truncated file).
//   - Format: SparseMatrix → canonical coordinate text, full float64
//     precision, suitable for fixtures and exports.
//   - Generators (GenPath, GenCycle, GenStar, GenComplete,
//     GenRandomSparse) producing deterministic symmetric matrices for
//     tests, benchmarks and the CLI.
//
// A SparseMatrix is a plain COO triplet list: duplicates and entry
// order are preserved exactly as parsed, so a parse→encode→decode
// round trip reproduces the entry multiset bit for bit. Interpretation
// of duplicates (merge policy, loop handling) belongs to package
// network, not here.
//
// Parsing is pure: no partial matrix ever escapes alongside an error,
// and the same bytes always yield an Equal matrix.
package mtx
