// Package network: sentinel error set. Tests must match these via errors.Is;
// wrap with fmt.Errorf("ctx: %w", ErrX) when context is essential.

package network

import "errors"

var (
	// ErrNilMatrix is returned when Build receives a nil SparseMatrix.
	ErrNilMatrix = errors.New("network: nil matrix")

	// ErrEntryRange signals an entry outside the matrix's declared
	// dimensions. The parser guarantees this cannot happen for parsed
	// input; Build re-checks because matrices also arrive from decoded
	// payloads and hand-built fixtures.
	ErrEntryRange = errors.New("network: entry outside declared dimensions")

	// ErrNonFiniteWeight signals a NaN or ±Inf entry value at build time.
	ErrNonFiniteWeight = errors.New("network: non-finite edge weight")

	// ErrUnknownNode signals a node index outside [0, N) passed to a
	// traversal or accessor that reports errors.
	ErrUnknownNode = errors.New("network: node index out of range")
)
