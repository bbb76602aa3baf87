// SPDX-License-Identifier: MIT

// Package mtx: canonical coordinate-text emission.

package mtx

import (
	"bytes"
	"strconv"
)

// Format renders a SparseMatrix as Matrix Market coordinate text: banner,
// size line, then one 1-based "row col value" line per entry in stored order.
//
// Behavior highlights:
//   - The banner field is always "real" (values are always written, full
//     float64 precision via %g/-1), symmetry mirrors m.Symmetric.
//   - Format(Parse(x)) is canonical, not byte-identical to x: comments,
//     pattern fields and spacing are normalized away. Parse(Format(m))
//     always Equals m up to the pattern→real field promotion.
//
// Complexity:
//   - Time O(nnz), Space O(output).
func Format(m *SparseMatrix) []byte {
	if m == nil {
		return nil
	}

	var buf bytes.Buffer
	buf.WriteString("%%MatrixMarket matrix coordinate real ")
	if m.Symmetric {
		buf.WriteString(symSymmetric)
	} else {
		buf.WriteString(symGeneral)
	}
	buf.WriteByte('\n')

	buf.WriteString(strconv.Itoa(m.Rows))
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(m.Cols))
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(len(m.Entries)))
	buf.WriteByte('\n')

	for i := range m.Entries {
		e := m.Entries[i]
		buf.WriteString(strconv.Itoa(e.Row + 1))
		buf.WriteByte(' ')
		buf.WriteString(strconv.Itoa(e.Col + 1))
		buf.WriteByte(' ')
		buf.WriteString(strconv.FormatFloat(e.Val, 'g', -1, 64))
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}
