// SPDX-License-Identifier: MIT
// Package codec: the compact COO strategy ("SNAC").

package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/mtx"
)

// Frame layout constants for the sparse strategy. The header is
// magic(4) + version(1) + flags(1) + rows(4) + cols(4) + nnz(8),
// followed by nnz fixed-width records of row(4) + col(4) + bits(8),
// all multi-byte fields little-endian.
const (
	magicSparse = "SNAC"

	// codecVersion is shared by both strategies; bump it when a frame
	// layout changes incompatibly.
	codecVersion = 1

	// flagSymmetric marks matrices whose source declared symmetric storage.
	flagSymmetric byte = 1 << 0

	sparseHeaderSize = 4 + 1 + 1 + 4 + 4 + 8
	sparseRecordSize = 4 + 4 + 8
)

// Encode serializes m into the sparse "SNAC" frame.
//
// Implementation:
//   - Stage 1: Reject nil, invalid matrices (m.Check) and dimensions that
//     overflow the frame's uint32 fields.
//   - Stage 2: Append header fields into one pre-sized buffer.
//   - Stage 3: Append one 16-byte record per entry, in entry order.
//
// Behavior highlights:
//   - Lossless: Decode(Encode(m)).Equal(m) holds exactly, duplicate
//     entries and their order included, values at full float64 precision.
//   - The symmetric-storage flag rides in the header flags byte.
//
// Complexity: O(nnz) time, one allocation of header+records bytes.
func Encode(m *mtx.SparseMatrix) ([]byte, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if err := m.Check(); err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}
	if uint64(m.Rows) > math.MaxUint32 || uint64(m.Cols) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %dx%d exceeds uint32 dimensions", ErrBadShape, m.Rows, m.Cols)
	}

	buf := make([]byte, 0, sparseHeaderSize+len(m.Entries)*sparseRecordSize)
	buf = append(buf, magicSparse...)
	buf = append(buf, codecVersion)
	var flags byte
	if m.Symmetric {
		flags |= flagSymmetric
	}
	buf = append(buf, flags)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(m.Rows))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(m.Cols))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(m.Entries)))

	for i := range m.Entries {
		e := m.Entries[i]
		buf = binary.LittleEndian.AppendUint32(buf, uint32(e.Row))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(e.Col))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(e.Val))
	}

	return buf, nil
}

// decodeSparse rebuilds a matrix from a "SNAC" frame. The caller has
// already matched the magic; everything past it is untrusted.
func decodeSparse(payload []byte) (*mtx.SparseMatrix, error) {
	if len(payload) < sparseHeaderSize {
		return nil, fmt.Errorf("%w: sparse header truncated at %d bytes", ErrCorrupt, len(payload))
	}
	if v := payload[4]; v != codecVersion {
		return nil, fmt.Errorf("%w: sparse version %d, want %d", ErrCorrupt, v, codecVersion)
	}
	flags := payload[5]
	rows := int(binary.LittleEndian.Uint32(payload[6:10]))
	cols := int(binary.LittleEndian.Uint32(payload[10:14]))
	nnz := binary.LittleEndian.Uint64(payload[14:22])

	// Length must match the declared record count exactly. Checking before
	// allocating keeps a hostile header from forcing a huge make.
	body := payload[sparseHeaderSize:]
	if want := nnz * sparseRecordSize; uint64(len(body)) != want || nnz > math.MaxUint64/sparseRecordSize {
		return nil, fmt.Errorf("%w: sparse frame declares %d records (%d bytes), body holds %d bytes",
			ErrCorrupt, nnz, nnz*sparseRecordSize, len(body))
	}

	entries := make([]mtx.Entry, 0, int(nnz))
	for off := 0; off < len(body); off += sparseRecordSize {
		rec := body[off : off+sparseRecordSize]
		r := int(binary.LittleEndian.Uint32(rec[0:4]))
		c := int(binary.LittleEndian.Uint32(rec[4:8]))
		if r >= rows || c >= cols {
			return nil, fmt.Errorf("%w: record at offset %d addresses (%d,%d) outside %dx%d",
				ErrCorrupt, off, r, c, rows, cols)
		}
		entries = append(entries, mtx.Entry{
			Row: r,
			Col: c,
			Val: math.Float64frombits(binary.LittleEndian.Uint64(rec[8:16])),
		})
	}

	m := &mtx.SparseMatrix{
		Rows:      rows,
		Cols:      cols,
		Symmetric: flags&flagSymmetric != 0,
		Entries:   entries,
	}
	if err := m.Check(); err != nil {
		return nil, fmt.Errorf("%w: decoded matrix invalid: %v", ErrCorrupt, err)
	}

	return m, nil
}
