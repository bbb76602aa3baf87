// SPDX-License-Identifier: MIT
// Package codec_test: frame round-trips and corruption handling.

package codec_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/codec"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/mtx"
)

// fixture returns a matrix exercising the awkward cases: duplicates,
// an explicit zero, unsorted order, a negative weight.
func fixture() *mtx.SparseMatrix {
	return &mtx.SparseMatrix{
		Rows: 4,
		Cols: 3,
		Entries: []mtx.Entry{
			{Row: 2, Col: 1, Val: -3.5},
			{Row: 0, Col: 1, Val: 1.0},
			{Row: 0, Col: 1, Val: 7.0}, // duplicate of the previous cell
			{Row: 3, Col: 0, Val: 0.0}, // explicit zero
			{Row: 1, Col: 2, Val: 0.30000000000000004},
		},
	}
}

// TestSparseRoundTrip_Exact pins the lossless law: duplicates, order,
// explicit zeros and full float64 precision all survive.
func TestSparseRoundTrip_Exact(t *testing.T) {
	m := fixture()

	payload, err := codec.Encode(m)
	require.NoError(t, err)                      // encoding a valid matrix must succeed
	require.Equal(t, "SNAC", string(payload[:4])) // primary frame magic

	got, err := codec.Decode(payload)
	require.NoError(t, err)
	require.True(t, got.Equal(m)) // exact: same dims, same entry list, same order
}

// TestSparseRoundTrip_SymmetricFlag checks the flags byte carries the
// symmetric-storage declaration.
func TestSparseRoundTrip_SymmetricFlag(t *testing.T) {
	m := &mtx.SparseMatrix{Rows: 2, Cols: 2, Symmetric: true, Entries: []mtx.Entry{
		{Row: 1, Col: 0, Val: 2.0},
	}}

	payload, err := codec.Encode(m)
	require.NoError(t, err)

	got, err := codec.Decode(payload)
	require.NoError(t, err)
	require.True(t, got.Symmetric) // declaration must survive the frame
	require.True(t, got.Equal(m))
}

// TestSparseRoundTrip_Empty covers the header-only frame.
func TestSparseRoundTrip_Empty(t *testing.T) {
	m := &mtx.SparseMatrix{Rows: 0, Cols: 0}

	payload, err := codec.Encode(m)
	require.NoError(t, err)

	got, err := codec.Decode(payload)
	require.NoError(t, err)
	require.Equal(t, 0, got.NNZ())
	require.True(t, got.Equal(m))
}

// TestDenseRoundTrip checks the fallback format on a duplicate-free,
// zero-free matrix: cell values pass through untouched.
func TestDenseRoundTrip(t *testing.T) {
	m := &mtx.SparseMatrix{
		Rows: 3,
		Cols: 3,
		Entries: []mtx.Entry{
			{Row: 0, Col: 1, Val: 1.5},
			{Row: 1, Col: 0, Val: 1.5},
			{Row: 2, Col: 2, Val: -0.25},
		},
	}

	payload, err := codec.EncodeDense(m)
	require.NoError(t, err)
	require.Equal(t, "SNAD", string(payload[:4])) // fallback frame magic

	got, err := codec.Decode(payload)
	require.NoError(t, err)
	require.True(t, got.Equal(m)) // fixture is row-major sorted, so even order matches
}

// TestDense_LossyByConstruction documents the two dense losses: a later
// duplicate overwrites the cell, and explicit zeros vanish.
func TestDense_LossyByConstruction(t *testing.T) {
	m := &mtx.SparseMatrix{Rows: 2, Cols: 2, Entries: []mtx.Entry{
		{Row: 0, Col: 0, Val: 1.0},
		{Row: 0, Col: 0, Val: 5.0}, // overwrites the 1.0
		{Row: 1, Col: 1, Val: 0.0}, // vanishes
	}}

	payload, err := codec.EncodeDense(m)
	require.NoError(t, err)

	got, err := codec.Decode(payload)
	require.NoError(t, err)
	require.Equal(t, 1, got.NNZ())
	require.Equal(t, mtx.Entry{Row: 0, Col: 0, Val: 5.0}, got.Entries[0])
}

// TestDense_RejectsZeroDims pins the dense encoder's shape guard.
func TestDense_RejectsZeroDims(t *testing.T) {
	_, err := codec.EncodeDense(&mtx.SparseMatrix{Rows: 0, Cols: 3})
	require.ErrorIs(t, err, codec.ErrBadShape)
}

// TestEncode_Guards covers the encode-side failure modes.
func TestEncode_Guards(t *testing.T) {
	_, err := codec.Encode(nil)
	require.ErrorIs(t, err, codec.ErrNilMatrix)

	_, err = codec.EncodeDense(nil)
	require.ErrorIs(t, err, codec.ErrNilMatrix)

	// Out-of-bounds entry: Check runs before any bytes are written.
	bad := &mtx.SparseMatrix{Rows: 2, Cols: 2, Entries: []mtx.Entry{{Row: 5, Col: 0, Val: 1}}}
	_, err = codec.Encode(bad)
	require.ErrorIs(t, err, mtx.ErrIndexRange)

	// Non-finite weight.
	nan := &mtx.SparseMatrix{Rows: 1, Cols: 1, Entries: []mtx.Entry{{Row: 0, Col: 0, Val: math.NaN()}}}
	_, err = codec.Encode(nan)
	require.ErrorIs(t, err, mtx.ErrValue)
}

// TestDecode_Unrecognized checks the no-strategy path, including the
// realistic accident of a raw coordinate-text payload.
func TestDecode_Unrecognized(t *testing.T) {
	cases := []struct {
		name    string
		payload []byte
	}{
		{"Nil", nil},
		{"Empty", []byte{}},
		{"Junk", []byte("junk bytes")},
		{"RawMatrixText", []byte("%%MatrixMarket matrix coordinate real general\n1 1 0\n")},
		{"ShortMagic", []byte("SN")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.Decode(tc.payload)
			require.ErrorIs(t, err, codec.ErrUndecodable)
			require.NotErrorIs(t, err, codec.ErrCorrupt) // unrecognized, not corrupt
		})
	}
}

// TestDecode_CorruptSparse mutates a valid frame one defect at a time.
func TestDecode_CorruptSparse(t *testing.T) {
	valid := func(t *testing.T) []byte {
		t.Helper()
		payload, err := codec.Encode(fixture())
		require.NoError(t, err)

		return payload
	}

	t.Run("TruncatedHeader", func(t *testing.T) {
		_, err := codec.Decode(valid(t)[:10])
		require.ErrorIs(t, err, codec.ErrCorrupt)
	})

	t.Run("VersionMismatch", func(t *testing.T) {
		p := valid(t)
		p[4] = 9
		_, err := codec.Decode(p)
		require.ErrorIs(t, err, codec.ErrCorrupt)
		require.ErrorContains(t, err, "version 9")
	})

	t.Run("TruncatedRecords", func(t *testing.T) {
		p := valid(t)
		_, err := codec.Decode(p[:len(p)-8])
		require.ErrorIs(t, err, codec.ErrCorrupt)
	})

	t.Run("TrailingBytes", func(t *testing.T) {
		p := append(valid(t), 0xde, 0xad)
		_, err := codec.Decode(p)
		require.ErrorIs(t, err, codec.ErrCorrupt)
	})

	t.Run("IndexOutOfRange", func(t *testing.T) {
		p := valid(t)
		// First record's row field sits right after the 22-byte header.
		binary.LittleEndian.PutUint32(p[22:26], 99)
		_, err := codec.Decode(p)
		require.ErrorIs(t, err, codec.ErrCorrupt)
		require.ErrorContains(t, err, "(99,")
	})

	t.Run("NonFiniteBits", func(t *testing.T) {
		p := valid(t)
		// First record's value bits: header(22) + row(4) + col(4).
		binary.LittleEndian.PutUint64(p[30:38], math.Float64bits(math.NaN()))
		_, err := codec.Decode(p)
		require.ErrorIs(t, err, codec.ErrCorrupt)
	})

	// A damaged sparse frame must not be retried as dense.
	t.Run("NoFallthrough", func(t *testing.T) {
		p := valid(t)
		p[4] = 9
		_, err := codec.Decode(p)
		require.NotErrorIs(t, err, codec.ErrUndecodable)
	})
}

// TestDecode_CorruptDense covers the dense strategy's guard rails.
func TestDecode_CorruptDense(t *testing.T) {
	t.Run("TruncatedHeader", func(t *testing.T) {
		_, err := codec.Decode([]byte("SNAD\x01"))
		require.ErrorIs(t, err, codec.ErrCorrupt)
	})

	t.Run("VersionMismatch", func(t *testing.T) {
		_, err := codec.Decode([]byte{'S', 'N', 'A', 'D', 7, 0})
		require.ErrorIs(t, err, codec.ErrCorrupt)
	})

	t.Run("GarbageBody", func(t *testing.T) {
		_, err := codec.Decode(append([]byte{'S', 'N', 'A', 'D', 1, 0}, []byte("not a gonum body")...))
		require.ErrorIs(t, err, codec.ErrCorrupt)
	})
}

// TestDecode_Idempotent re-decodes the same payload and expects identical
// results: decoding never mutates its input.
func TestDecode_Idempotent(t *testing.T) {
	payload, err := codec.Encode(fixture())
	require.NoError(t, err)

	a, err := codec.Decode(payload)
	require.NoError(t, err)
	b, err := codec.Decode(payload)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}
