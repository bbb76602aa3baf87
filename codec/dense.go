// SPDX-License-Identifier: MIT
// Package codec: the dense fallback strategy ("SNAD").

package codec

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/mtx"
)

const (
	magicDense = "SNAD"

	// The dense header is magic(4) + version(1) + flags(1); the body is the
	// self-describing mat.Dense binary form.
	denseHeaderSize = 4 + 1 + 1
)

// EncodeDense serializes m as a dense "SNAD" frame wrapping a gonum
// mat.Dense binary body.
//
// The dense form is lossy by construction: duplicate entries collapse to
// the last write at the cell, and explicit zeros are indistinguishable
// from absent cells. It exists as the decode fallback and for payloads
// produced by dense-writing tools; persistent state always uses Encode.
//
// 0-dimension matrices are rejected (ErrBadShape): the dense
// representation has no cells to carry them.
func EncodeDense(m *mtx.SparseMatrix) ([]byte, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if err := m.Check(); err != nil {
		return nil, fmt.Errorf("codec: encode dense: %w", err)
	}
	if m.Rows == 0 || m.Cols == 0 {
		return nil, fmt.Errorf("%w: dense form cannot carry %dx%d", ErrBadShape, m.Rows, m.Cols)
	}

	d := mat.NewDense(m.Rows, m.Cols, nil)
	for i := range m.Entries {
		e := m.Entries[i]
		d.Set(e.Row, e.Col, e.Val)
	}
	body, err := d.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("codec: encode dense: %w", err)
	}

	buf := make([]byte, 0, denseHeaderSize+len(body))
	buf = append(buf, magicDense...)
	buf = append(buf, codecVersion)
	var flags byte
	if m.Symmetric {
		flags |= flagSymmetric
	}
	buf = append(buf, flags)
	buf = append(buf, body...)

	return buf, nil
}

// decodeDense rebuilds a matrix from a "SNAD" frame, collecting nonzero
// cells in row-major order. The caller has already matched the magic.
func decodeDense(payload []byte) (*mtx.SparseMatrix, error) {
	if len(payload) < denseHeaderSize {
		return nil, fmt.Errorf("%w: dense header truncated at %d bytes", ErrCorrupt, len(payload))
	}
	if v := payload[4]; v != codecVersion {
		return nil, fmt.Errorf("%w: dense version %d, want %d", ErrCorrupt, v, codecVersion)
	}
	flags := payload[5]

	var d mat.Dense
	if err := d.UnmarshalBinary(payload[denseHeaderSize:]); err != nil {
		return nil, fmt.Errorf("%w: dense body: %v", ErrCorrupt, err)
	}

	rows, cols := d.Dims()
	var entries []mtx.Entry
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if v := d.At(r, c); v != 0 {
				entries = append(entries, mtx.Entry{Row: r, Col: c, Val: v})
			}
		}
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
