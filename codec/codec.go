// SPDX-License-Identifier: MIT
// Package codec: the ordered decode entry point.

package codec

import (
	"bytes"
	"fmt"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/mtx"
)

// strategy pairs a frame magic with its decoder.
type strategy struct {
	name  string
	magic []byte
	run   func([]byte) (*mtx.SparseMatrix, error)
}

// strategies is the ordered decode table: compact COO first, dense second.
// Order matters only for documentation; the magics are disjoint.
var strategies = []strategy{
	{name: "sparse", magic: []byte(magicSparse), run: decodeSparse},
	{name: "dense", magic: []byte(magicDense), run: decodeDense},
}

// Decode rebuilds a matrix from payload, trying each strategy in order.
//
// Behavior highlights:
//   - The first strategy whose magic prefixes the payload is authoritative:
//     its failure surfaces as ErrCorrupt and no later strategy runs, so a
//     damaged frame is never misread as a different format.
//   - A payload no strategy recognizes returns ErrUndecodable with the
//     leading bytes quoted for the log line.
func Decode(payload []byte) (*mtx.SparseMatrix, error) {
	for _, s := range strategies {
		if bytes.HasPrefix(payload, s.magic) {
			return s.run(payload)
		}
	}

	head := payload
	if len(head) > 4 {
		head = head[:4]
	}

	return nil, fmt.Errorf("%w: leading bytes %q", ErrUndecodable, head)
}
