// SPDX-License-Identifier: MIT

package codec_test

import (
	"testing"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/codec"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/mtx"
)

// benchMatrix is a dense-ish complete graph, ~4k entries.
func benchMatrix(b *testing.B) *mtx.SparseMatrix {
	b.Helper()
	m, err := mtx.GenComplete(64)
	if err != nil {
		b.Fatalf("GenComplete: %v", err)
	}

	return m
}

func BenchmarkEncode(b *testing.B) {
	m := benchMatrix(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.Encode(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	payload, err := codec.Encode(benchMatrix(b))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.Decode(payload); err != nil {
			b.Fatal(err)
		}
	}
}
