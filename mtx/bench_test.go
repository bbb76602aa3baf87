package mtx_test

import (
	"testing"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/mtx"
)

// BenchmarkParse measures coordinate-text ingestion on a mid-size fixture
// (K_64: 4032 entries), the dominant cost of an upload.
func BenchmarkParse(b *testing.B) {
	m, err := mtx.GenComplete(64)
	if err != nil {
		b.Fatal(err)
	}
	src := mtx.Format(m)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mtx.Parse(src); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFormat measures canonical emission of the same fixture.
func BenchmarkFormat(b *testing.B) {
	m, err := mtx.GenComplete(64)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if out := mtx.Format(m); len(out) == 0 {
			b.Fatal("empty output")
		}
	}
}
