package matrix_test

import (
	"testing"
)

// benchmarkBlockMean measures the quadrant reduction on an n×n matrix.
func benchmarkBlockMean(b *testing.B, n int) {
	m := Sequential(b, n)
	blk, err := m.Block(0, n/2, n/2, n-n/2)
	if err != nil {
		b.Fatalf("Block failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := blk.Mean(); err != nil {
			b.Fatalf("Mean failed: %v", err)
		}
	}
}

// BenchmarkBlockMean_Small covers a ~binder-sized complex.
func BenchmarkBlockMean_Small(b *testing.B) { benchmarkBlockMean(b, 128) }

// BenchmarkBlockMean_Large covers a large target + binder complex.
func BenchmarkBlockMean_Large(b *testing.B) { benchmarkBlockMean(b, 1024) }
