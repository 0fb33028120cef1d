package sieve_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gaussmoat/sieve"
)

// BenchmarkOctant measures a full octant pass to norm 10^6.
// Complexity: O(x·log log x)
func BenchmarkOctant(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := sieve.Octant(1_000_000); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDonutGrow measures ten equal growth steps to norm 10^6.
func BenchmarkDonutGrow(b *testing.B) {
	for i := 0; i < b.N; i++ {
		d, _ := sieve.NewDonut()
		for to := int64(100_000); to <= 1_000_000; to += 100_000 {
			if _, err := d.Grow(to); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkSector measures a 0.1 rad sector to norm 10^6.
func BenchmarkSector(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := sieve.Sector(1_000_000, math.Pi/8, math.Pi/8+0.1); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBlock measures a 256×256 window far from the origin.
func BenchmarkBlock(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := sieve.Block(100_000, 50_000, 256, 256); err != nil {
			b.Fatal(err)
		}
	}
}
