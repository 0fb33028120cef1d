package sieve_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gaussmoat/sieve"
)

// ExampleOctant lists the first-quadrant Gaussian primes of norm ≤ 20.
// Scenario:
//
//   - 1+i (norm 2) appears once; it is its own reflection.
//   - 3 (norm 9) lies on the axis and is not reflected.
//   - 2+i and 1+2i are distinct classes with norm 5.
func ExampleOctant() {
	res, _ := sieve.Octant(20)
	fmt.Println("octant:", res.ScanOrder())
	fmt.Println("primes:", res.Primes())
	fmt.Println("count:", res.Count())

	// Output:
	// octant: [1+1i 2+1i 3+0i 3+2i 4+1i]
	// primes: [1+1i 1+2i 2+1i 3+0i 2+3i 3+2i 1+4i 4+1i]
	// count: 8
}

// ExampleDonut grows a ring in two steps; each step returns only new primes.
func ExampleDonut() {
	d, _ := sieve.NewDonut()
	first, _ := d.Grow(10)
	second, _ := d.Grow(20)
	fmt.Println(first.Primes(), second.Primes(), d.Bound())

	// Output:
	// [1+1i 1+2i 2+1i 3+0i] [2+3i 3+2i 1+4i 4+1i] 20
}

// ExampleSector keeps the primes with argument in [π/4, π/2).
func ExampleSector() {
	res, _ := sieve.Sector(20, math.Pi/4, math.Pi/2)
	fmt.Println(res.Primes())

	// Output:
	// [1+1i 1+2i 2+3i 1+4i]
}

// ExampleBlock sieves the window [4, 7) × [0, 3).
func ExampleBlock() {
	res, _ := sieve.Block(4, 0, 3, 3)
	fmt.Println(res.ScanOrder())

	// Output:
	// [4+1i 5+2i 6+1i]
}
