package sieve_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gaussmoat/gint"
	"github.com/katalvlaran/gaussmoat/sieve"
)

// bruteQuadrant lists first-quadrant representatives (a > 0, b ≥ 0) of
// norm ≤ x that pass the trial-division oracle, sorted by gint.Less.
func bruteQuadrant(x int64) []gint.Gint {
	var out []gint.Gint
	for a := int64(1); a*a <= x; a++ {
		for b := int64(0); a*a+b*b <= x; b++ {
			if g := gint.New(a, b); gint.IsPrime(g) {
				out = append(out, g)
			}
		}
	}
	gint.Sort(out)
	return out
}

// TestOctant_MatchesOracle compares the sieve with trial division.
func TestOctant_MatchesOracle(t *testing.T) {
	for _, x := range []int64{0, 1, 2, 3, 5, 49, 50, 51, 200, 1000, 4099} {
		res, err := sieve.Octant(x)
		require.NoError(t, err, "x=%d", x)
		want := bruteQuadrant(x)
		if diff := cmp.Diff(want, res.Primes(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Octant(%d) primes mismatch (-want +got):\n%s", x, diff)
		}
		assert.Equal(t, int64(len(want)), res.Count(), "Count(%d)", x)
	}
}

// TestOctant_NoProperDivisor re-checks every reported prime by trial division.
func TestOctant_NoProperDivisor(t *testing.T) {
	res, err := sieve.Octant(3000)
	require.NoError(t, err)
	for _, p := range res.Primes() {
		for c := int64(-55); c <= 55; c++ {
			for d := int64(-55); d <= 55; d++ {
				h := gint.New(c, d)
				n := h.Norm()
				if n <= 1 || n >= p.Norm() {
					continue
				}
				if p.DivisibleBy(h) {
					t.Fatalf("%v reported prime but divisible by %v", p, h)
				}
			}
		}
	}
}

// TestOctant_Norm50 pins the reference counts for norm ≤ 50.
func TestOctant_Norm50(t *testing.T) {
	res, err := sieve.Octant(50)
	require.NoError(t, err)

	wantOctant := []gint.Gint{
		{A: 1, B: 1}, {A: 2, B: 1}, {A: 3, B: 0}, {A: 3, B: 2}, {A: 4, B: 1},
		{A: 5, B: 2}, {A: 5, B: 4}, {A: 6, B: 1}, {A: 7, B: 0},
	}
	if diff := cmp.Diff(wantOctant, res.ScanOrder()); diff != "" {
		t.Errorf("octant representatives mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(15), res.Count())
	assert.Len(t, res.Primes(), 15)
}

// TestOctant_Reflection checks (b, a) accompanies every off-diagonal prime
// and that 1+i appears exactly once.
func TestOctant_Reflection(t *testing.T) {
	res, err := sieve.Octant(2500)
	require.NoError(t, err)
	primes := res.Primes()

	seen := make(map[gint.Gint]int, len(primes))
	for _, p := range primes {
		seen[p]++
	}
	for p, n := range seen {
		require.Equal(t, 1, n, "%v reported %d times", p, n)
		if p.B != 0 && p.A != p.B {
			assert.Equal(t, 1, seen[gint.New(p.B, p.A)], "missing reflection of %v", p)
		}
	}
	assert.Equal(t, 1, seen[gint.New(1, 1)])

	for i := 1; i < len(primes); i++ {
		require.True(t, primes[i-1].Less(primes[i]), "order broken at %d", i)
	}
}

// TestOctant_SmallBounds covers bounds below the first prime.
func TestOctant_SmallBounds(t *testing.T) {
	for _, x := range []int64{0, 1} {
		res, err := sieve.Octant(x)
		require.NoError(t, err)
		assert.Empty(t, res.Primes())
		assert.Zero(t, res.Count())
	}
	res, err := sieve.Octant(2)
	require.NoError(t, err)
	assert.Equal(t, []gint.Gint{{A: 1, B: 1}}, res.Primes())
}

// TestOctant_Lookup exercises Covers and IsPrime on symmetric images.
func TestOctant_Lookup(t *testing.T) {
	res, err := sieve.Octant(100)
	require.NoError(t, err)

	assert.True(t, res.IsPrime(gint.New(2, 1)))
	assert.True(t, res.IsPrime(gint.New(-1, 2)))
	assert.True(t, res.IsPrime(gint.New(0, -7)))
	assert.False(t, res.IsPrime(gint.New(5, 0)))
	assert.False(t, res.IsPrime(gint.New(1, 0)))

	assert.True(t, res.Covers(gint.New(-6, 8)))
	assert.False(t, res.Covers(gint.New(10, 1)))
	assert.False(t, res.IsPrime(gint.New(10, 1)), "outside the region reads false")
	assert.Equal(t, sieve.KindOctant, res.Kind())
}

// TestOctant_Errors covers invalid bounds, options, and the cell limit.
func TestOctant_Errors(t *testing.T) {
	_, err := sieve.Octant(-1)
	assert.True(t, errors.Is(err, sieve.ErrInvalidRegion), "got %v", err)

	_, err = sieve.Octant(sieve.MaxNorm + 1)
	assert.True(t, errors.Is(err, sieve.ErrInvalidRegion), "got %v", err)

	_, err = sieve.Octant(100, sieve.WithMaxCells(0))
	assert.True(t, errors.Is(err, sieve.ErrOptionViolation), "got %v", err)

	_, err = sieve.Octant(1_000_000, sieve.WithMaxCells(1000))
	assert.True(t, errors.Is(err, sieve.ErrRegionTooLarge), "got %v", err)
}

// TestHugeBoundsRejected checks the largest accepted norm with default
// options fails with a resource error instead of allocating.
func TestHugeBoundsRejected(t *testing.T) {
	_, err := sieve.Octant(sieve.MaxNorm)
	require.ErrorIs(t, err, sieve.ErrRegionTooLarge)

	_, err = sieve.Sector(sieve.MaxNorm, 0, math.Pi/2)
	require.ErrorIs(t, err, sieve.ErrRegionTooLarge)

	d, err := sieve.NewDonut()
	require.NoError(t, err)
	_, err = d.Grow(sieve.MaxNorm)
	require.ErrorIs(t, err, sieve.ErrRegionTooLarge)
	require.Zero(t, d.Bound())

	_, err = sieve.Block(-sieve.MaxCoord, -sieve.MaxCoord, 1<<30, 1<<30)
	require.ErrorIs(t, err, sieve.ErrRegionTooLarge)
}
