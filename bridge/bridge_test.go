package bridge_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gaussmoat/bridge"
	"github.com/katalvlaran/gaussmoat/sieve"
)

// TestPrimesToNorm checks the three forms agree at norm 50.
func TestPrimesToNorm(t *testing.T) {
	ps, err := bridge.PrimesToNorm(50)
	require.NoError(t, err)
	require.Len(t, ps, 15)
	require.Equal(t, bridge.Pair{A: 1, B: 1}, ps[0])
	require.Equal(t, bridge.Pair{A: 7, B: 0}, ps[len(ps)-1])

	n, err := bridge.PrimesToNormCount(50)
	require.NoError(t, err)
	require.Equal(t, uint64(15), n)

	arr, err := bridge.PrimesToNormAsArray(50)
	require.NoError(t, err)
	require.Len(t, arr, 30)
	for i, p := range ps {
		require.Equal(t, p.A, arr[2*i], "a[%d]", i)
		require.Equal(t, p.B, arr[2*i+1], "b[%d]", i)
	}
}

// TestPrimesInSector checks the upper half of the quadrant to norm 20.
func TestPrimesInSector(t *testing.T) {
	ps, err := bridge.PrimesInSector(20, math.Pi/4, math.Pi/2)
	require.NoError(t, err)
	require.Equal(t, []bridge.Pair{{1, 1}, {1, 2}, {2, 3}, {1, 4}}, ps)

	n, err := bridge.PrimesInSectorCount(20, math.Pi/4, math.Pi/2)
	require.NoError(t, err)
	require.Equal(t, uint64(4), n)

	arr, err := bridge.PrimesInSectorAsArray(20, math.Pi/4, math.Pi/2)
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 1, 1, 2, 2, 3, 1, 4}, arr)
}

// TestPrimesInBlock checks a 3×3 window next to the real axis.
func TestPrimesInBlock(t *testing.T) {
	ps, err := bridge.PrimesInBlock(4, 0, 3, 3)
	require.NoError(t, err)
	require.Equal(t, []bridge.Pair{{4, 1}, {5, 2}, {6, 1}}, ps)

	n, err := bridge.PrimesInBlockCount(4, 0, 3, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(3), n)

	arr, err := bridge.PrimesInBlockAsArray(4, 0, 3, 3)
	require.NoError(t, err)
	require.Equal(t, []uint32{4, 1, 5, 2, 6, 1}, arr)

	empty, err := bridge.PrimesInBlockAsArray(4, 0, 0, 3)
	require.NoError(t, err)
	require.Empty(t, empty)
}

// TestGuards ensures the pair forms refuse large regions while the
// counting forms stay available.
func TestGuards(t *testing.T) {
	_, err := bridge.PrimesToNorm(bridge.PairLimit)
	require.True(t, errors.Is(err, bridge.ErrTooLarge), "got %v", err)
	_, err = bridge.PrimesInSector(bridge.PairLimit, 0, 1)
	require.True(t, errors.Is(err, bridge.ErrTooLarge), "got %v", err)
	_, err = bridge.PrimesInBlock(0, 0, 1<<15, 1<<15)
	require.True(t, errors.Is(err, bridge.ErrTooLarge), "got %v", err)

	n, err := bridge.PrimesInBlockCount(1000, 1000, 1<<15, 1)
	require.NoError(t, err)
	require.Positive(t, n)
}

// TestPassThrough checks sieve errors reach the caller unchanged.
func TestPassThrough(t *testing.T) {
	_, err := bridge.PrimesInSector(100, 1, 0.5)
	require.True(t, errors.Is(err, sieve.ErrInvalidRegion), "got %v", err)
	_, err = bridge.PrimesToNormCount(math.MaxUint64)
	require.True(t, errors.Is(err, sieve.ErrInvalidRegion), "got %v", err)
	_, err = bridge.PrimesInBlockCount(math.MaxUint32, 0, 1, 1)
	require.True(t, errors.Is(err, sieve.ErrInvalidRegion), "got %v", err)
	_, err = bridge.PrimesToNormAsArray(1000, sieve.WithMaxCells(10))
	require.True(t, errors.Is(err, sieve.ErrRegionTooLarge), "got %v", err)
	_, err = bridge.PrimesToNormCount(1 << 62)
	require.True(t, errors.Is(err, sieve.ErrRegionTooLarge), "got %v", err)
	_, err = bridge.PrimesInSectorAsArray(1<<62, 0, 1)
	require.True(t, errors.Is(err, sieve.ErrRegionTooLarge), "got %v", err)
}
