package bridge

import (
	"fmt"

	"github.com/katalvlaran/gaussmoat/sieve"
)

// PrimesToNorm returns every first-quadrant prime of norm ≤ x (one per
// associate class), sorted by norm then real part.
// Returns ErrTooLarge for x ≥ PairLimit.
func PrimesToNorm(x uint64, opts ...sieve.Option) ([]Pair, error) {
	if x >= PairLimit {
		return nil, fmt.Errorf("%w: norm %d", ErrTooLarge, x)
	}
	res, err := octant(x, opts)
	if err != nil {
		return nil, err
	}
	return pairs(res), nil
}

// PrimesToNormCount returns len(PrimesToNorm(x)) without the size guard.
func PrimesToNormCount(x uint64, opts ...sieve.Option) (uint64, error) {
	res, err := octant(x, opts)
	if err != nil {
		return 0, err
	}
	return uint64(res.Count()), nil
}

// PrimesToNormAsArray returns the primes of PrimesToNorm interleaved as
// a0, b0, a1, b1, ... in a newly allocated buffer of length 2·count.
func PrimesToNormAsArray(x uint64, opts ...sieve.Option) ([]uint32, error) {
	res, err := octant(x, opts)
	if err != nil {
		return nil, err
	}
	return flat(res), nil
}

// PrimesInSector returns the first-quadrant primes of norm ≤ x with
// argument in [alpha, beta). Returns ErrTooLarge for x ≥ PairLimit.
func PrimesInSector(x uint64, alpha, beta float64, opts ...sieve.Option) ([]Pair, error) {
	if x >= PairLimit {
		return nil, fmt.Errorf("%w: norm %d", ErrTooLarge, x)
	}
	res, err := sector(x, alpha, beta, opts)
	if err != nil {
		return nil, err
	}
	return pairs(res), nil
}

// PrimesInSectorCount counts PrimesInSector without the size guard.
func PrimesInSectorCount(x uint64, alpha, beta float64, opts ...sieve.Option) (uint64, error) {
	res, err := sector(x, alpha, beta, opts)
	if err != nil {
		return 0, err
	}
	return uint64(res.Count()), nil
}

// PrimesInSectorAsArray is the interleaved-buffer form of PrimesInSector.
func PrimesInSectorAsArray(x uint64, alpha, beta float64, opts ...sieve.Option) ([]uint32, error) {
	res, err := sector(x, alpha, beta, opts)
	if err != nil {
		return nil, err
	}
	return flat(res), nil
}

// PrimesInBlock returns the primes of [x, x+dx) × [y, y+dy).
// Returns ErrTooLarge when dx·dy ≥ PairLimit.
func PrimesInBlock(x, y, dx, dy uint32, opts ...sieve.Option) ([]Pair, error) {
	if uint64(dx)*uint64(dy) >= PairLimit {
		return nil, fmt.Errorf("%w: %d×%d block", ErrTooLarge, dx, dy)
	}
	res, err := block(x, y, dx, dy, opts)
	if err != nil {
		return nil, err
	}
	return pairs(res), nil
}

// PrimesInBlockCount counts PrimesInBlock without the size guard.
func PrimesInBlockCount(x, y, dx, dy uint32, opts ...sieve.Option) (uint64, error) {
	res, err := block(x, y, dx, dy, opts)
	if err != nil {
		return 0, err
	}
	return uint64(res.Count()), nil
}

// PrimesInBlockAsArray is the interleaved-buffer form of PrimesInBlock.
func PrimesInBlockAsArray(x, y, dx, dy uint32, opts ...sieve.Option) ([]uint32, error) {
	res, err := block(x, y, dx, dy, opts)
	if err != nil {
		return nil, err
	}
	return flat(res), nil
}

func octant(x uint64, opts []sieve.Option) (*sieve.Result, error) {
	if x > uint64(sieve.MaxNorm) {
		return nil, fmt.Errorf("%w: norm %d above %d", sieve.ErrInvalidRegion, x, sieve.MaxNorm)
	}
	return sieve.Octant(int64(x), opts...)
}

func sector(x uint64, alpha, beta float64, opts []sieve.Option) (*sieve.Result, error) {
	if x > uint64(sieve.MaxNorm) {
		return nil, fmt.Errorf("%w: norm %d above %d", sieve.ErrInvalidRegion, x, sieve.MaxNorm)
	}
	return sieve.Sector(int64(x), alpha, beta, opts...)
}

func block(x, y, dx, dy uint32, opts []sieve.Option) (*sieve.Result, error) {
	return sieve.Block(int64(x), int64(y), int64(dx), int64(dy), opts...)
}

// pairs copies res.Primes into a pair list.
func pairs(res *sieve.Result) []Pair {
	ps := res.Primes()
	out := make([]Pair, len(ps))
	for i, g := range ps {
		out[i] = pairOf(g)
	}
	return out
}

// flat interleaves res.Primes into a fresh buffer.
func flat(res *sieve.Result) []uint32 {
	ps := res.Primes()
	out := make([]uint32, 2*len(ps))
	for i, g := range ps {
		p := pairOf(g)
		out[2*i], out[2*i+1] = p.A, p.B
	}
	return out
}
