// Package bridge defines the pair type and sentinel errors of the flat,
// host-facing prime listing API.
package bridge

import (
	"errors"

	"github.com/katalvlaran/gaussmoat/gint"
)

// ErrTooLarge is returned by the pair-list forms when the region is too
// large to copy pair by pair. Use the Count or AsArray form instead.
var ErrTooLarge = errors.New("bridge: region too large for a pair list; use the Count or AsArray form")

// PairLimit is the exclusive bound on the norm (PrimesToNorm,
// PrimesInSector) or the cell count (PrimesInBlock) of pair-list calls.
const PairLimit = 1 << 30

// Pair is a prime as (real, imaginary) parts. Every prime produced through
// this package has non-negative coordinates below 2^31.
type Pair struct {
	A, B uint32
}

// pairOf converts g. Callers guarantee 0 ≤ g.A, g.B < 2^32.
func pairOf(g gint.Gint) Pair {
	return Pair{A: uint32(g.A), B: uint32(g.B)}
}
