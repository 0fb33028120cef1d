// Package sieve defines region kinds, tunable options, and sentinel errors
// for the Gaussian prime sieves of gaussmoat.
package sieve

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for sieve construction and growth.
var (
	// ErrInvalidRegion indicates a malformed region descriptor
	// (negative bound, inverted sector, negative block size).
	ErrInvalidRegion = errors.New("sieve: invalid region")

	// ErrRegionTooLarge indicates that the region would need more cells than
	// the configured limit. It is returned before any cell is allocated.
	ErrRegionTooLarge = errors.New("sieve: region too large")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sieve: invalid option supplied")

	// ErrNotGrowing is returned by Donut.Grow when the new bound does not
	// exceed the current one.
	ErrNotGrowing = errors.New("sieve: growth bound must exceed current bound")
)

// MaxNorm is the largest norm bound accepted by any region. Coordinates of
// cells stay below 2^31, so every product formed while sieving fits int64.
const MaxNorm int64 = 1 << 62

// MaxCoord bounds the absolute value of block coordinates.
const MaxCoord int64 = 1 << 30

// DefaultMaxCells is the default memory limit of a single region: 1 GiB
// of one-byte cell flags, column bookkeeping included.
const DefaultMaxCells int64 = 1 << 30

// Kind names the shape of a sieved region.
type Kind int

const (
	// KindOctant is the canonical octant 0 ≤ b ≤ a with a² + b² ≤ x.
	KindOctant Kind = iota
	// KindRing is the octant annulus lower < a² + b² ≤ upper of a Donut step.
	KindRing
	// KindSector is the first-quadrant wedge alpha ≤ arg < beta with a² + b² ≤ x.
	KindSector
	// KindBlock is the axis-aligned window [x, x+dx) × [y, y+dy).
	KindBlock
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case KindOctant:
		return "octant"
	case KindRing:
		return "ring"
	case KindSector:
		return "sector"
	case KindBlock:
		return "block"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Option configures a sieve pass via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when the
// sieve runs.
type Option func(*Options)

// Options holds the parameters shared by every region strategy.
type Options struct {
	// Logger receives Debug records for each sieve pass.
	Logger *zap.Logger

	// MaxCells caps the memory a region may allocate, counted in one-byte
	// cells; each column's offsets count as 16 cells.
	MaxCells int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op logger and DefaultMaxCells.
func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		MaxCells: DefaultMaxCells,
	}
}

// WithLogger routes sieve progress to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxCells sets the cell limit; n must be positive.
func WithMaxCells(n int64) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxCells must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCells = n
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
