// Package moat defines configuration, options, results, and sentinel errors
// for the Gaussian moat explorers.
package moat

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/gaussmoat/gint"
	"github.com/katalvlaran/gaussmoat/sieve"
)

// Sentinel errors for explorer configuration.
var (
	// ErrInvalidJump indicates a zero, negative, or non-finite jump threshold.
	ErrInvalidJump = errors.New("moat: jump threshold must be positive and finite")

	// ErrInvalidConfig indicates an inconsistent Config.
	ErrInvalidConfig = errors.New("moat: invalid configuration")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("moat: invalid option supplied")
)

// Defaults applied by Config.normalize.
const (
	// DefaultGrowthStep is the minimum norm added by one region growth.
	DefaultGrowthStep int64 = 1 << 14
	// DefaultBlockHeight is the imaginary extent of one strip block.
	DefaultBlockHeight int64 = 1024
)

// jumpTolerance absorbs rounding in j² so that, for example, math.Sqrt2
// admits squared distance 2.
const jumpTolerance = 1e-9

// Status names the terminal state of a search.
type Status int

const (
	// StatusMoat means the frontier emptied: the component is finite.
	StatusMoat Status = iota
	// StatusBoundReached means the search stopped at Config.MaxNorm (or, for
	// a strip, reached Config.MaxImag). The result holds up to that bound.
	StatusBoundReached
	// StatusCanceled means the context ended the search early.
	StatusCanceled
)

// String returns a short name for s.
func (s Status) String() string {
	switch s {
	case StatusMoat:
		return "moat"
	case StatusBoundReached:
		return "bound-reached"
	case StatusCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// SquaredJump normalizes a real jump threshold j to the largest integer
// squared distance it admits: ⌊j² + 1e-9·max(1, j²)⌋.
func SquaredJump(j float64) (int64, error) {
	if math.IsNaN(j) || math.IsInf(j, 0) || j <= 0 {
		return 0, fmt.Errorf("%w: %g", ErrInvalidJump, j)
	}
	sq := j * j
	if sq >= float64(sieve.MaxNorm) {
		return 0, fmt.Errorf("%w: %g too large", ErrInvalidJump, j)
	}
	n := int64(math.Floor(sq + jumpTolerance*math.Max(1, sq)))
	if n < 1 {
		return 0, fmt.Errorf("%w: %g admits no lattice step", ErrInvalidJump, j)
	}
	return n, nil
}

// Config is the immutable parameter set of one search. The zero value of
// every field except JumpSquared selects a default.
type Config struct {
	// JumpSquared is the squared Euclidean jump threshold; primes p, q are
	// adjacent when |p − q|² ≤ JumpSquared.
	JumpSquared int64

	// MaxNorm bounds the sieved region (origin and segmented modes).
	// 0 means unbounded: the search runs until a moat or cancellation.
	MaxNorm int64

	// Start is the prime the origin component grows from. Zero selects 1+i,
	// the prime nearest the origin. It is folded into the octant.
	Start gint.Gint

	// GrowthStep is the minimum norm (origin, segmented) added per growth.
	GrowthStep int64

	// RealPart is the left edge of the strip (strip mode).
	RealPart int64

	// Width is the strip width; 0 selects 4·⌈√JumpSquared⌉.
	Width int64

	// BlockHeight is the imaginary extent of each sieved strip block.
	BlockHeight int64

	// MaxImag stops a strip search once a member reaches this imaginary
	// part. 0 means unbounded.
	MaxImag int64
}

// NewConfig returns a Config for the real jump threshold j.
func NewConfig(j float64) (Config, error) {
	sq, err := SquaredJump(j)
	if err != nil {
		return Config{}, err
	}
	return Config{JumpSquared: sq}, nil
}

// Jump returns √JumpSquared.
func (c Config) Jump() float64 {
	return math.Sqrt(float64(c.JumpSquared))
}

// normalize validates c and fills defaults.
func (c Config) normalize() (Config, error) {
	if c.JumpSquared < 1 {
		return c, fmt.Errorf("%w: squared jump %d", ErrInvalidJump, c.JumpSquared)
	}
	if c.MaxNorm < 0 || c.MaxNorm > sieve.MaxNorm {
		return c, fmt.Errorf("%w: MaxNorm %d outside [0, %d]", ErrInvalidConfig, c.MaxNorm, sieve.MaxNorm)
	}
	if c.GrowthStep < 0 || c.Width < 0 || c.BlockHeight < 0 || c.MaxImag < 0 {
		return c, fmt.Errorf("%w: negative size", ErrInvalidConfig)
	}
	if c.Start.IsZero() {
		c.Start = gint.New(1, 1)
	}
	c.Start = c.Start.Octant()
	if c.GrowthStep == 0 {
		c.GrowthStep = DefaultGrowthStep
	}
	if c.Width == 0 {
		c.Width = 4 * ceilSqrt(c.JumpSquared)
	}
	if c.BlockHeight == 0 {
		c.BlockHeight = DefaultBlockHeight
	}
	return c, nil
}

// ceilSqrt returns ⌈√n⌉.
func ceilSqrt(n int64) int64 {
	r := gint.ISqrt(n)
	if r*r < n {
		r++
	}
	return r
}

// Option configures an explorer via functional arguments.
type Option func(*Options)

// Options holds hooks and collaborators shared by every explorer.
type Options struct {
	// Logger receives growth steps at Debug and terminal states at Info.
	Logger *zap.Logger

	// OnAdmit is called for each prime admitted to the component, in
	// admission order. Not called by the segmented explorer.
	OnAdmit func(g gint.Gint)

	// MaxCells caps the cells of every sieve pass.
	MaxCells int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op logger and hook.
func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		OnAdmit:  func(gint.Gint) {},
		MaxCells: sieve.DefaultMaxCells,
	}
}

// WithLogger routes progress to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnAdmit registers a callback for every admitted prime.
func WithOnAdmit(fn func(g gint.Gint)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAdmit = fn
		}
	}
}

// WithMaxCells caps the cells of each sieve pass; n must be positive.
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

// sieveOptions forwards the shared collaborators to a sieve pass.
func (o Options) sieveOptions() []sieve.Option {
	return []sieve.Option{sieve.WithLogger(o.Logger), sieve.WithMaxCells(o.MaxCells)}
}

// Result reports an origin or segmented search.
type Result struct {
	// Status is the terminal state.
	Status Status

	// Size is the number of octant primes in the component.
	Size int64

	// Max is the farthest member: largest norm, then real part.
	Max gint.Gint

	// Component lists members in admission order. Nil in segmented mode.
	Component []gint.Gint

	// SievedNorm is the norm bound covered when the search stopped.
	SievedNorm int64

	// Growths counts region growth steps.
	Growths int

	// Primes counts first-quadrant primes sieved.
	Primes int64
}

// StripResult reports a strip search.
type StripResult struct {
	// Status is StatusMoat when no member reached MaxImag (a gap of at least
	// the jump threshold separates the real-axis side from the far side),
	// StatusBoundReached when one did.
	Status Status

	// Crossed reports whether a member reached MaxImag.
	Crossed bool

	// RealPart and Width are the strip geometry searched, defaults applied.
	RealPart, Width int64

	// Size is the number of strip primes reached from the near side.
	Size int64

	// Sources counts the near-side primes the search began from.
	Sources int64

	// Top is the member with the largest imaginary part, then real part.
	Top gint.Gint

	// SievedImag is the exclusive imaginary bound sieved.
	SievedImag int64

	// Blocks counts sieved strip blocks.
	Blocks int
}
