package sieve

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gaussmoat/gint"
)

// Donut is the growing-ring region strategy. It remembers the norm bound
// it has sieved so far and, on each Grow, sieves only the octant annulus
// between the old and the new bound. Its bound only increases.
//
// A Donut is not safe for concurrent use.
type Donut struct {
	opts  Options
	bound int64
	steps int
}

// NewDonut returns a Donut with bound 0.
func NewDonut(opts ...Option) (*Donut, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Donut{opts: o}, nil
}

// Bound returns the norm bound sieved so far.
func (d *Donut) Bound() int64 { return d.bound }

// Steps returns the number of successful Grow calls.
func (d *Donut) Steps() int { return d.steps }

// Grow sieves the annulus Bound() < a² + b² ≤ to and advances the bound.
// The returned ring holds exactly the primes no earlier step returned.
//
// Returns ErrNotGrowing if to ≤ Bound(), ErrInvalidRegion if to exceeds
// MaxNorm, or ErrRegionTooLarge; the bound is unchanged on error.
func (d *Donut) Grow(to int64) (*Result, error) {
	if to <= d.bound {
		return nil, fmt.Errorf("%w: %d ≤ %d", ErrNotGrowing, to, d.bound)
	}
	if to > MaxNorm {
		return nil, fmt.Errorf("%w: norm bound %d exceeds %d", ErrInvalidRegion, to, MaxNorm)
	}

	gr, err := annulusGrid(d.bound, to, d.opts.MaxCells)
	if err != nil {
		return nil, err
	}
	// Eliminators are the octant primes up to √to.
	seeds, err := Octant(gint.ISqrt(to), WithMaxCells(d.opts.MaxCells))
	if err != nil {
		return nil, err
	}
	gr.clearUnits()
	elim := seeds.ScanOrder()
	for _, p := range elim {
		crossOffAnnulus(gr, p, d.bound, to)
	}

	res := &Result{kind: KindRing, folded: true, lower: d.bound, upper: to, grid: gr}
	d.opts.Logger.Debug("sieve: ring grown",
		zap.Int64("from", d.bound),
		zap.Int64("to", to),
		zap.Int64("cells", gr.size()),
		zap.Int("eliminators", len(elim)))
	d.bound = to
	d.steps++
	return res, nil
}
