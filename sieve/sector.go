package sieve

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/gaussmoat/gint"
)

// wedgeSlack widens every floating-point column bound of a cofactor wedge.
// Cells are still filtered exactly by grid membership.
const wedgeSlack = 2

// Sector sieves the first-quadrant points with alpha ≤ arg(a+bi) < beta and
// a² + b² ≤ x. Angles are radians with 0 ≤ alpha ≤ beta ≤ π/2; an empty
// sector (alpha == beta) yields no primes.
//
// Cells are stored unfolded. Eliminators are the first-quadrant primes of
// norm ≤ ⌊√x⌋; for an eliminator p only cofactors whose argument falls in
// [alpha − arg p, beta − arg p) are visited.
func Sector(x int64, alpha, beta float64, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if x < 0 || x > MaxNorm {
		return nil, fmt.Errorf("%w: norm bound %d outside [0, %d]", ErrInvalidRegion, x, MaxNorm)
	}
	if math.IsNaN(alpha) || math.IsNaN(beta) || alpha < 0 || beta > math.Pi/2 || alpha > beta {
		return nil, fmt.Errorf("%w: sector [%g, %g) not within [0, π/2]", ErrInvalidRegion, alpha, beta)
	}

	in := func(a, b int64) bool {
		t := math.Atan2(float64(b), float64(a))
		return t >= alpha && t < beta
	}
	col := func(a int64) (int64, int64) {
		return sectorColumn(a, gint.ISqrt(x-a*a), alpha, beta, in)
	}
	gr, err := newGrid(0, gint.ISqrt(x), col, o.MaxCells)
	if err != nil {
		return nil, err
	}
	gr.clearUnits()

	if gr.size() > 0 {
		seeds, err := Octant(gint.ISqrt(x), WithMaxCells(o.MaxCells))
		if err != nil {
			return nil, err
		}
		for _, p := range seeds.Primes() {
			crossOffWedge(gr, p, x/p.Norm(), alpha-p.Angle(), beta-p.Angle())
		}
	}

	res := &Result{kind: KindSector, grid: gr}
	o.Logger.Debug("sieve: sector done",
		zap.Int64("norm", x),
		zap.Float64("alpha", alpha),
		zap.Float64("beta", beta),
		zap.Int64("cells", gr.size()),
		zap.Int64("primes", res.Count()))
	return res, nil
}

// sectorColumn finds the interval of b in [0, bMax] with in(a, b). The
// argument grows with b, so the members of a column are contiguous.
func sectorColumn(a, bMax int64, alpha, beta float64, in func(a, b int64) bool) (int64, int64) {
	lo := clampEstimate(float64(a)*math.Tan(alpha), 0, bMax+1, math.Ceil)
	for lo > 0 && in(a, lo-1) {
		lo--
	}
	for lo <= bMax && !in(a, lo) {
		lo++
	}
	if lo > bMax {
		return 0, -1
	}
	hi := clampEstimate(float64(a)*math.Tan(beta), lo, bMax, math.Floor)
	for hi > lo && !in(a, hi) {
		hi--
	}
	for hi < bMax && in(a, hi+1) {
		hi++
	}
	return lo, hi
}

// clampEstimate rounds v with round and clamps it to [lower, upper].
func clampEstimate(v float64, lower, upper int64, round func(float64) float64) int64 {
	v = round(v)
	switch {
	case math.IsNaN(v) || v < float64(lower):
		return lower
	case v > float64(upper):
		return upper
	default:
		return int64(v)
	}
}

// crossOffWedge clears p·h for every non-unit cofactor h with N(h) ≤ r2 and
// arg h in the wedge [phi1, phi2), whose width is below π.
func crossOffWedge(gr *grid, p gint.Gint, r2 int64, phi1, phi2 float64) {
	r := gint.ISqrt(r2)
	c1, s1 := math.Cos(phi1), math.Sin(phi1)
	c2, s2 := math.Cos(phi2), math.Sin(phi2)
	for c := -r; c <= r; c++ {
		dMax := gint.ISqrt(r2 - c*c)
		fc := float64(c)
		// cross(e1, h) ≥ 0 and cross(h, e2) ≥ 0, as bounds on d.
		lo, hi := halfPlane(-dMax, dMax, c1, -s1*fc)
		lo, hi = halfPlane(lo, hi, -c2, s2*fc)
		for d := lo; d <= hi; d++ {
			h := gint.Gint{A: c, B: d}
			if h.Norm() < 2 {
				continue
			}
			w := p.Mul(h)
			gr.clear(w.A, w.B)
		}
	}
}

// halfPlane narrows [lo, hi] to the d with m·d + k ≥ 0, padded by
// wedgeSlack. Near-vertical boundaries (|m| tiny) leave the range alone.
func halfPlane(lo, hi int64, m, k float64) (int64, int64) {
	const eps = 1e-12
	switch {
	case m > eps:
		v := math.Floor(-k/m) - wedgeSlack
		if v > float64(hi) {
			return lo, lo - 1
		}
		if v > float64(lo) {
			lo = int64(v)
		}
	case m < -eps:
		v := math.Ceil(-k/m) + wedgeSlack
		if v < float64(lo) {
			return lo, lo - 1
		}
		if v < float64(hi) {
			hi = int64(v)
		}
	}
	return lo, hi
}
