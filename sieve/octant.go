package sieve

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gaussmoat/gint"
)

// Octant sieves the canonical octant 0 ≤ b ≤ a, a² + b² ≤ x.
//
// Elimination runs over the cells of norm ≤ ⌊√x⌋ in ascending norm order.
// A cell still marked when reached is prime; every multiple p·(c+di) with
// c ≥ 1, d ≥ 0 and norm ≤ x is folded into the octant and crossed off.
// An octant cell stands for a prime and its conjugate, so these cofactors
// reach every multiple up to symmetry.
//
// Returns ErrInvalidRegion for x outside [0, MaxNorm], ErrRegionTooLarge if
// the octant needs more than MaxCells cells, or ErrOptionViolation.
func Octant(x int64, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if x < 0 || x > MaxNorm {
		return nil, fmt.Errorf("%w: norm bound %d outside [0, %d]", ErrInvalidRegion, x, MaxNorm)
	}
	gr, err := annulusGrid(0, x, o.MaxCells)
	if err != nil {
		return nil, err
	}
	gr.clearUnits()

	for _, p := range octantCells(gint.ISqrt(x)) {
		if p.Norm() < 2 || !gr.get(p.A, p.B) {
			continue
		}
		crossOffAnnulus(gr, p, 0, x)
	}

	res := &Result{kind: KindOctant, folded: true, lower: 0, upper: x, grid: gr}
	o.Logger.Debug("sieve: octant done",
		zap.Int64("norm", x),
		zap.Int64("cells", gr.size()),
		zap.Int64("primes", res.Count()))
	return res, nil
}

// annulusGrid builds the octant cells with lower < a² + b² ≤ upper.
// Column a holds b ≤ a up to the diagonal crossing ⌊√(upper/2)⌋ and
// b ≤ ⌊√(upper − a²)⌋ beyond it.
func annulusGrid(lower, upper int64, maxCells int64) (*grid, error) {
	diag := gint.ISqrt(upper / 2)
	col := func(a int64) (int64, int64) {
		hi := a
		if a > diag {
			hi = gint.ISqrt(upper - a*a)
		}
		lo := int64(0)
		if a*a <= lower {
			lo = gint.ISqrt(lower-a*a) + 1
		}
		return lo, hi
	}
	return newGrid(0, gint.ISqrt(upper), col, maxCells)
}

// crossOffAnnulus clears every octant fold of p·(c+di) whose norm lies in
// (lower, upper], for cofactors c ≥ 1, d ≥ 0 other than 1.
func crossOffAnnulus(gr *grid, p gint.Gint, lower, upper int64) {
	n := p.Norm()
	lq, uq := lower/n, upper/n
	for c := int64(1); c*c <= uq; c++ {
		dHi := gint.ISqrt(uq - c*c)
		dLo := int64(0)
		if c*c <= lq {
			dLo = gint.ISqrt(lq-c*c) + 1
		}
		// u + vi = p·(c + di), stepped along d.
		u := c*p.A - dLo*p.B
		v := dLo*p.A + c*p.B
		for d := dLo; d <= dHi; d++ {
			if c != 1 || d != 0 { // cofactor 1 is p itself
				gr.clear(fold(u, v))
			}
			u -= p.B
			v += p.A
		}
	}
}

// fold is gint.Octant on raw coordinates.
func fold(u, v int64) (int64, int64) {
	if u < 0 {
		u = -u
	}
	if v < 0 {
		v = -v
	}
	if v > u {
		return v, u
	}
	return u, v
}

// octantCells lists the octant cells of norm ≤ s ordered by gint.Less.
func octantCells(s int64) []gint.Gint {
	var out []gint.Gint
	for a := int64(0); a*a <= s; a++ {
		for b := int64(0); b <= a && a*a+b*b <= s; b++ {
			out = append(out, gint.Gint{A: a, B: b})
		}
	}
	gint.Sort(out)
	return out
}
