package sieve

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gaussmoat/gint"
)

// Block sieves the axis-aligned window [x, x+dx) × [y, y+dy), independent
// of its distance from the origin. A window with dx·dy = 0 is empty.
//
// Eliminators are the first-quadrant primes of norm ≤ ⌊√M⌋, where M is the
// largest norm in the window. For each eliminator p the cofactors visited
// are the lattice points of the bounding box of window·conj(p)/N(p), so
// multiples entering the window from any direction are reached.
func Block(x, y, dx, dy int64, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if dx < 0 || dy < 0 {
		return nil, fmt.Errorf("%w: negative block size %d×%d", ErrInvalidRegion, dx, dy)
	}
	if dx == 0 || dy == 0 {
		gr, _ := newGrid(0, -1, nil, o.MaxCells)
		return &Result{kind: KindBlock, grid: gr}, nil
	}
	x1, y1 := x+dx-1, y+dy-1
	for _, v := range []int64{x, y, x1, y1} {
		if v < -MaxCoord || v > MaxCoord {
			return nil, fmt.Errorf("%w: coordinate %d outside ±%d", ErrInvalidRegion, v, MaxCoord)
		}
	}
	if dx > o.MaxCells/dy {
		return nil, fmt.Errorf("%w: %d×%d block exceeds %d cells", ErrRegionTooLarge, dx, dy, o.MaxCells)
	}

	col := func(int64) (int64, int64) { return y, y1 }
	gr, err := newGrid(x, x1, col, o.MaxCells)
	if err != nil {
		return nil, err
	}
	gr.clearUnits()

	corners := []gint.Gint{{A: x, B: y}, {A: x1, B: y}, {A: x, B: y1}, {A: x1, B: y1}}
	var maxNorm int64
	for _, c := range corners {
		if n := c.Norm(); n > maxNorm {
			maxNorm = n
		}
	}
	seeds, err := Octant(gint.ISqrt(maxNorm), WithMaxCells(o.MaxCells))
	if err != nil {
		return nil, err
	}
	for _, p := range seeds.Primes() {
		crossOffBox(gr, p, corners)
	}

	res := &Result{kind: KindBlock, grid: gr}
	o.Logger.Debug("sieve: block done",
		zap.Int64("x", x), zap.Int64("y", y),
		zap.Int64("dx", dx), zap.Int64("dy", dy),
		zap.Int64("primes", res.Count()))
	return res, nil
}

// crossOffBox clears p·h for every non-unit h whose product can land in the
// window spanned by corners.
func crossOffBox(gr *grid, p gint.Gint, corners []gint.Gint) {
	n := p.Norm()
	pc := p.Conj()
	first := corners[0].Mul(pc)
	cLo, cHi, dLo, dHi := first.A, first.A, first.B, first.B
	for _, w := range corners[1:] {
		z := w.Mul(pc)
		cLo, cHi = min(cLo, z.A), max(cHi, z.A)
		dLo, dHi = min(dLo, z.B), max(dHi, z.B)
	}
	// w·conj(p)/N(p) = h, so scale the hull back by N(p).
	cLo, cHi = floorDiv(cLo, n), ceilDiv(cHi, n)
	dLo, dHi = floorDiv(dLo, n), ceilDiv(dHi, n)

	for c := cLo; c <= cHi; c++ {
		for d := dLo; d <= dHi; d++ {
			h := gint.Gint{A: c, B: d}
			if h.Norm() < 2 {
				continue
			}
			w := p.Mul(h)
			gr.clear(w.A, w.B)
		}
	}
}

// floorDiv returns ⌊a/b⌋ for b > 0.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// ceilDiv returns ⌈a/b⌉ for b > 0.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
