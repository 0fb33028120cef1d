package sieve

import "github.com/katalvlaran/gaussmoat/gint"

// Result is the outcome of one sieve pass. It is immutable and may be read
// by any number of callers.
//
// Folded results (KindOctant, KindRing) store octant representatives; the
// others store plain first-quadrant (or block) points.
type Result struct {
	kind   Kind
	folded bool
	lower  int64 // exclusive norm bound, folded kinds only
	upper  int64 // inclusive norm bound, folded kinds only
	grid   *grid
}

// Kind returns the region shape that produced r.
func (r *Result) Kind() Kind { return r.kind }

// Lower returns the exclusive lower norm bound of a folded result.
func (r *Result) Lower() int64 { return r.lower }

// Upper returns the inclusive upper norm bound of a folded result.
func (r *Result) Upper() int64 { return r.upper }

// Cells returns the number of lattice cells the pass allocated.
func (r *Result) Cells() int64 { return r.grid.size() }

// ScanOrder returns the primes exactly as stored: ascending real part, then
// ascending imaginary part. For folded kinds these are the octant
// representatives.
func (r *Result) ScanOrder() []gint.Gint {
	var out []gint.Gint
	r.grid.each(func(a, b int64) {
		out = append(out, gint.Gint{A: a, B: b})
	})
	return out
}

// Primes returns the primes sorted by norm, then real part. Folded kinds
// are expanded to one representative per associate class: (a, b) and, off
// the axis and the diagonal, (b, a).
func (r *Result) Primes() []gint.Gint {
	out := make([]gint.Gint, 0, r.Count())
	r.grid.each(func(a, b int64) {
		out = append(out, gint.Gint{A: a, B: b})
		if r.folded && b != 0 && a != b {
			out = append(out, gint.Gint{A: b, B: a})
		}
	})
	gint.Sort(out)
	return out
}

// Count returns len(r.Primes()) without materializing the list.
func (r *Result) Count() int64 {
	var n int64
	r.grid.each(func(a, b int64) {
		n++
		if r.folded && b != 0 && a != b {
			n++
		}
	})
	return n
}

// Covers reports whether g lies in the sieved region. Folded results cover
// every symmetric image of their cells.
func (r *Result) Covers(g gint.Gint) bool {
	if r.folded {
		n := g.Norm()
		return n > r.lower && n <= r.upper
	}
	return r.grid.has(g.A, g.B)
}

// IsPrime reports whether g is a prime of the sieved region. Points the
// region does not cover read false.
func (r *Result) IsPrime(g gint.Gint) bool {
	if r.folded {
		if !r.Covers(g) {
			return false
		}
		g = g.Octant()
	}
	return r.grid.get(g.A, g.B)
}
