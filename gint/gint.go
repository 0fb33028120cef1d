package gint

import (
	"fmt"
	"math"
	"sort"
)

// Gint is the Gaussian integer A + B·i.
type Gint struct {
	A, B int64
}

// New returns a + b·i.
func New(a, b int64) Gint {
	return Gint{A: a, B: b}
}

// Norm returns a² + b².
func (g Gint) Norm() int64 {
	return g.A*g.A + g.B*g.B
}

// Add returns g + h.
func (g Gint) Add(h Gint) Gint {
	return Gint{A: g.A + h.A, B: g.B + h.B}
}

// Sub returns g - h.
func (g Gint) Sub(h Gint) Gint {
	return Gint{A: g.A - h.A, B: g.B - h.B}
}

// Mul returns g·h = (ac - bd) + (ad + bc)i.
func (g Gint) Mul(h Gint) Gint {
	return Gint{A: g.A*h.A - g.B*h.B, B: g.A*h.B + g.B*h.A}
}

// Conj returns the complex conjugate a - bi.
func (g Gint) Conj() Gint {
	return Gint{A: g.A, B: -g.B}
}

// Rotate multiplies g by the unit i: (a + bi)·i = -b + ai.
func (g Gint) Rotate() Gint {
	return Gint{A: -g.B, B: g.A}
}

// IsZero reports whether g is 0.
func (g Gint) IsZero() bool {
	return g.A == 0 && g.B == 0
}

// IsUnit reports whether g is one of ±1, ±i.
func (g Gint) IsUnit() bool {
	return g.Norm() == 1
}

// InOctant reports whether 0 ≤ b ≤ a.
func (g Gint) InOctant() bool {
	return g.B >= 0 && g.B <= g.A
}

// Octant folds g into its canonical octant representative (0 ≤ b ≤ a).
// The eight points (±a, ±b), (±b, ±a) share one representative; they are
// exactly the associates of g and of its conjugate.
func (g Gint) Octant() Gint {
	a, b := g.A, g.B
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if b > a {
		a, b = b, a
	}
	return Gint{A: a, B: b}
}

// Less orders by norm, then real part, then imaginary part.
func (g Gint) Less(h Gint) bool {
	gn, hn := g.Norm(), h.Norm()
	if gn != hn {
		return gn < hn
	}
	if g.A != h.A {
		return g.A < h.A
	}
	return g.B < h.B
}

// Angle returns the argument of g in radians, in (-π, π].
func (g Gint) Angle() float64 {
	return math.Atan2(float64(g.B), float64(g.A))
}

// DivisibleBy reports whether h divides g exactly. h must be non-zero.
func (g Gint) DivisibleBy(h Gint) bool {
	n := h.Norm()
	if n == 0 {
		return false
	}
	q := g.Mul(h.Conj())
	return q.A%n == 0 && q.B%n == 0
}

// String formats g as "a+bi".
func (g Gint) String() string {
	if g.B < 0 {
		return fmt.Sprintf("%d-%di", g.A, -g.B)
	}
	return fmt.Sprintf("%d+%di", g.A, g.B)
}

// Sort orders gs in place by Less.
func Sort(gs []Gint) {
	sort.Slice(gs, func(i, j int) bool { return gs[i].Less(gs[j]) })
}

// ISqrt returns floor(√n) for n ≥ 0 and 0 for negative n.
func ISqrt(n int64) int64 {
	if n <= 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// IsPrime reports whether g is a Gaussian prime by trial division: it has
// no divisor h with 1 < N(h) < N(g). Zero and units are not prime.
func IsPrime(g Gint) bool {
	n := g.Norm()
	if n < 2 {
		return false
	}
	// A non-trivial factorization g = h·k has min(N(h), N(k)) ≤ √N(g), and
	// every divisor has an associate with c ≥ 1, d ≥ 0.
	limit := ISqrt(n)
	for c := int64(1); c*c <= limit; c++ {
		for d := int64(0); c*c+d*d <= limit; d++ {
			h := Gint{A: c, B: d}
			if h.Norm() < 2 {
				continue
			}
			if g.DivisibleBy(h) {
				return false
			}
		}
	}
	return true
}

// Offsets returns every non-zero step (dx, dy) with dx² + dy² ≤ jumpSq,
// ordered by Less. It returns nil for jumpSq < 1.
func Offsets(jumpSq int64) []Gint {
	if jumpSq < 1 {
		return nil
	}
	r := ISqrt(jumpSq)
	out := make([]Gint, 0, 4*jumpSq)
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if dx*dx+dy*dy <= jumpSq {
				out = append(out, Gint{A: dx, B: dy})
			}
		}
	}
	Sort(out)
	return out
}
