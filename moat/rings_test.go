package moat

import (
	"testing"

	"github.com/katalvlaran/gaussmoat/gint"
	"github.com/katalvlaran/gaussmoat/sieve"
)

// TestWindowRings_WidthTracksWindow checks segmented rings stay within
// 4·√(bound)·⌈√J⌉ of norm while geometric rings keep growing by a quarter.
func TestWindowRings_WidthTracksWindow(t *testing.T) {
	cfg, err := Config{JumpSquared: 10, GrowthStep: 64}.normalize()
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	r, err := newWindowRings(cfg, DefaultOptions())
	if err != nil {
		t.Fatalf("newWindowRings: %v", err)
	}
	for r.bound() < 1_000_000 {
		b := r.bound()
		ring, err := r.next(0)
		if err != nil {
			t.Fatalf("next after %d: %v", b, err)
		}
		limit := max(int64(64), 4*gint.ISqrt(b)*4)
		if w := ring.Upper() - ring.Lower(); w > limit {
			t.Fatalf("ring (%d, %d] spans %d; want ≤ %d", ring.Lower(), ring.Upper(), w, limit)
		}
		r.drop(ring.Upper())
	}
	if n := r.donut.Steps(); n < 100 {
		t.Errorf("reached 10^6 in %d rings; want at least 100", n)
	}
	if len(r.list) != 0 {
		t.Errorf("dropped rings still listed: %d", len(r.list))
	}

	g, err := newRings(cfg, DefaultOptions())
	if err != nil {
		t.Fatalf("newRings: %v", err)
	}
	if _, err := g.ensure(1_000_000); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if n := g.donut.Steps(); n >= 100 {
		t.Errorf("geometric growth took %d rings to 10^6", n)
	}
}

// TestRings_WidthSaturates checks huge bounds clip to sieve.MaxNorm
// instead of overflowing.
func TestRings_WidthSaturates(t *testing.T) {
	r := &rings{step: 1, reach: 1 << 31}
	if w := r.width(1 << 60); w != sieve.MaxNorm {
		t.Errorf("width = %d; want %d", w, sieve.MaxNorm)
	}
	r.reach = 0
	if w := r.width(sieve.MaxNorm - 1); w != (sieve.MaxNorm-1)/4 {
		t.Errorf("geometric width = %d; want %d", w, (sieve.MaxNorm-1)/4)
	}
}
