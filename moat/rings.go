package moat

import (
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/gaussmoat/gint"
	"github.com/katalvlaran/gaussmoat/sieve"
)

// rings is the explorers' read view of a Donut: every ring grown so far,
// ordered by norm. Explorers never mutate sieve state; they only ask for
// the next ring.
type rings struct {
	donut  *sieve.Donut
	list   []*sieve.Result
	step   int64
	limit  int64 // 0 = unbounded
	reach  int64 // ⌈√J⌉ for window-sized rings, 0 for geometric growth
	primes int64
	log    *zap.Logger
}

// newRings wraps a fresh Donut whose rings grow geometrically.
func newRings(cfg Config, o Options) (*rings, error) {
	d, err := sieve.NewDonut(o.sieveOptions()...)
	if err != nil {
		return nil, err
	}
	return &rings{donut: d, step: cfg.GrowthStep, limit: cfg.MaxNorm, log: o.Logger}, nil
}

// newWindowRings is newRings with ring widths tied to the jump window:
// a prime of norm n reaches norms up to (√n + √J)², so the rings that can
// still gain neighbors span about 2·√(nJ). Each ring is held to twice that.
func newWindowRings(cfg Config, o Options) (*rings, error) {
	r, err := newRings(cfg, o)
	if err != nil {
		return nil, err
	}
	r.reach = ceilSqrt(cfg.JumpSquared)
	return r, nil
}

// bound returns the norm bound covered.
func (r *rings) bound() int64 { return r.donut.Bound() }

// capped reports whether the bound has reached the configured limit.
func (r *rings) capped() bool {
	return r.limit > 0 && r.donut.Bound() >= r.limit
}

// width returns the norm span of the ring that follows bound b.
func (r *rings) width(b int64) int64 {
	if r.reach == 0 {
		return max(r.step, b/4)
	}
	w := 4 * gint.ISqrt(b)
	if w > 0 && r.reach > sieve.MaxNorm/w {
		return sieve.MaxNorm
	}
	return max(r.step, w*r.reach)
}

// next grows to at least need, by at least width(bound), clipped to the
// limit and to sieve.MaxNorm. It returns the new ring.
func (r *rings) next(need int64) (*sieve.Result, error) {
	b := r.donut.Bound()
	to := sieve.MaxNorm
	if w := r.width(b); w < sieve.MaxNorm-b {
		to = b + w
	}
	to = max(to, need)
	if r.limit > 0 && to > r.limit {
		to = r.limit
	}
	ring, err := r.donut.Grow(to)
	if err != nil {
		return nil, err
	}
	r.list = append(r.list, ring)
	n := ring.Count()
	r.primes += n
	r.log.Debug("moat: region grown",
		zap.Int64("from", b),
		zap.Int64("to", to),
		zap.Int64("ringCells", ring.Cells()),
		zap.Int64("ringPrimes", n))
	return ring, nil
}

// ensure grows until need is covered or the limit is hit. It reports
// whether need is covered.
func (r *rings) ensure(need int64) (bool, error) {
	for r.donut.Bound() < need {
		if r.capped() {
			return false, nil
		}
		if _, err := r.next(need); err != nil {
			return false, err
		}
	}
	return true, nil
}

// isPrime looks g up in the ring covering its norm.
func (r *rings) isPrime(g gint.Gint) bool {
	n := g.Norm()
	i := sort.Search(len(r.list), func(i int) bool { return r.list[i].Upper() >= n })
	if i == len(r.list) {
		return false
	}
	return r.list[i].IsPrime(g)
}

// drop forgets rings whose upper bound is at most below.
func (r *rings) drop(below int64) {
	i := sort.Search(len(r.list), func(i int) bool { return r.list[i].Upper() > below })
	clear(r.list[:i])
	r.list = r.list[i:]
}

// neighborhood returns the in-octant lattice points within the jump of p
// together with the largest norm among them. For octant points the direct
// distance is never larger than the distance to any symmetric image, so
// these are all the neighbors p can have in the folded graph.
func neighborhood(p gint.Gint, offsets []gint.Gint, buf []gint.Gint) ([]gint.Gint, int64) {
	buf = buf[:0]
	reach := p.Norm()
	for _, off := range offsets {
		q := p.Add(off)
		if !q.InOctant() {
			continue
		}
		buf = append(buf, q)
		reach = max(reach, q.Norm())
	}
	return buf, reach
}
