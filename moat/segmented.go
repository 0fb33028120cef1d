package moat

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gaussmoat/gint"
	"github.com/katalvlaran/gaussmoat/sieve"
)

// cancelEvery is how many primes a segmented pass unions between context checks.
const cancelEvery = 1 << 12

// cluster is the summary kept for one union-find root.
type cluster struct {
	size int64
	max  gint.Gint
	main bool
	live int64
}

// member is a window prime with the largest norm it can reach.
type member struct {
	g     gint.Gint
	reach int64
}

// segmenter encapsulates mutable segmented-mode state.
//
// The window holds only primes that can still gain neighbors: those whose
// reach exceeds the sieved bound. Clusters outlive their members, so a
// component is tracked after all of its primes have left the window.
type segmenter struct {
	cfg     Config
	opts    Options
	ctx     context.Context
	rings   *rings
	offsets []gint.Gint

	id       map[gint.Gint]int
	parent   []int
	clusters map[int]*cluster
	window   []member

	main    *cluster
	started bool
	res     *Result
}

// Segmented computes the same component as Explore by sieving rings in
// order of norm and joining consecutive rings with a union-find over a
// sliding window. Rings are kept about twice as wide as the window of
// primes that can still gain neighbors (≈ 4·√(bound·J) in norm, at least
// cfg.GrowthStep), so memory tracks the window rather than the bound or
// the component. Only Size and Max are reported; Result.Component is nil.
//
// The search ends with StatusMoat once the main cluster has no member
// whose neighborhood reaches past the sieved bound, or StatusBoundReached
// when the bound hits cfg.MaxNorm first. On cancellation the partial
// result is returned with ctx.Err().
func Segmented(ctx context.Context, cfg Config, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	cfg, err = cfg.normalize()
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	r, err := newWindowRings(cfg, o)
	if err != nil {
		return nil, err
	}
	s := &segmenter{
		cfg:      cfg,
		opts:     o,
		ctx:      ctx,
		rings:    r,
		offsets:  gint.Offsets(cfg.JumpSquared),
		id:       make(map[gint.Gint]int),
		clusters: make(map[int]*cluster),
		res:      &Result{},
	}
	err = s.loop()
	s.finish()
	if err != nil && s.res.Status != StatusCanceled {
		return nil, err
	}
	return s.res, err
}

// loop sieves ring after ring until the main cluster is sealed, the bound
// is reached, or the context ends.
func (s *segmenter) loop() error {
	for {
		if err := s.ctx.Err(); err != nil {
			s.res.Status = StatusCanceled
			return err
		}
		if s.rings.capped() {
			if !s.started {
				return fmt.Errorf("%w: start %v is beyond MaxNorm %d", ErrInvalidConfig, s.cfg.Start, s.cfg.MaxNorm)
			}
			s.res.Status = StatusBoundReached
			return nil
		}
		ring, err := s.rings.next(0)
		if err != nil {
			return err
		}
		if err := s.absorb(ring); err != nil {
			s.res.Status = StatusCanceled
			return err
		}
		s.rings.drop(ring.Upper())
		if err := s.locateStart(ring); err != nil {
			return err
		}
		s.prune(ring.Upper())
		if s.started && s.main.live == 0 {
			s.res.Status = StatusMoat
			return nil
		}
	}
}

// absorb adds every prime of ring to the window and unions it with its
// neighbors already present.
func (s *segmenter) absorb(ring *sieve.Result) error {
	primes := ring.ScanOrder()
	upper := ring.Upper()
	for _, g := range primes {
		s.add(g)
	}
	var buf []gint.Gint
	for i, g := range primes {
		if i%cancelEvery == 0 {
			if err := s.ctx.Err(); err != nil {
				return err
			}
		}
		var reach int64
		buf, reach = neighborhood(g, s.offsets, buf)
		gi := s.id[g]
		s.window = append(s.window, member{g: g, reach: reach})
		for _, q := range buf {
			if q.Norm() > upper {
				continue
			}
			if qi, ok := s.id[q]; ok {
				s.union(gi, qi)
			}
		}
	}
	return nil
}

// add registers g as a singleton.
func (s *segmenter) add(g gint.Gint) {
	i := len(s.parent)
	s.parent = append(s.parent, i)
	s.id[g] = i
	s.clusters[i] = &cluster{size: 1, max: g}
}

// find returns the root of i, halving paths on the way.
func (s *segmenter) find(i int) int {
	for s.parent[i] != i {
		s.parent[i] = s.parent[s.parent[i]]
		i = s.parent[i]
	}
	return i
}

// union merges the clusters of i and j, smaller into larger.
func (s *segmenter) union(i, j int) {
	ri, rj := s.find(i), s.find(j)
	if ri == rj {
		return
	}
	ci, cj := s.clusters[ri], s.clusters[rj]
	if ci.size < cj.size {
		ri, rj = rj, ri
		ci, cj = cj, ci
	}
	s.parent[rj] = ri
	ci.size += cj.size
	if ci.max.Less(cj.max) {
		ci.max = cj.max
	}
	if cj.main {
		ci.main = true
		s.main = ci
	}
	delete(s.clusters, rj)
}

// locateStart marks the cluster of the start prime once its ring is in.
func (s *segmenter) locateStart(ring *sieve.Result) error {
	if s.started || s.cfg.Start.Norm() > ring.Upper() {
		return nil
	}
	i, ok := s.id[s.cfg.Start]
	if !ok {
		return fmt.Errorf("%w: start %v is not prime", ErrInvalidConfig, s.cfg.Start)
	}
	c := s.clusters[s.find(i)]
	c.main = true
	s.main = c
	s.started = true
	return nil
}

// prune drops window primes whose reach is within bound and rebuilds the
// union-find over the survivors. Clusters left without live members are
// sealed; only the main one is kept.
func (s *segmenter) prune(bound int64) {
	roots := make(map[int]int, len(s.clusters))
	clusters := make(map[int]*cluster, len(s.clusters))
	id := make(map[gint.Gint]int, len(s.window))
	parent := make([]int, 0, len(s.window))
	window := s.window[:0]

	for _, c := range s.clusters {
		c.live = 0
	}
	for _, m := range s.window {
		if m.reach <= bound {
			continue
		}
		old := s.find(s.id[m.g])
		c := s.clusters[old]
		c.live++
		i := len(parent)
		root, ok := roots[old]
		if !ok {
			root = i
			roots[old] = root
			clusters[root] = c
		}
		parent = append(parent, root)
		id[m.g] = i
		window = append(window, m)
	}

	s.opts.Logger.Debug("moat: window pruned",
		zap.Int64("bound", bound),
		zap.Int("live", len(window)),
		zap.Int("clusters", len(clusters)),
		zap.Int("sealed", len(s.clusters)-len(clusters)))

	s.id, s.parent, s.clusters, s.window = id, parent, clusters, window
}

// finish copies counters into the result and logs the terminal state.
func (s *segmenter) finish() {
	if s.main != nil {
		s.res.Size = s.main.size
		s.res.Max = s.main.max
	}
	s.res.SievedNorm = s.rings.bound()
	s.res.Growths = s.rings.donut.Steps()
	s.res.Primes = s.rings.primes
	s.opts.Logger.Info("moat: segmented search finished",
		zap.Stringer("status", s.res.Status),
		zap.Int64("size", s.res.Size),
		zap.Stringer("max", s.res.Max),
		zap.Int64("sievedNorm", s.res.SievedNorm),
		zap.Int("window", len(s.window)))
}
