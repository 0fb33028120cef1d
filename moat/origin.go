package moat

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gaussmoat/gint"
)

// explorer encapsulates mutable origin-mode state.
type explorer struct {
	cfg     Config
	opts    Options
	ctx     context.Context
	rings   *rings
	offsets []gint.Gint
	visited map[gint.Gint]struct{}
	queue   []gint.Gint
	open    int // members whose neighborhood passed MaxNorm
	res     *Result
}

// Explore grows the connected component of cfg.Start (default 1+i) in the
// octant graph whose edges join primes at squared distance ≤ JumpSquared.
//
// Members are expanded in breadth-first order. Before a member's
// neighborhood is scanned, the growing ring is extended until it covers
// every point within the jump, so an under-sieved boundary never looks
// like a gap. When that would pass cfg.MaxNorm the member is scanned only
// up to MaxNorm and the result is StatusBoundReached.
//
// On cancellation the partial result is returned with ctx.Err().
// Returns ErrInvalidJump or ErrInvalidConfig for bad configuration, and
// ErrInvalidConfig if the start is not prime.
func Explore(ctx context.Context, cfg Config, opts ...Option) (*Result, error) {
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
	r, err := newRings(cfg, o)
	if err != nil {
		return nil, err
	}
	e := &explorer{
		cfg:     cfg,
		opts:    o,
		ctx:     ctx,
		rings:   r,
		offsets: gint.Offsets(cfg.JumpSquared),
		visited: make(map[gint.Gint]struct{}),
		res:     &Result{},
	}
	if err := e.seed(); err != nil {
		return nil, err
	}
	err = e.loop()
	e.finish()
	if err != nil && e.res.Status != StatusCanceled {
		return nil, err
	}
	return e.res, err
}

// seed sieves far enough to test the start and admits it.
func (e *explorer) seed() error {
	start := e.cfg.Start
	covered, err := e.rings.ensure(start.Norm())
	if err != nil {
		return err
	}
	if !covered || !e.rings.isPrime(start) {
		return fmt.Errorf("%w: start %v is not a prime within the bound", ErrInvalidConfig, start)
	}
	e.admit(start)
	return nil
}

// admit adds g to the component and the frontier.
func (e *explorer) admit(g gint.Gint) {
	e.visited[g] = struct{}{}
	e.queue = append(e.queue, g)
	e.res.Component = append(e.res.Component, g)
	if e.res.Max.Less(g) {
		e.res.Max = g
	}
	e.opts.OnAdmit(g)
}

// loop retires frontier members until the frontier is empty, an error
// occurs, or the context ends.
func (e *explorer) loop() error {
	var buf []gint.Gint
	for qi := 0; qi < len(e.queue); qi++ {
		select {
		case <-e.ctx.Done():
			e.res.Status = StatusCanceled
			e.queue = e.queue[qi:]
			return e.ctx.Err()
		default:
		}

		p := e.queue[qi]
		var reach int64
		buf, reach = neighborhood(p, e.offsets, buf)
		covered, err := e.rings.ensure(reach)
		if err != nil {
			return err
		}
		if !covered {
			e.open++
		}
		bound := e.rings.bound()
		for _, q := range buf {
			if q.Norm() > bound {
				continue
			}
			if _, ok := e.visited[q]; ok {
				continue
			}
			if e.rings.isPrime(q) {
				e.admit(q)
			}
		}
	}
	e.queue = nil
	if e.open > 0 {
		e.res.Status = StatusBoundReached
	} else {
		e.res.Status = StatusMoat
	}
	return nil
}

// finish copies counters into the result and logs the terminal state.
func (e *explorer) finish() {
	e.res.Size = int64(len(e.res.Component))
	e.res.SievedNorm = e.rings.bound()
	e.res.Growths = e.rings.donut.Steps()
	e.res.Primes = e.rings.primes
	e.opts.Logger.Info("moat: origin search finished",
		zap.Stringer("status", e.res.Status),
		zap.Int64("size", e.res.Size),
		zap.Stringer("max", e.res.Max),
		zap.Int64("sievedNorm", e.res.SievedNorm),
		zap.Int("openMembers", e.open))
}
