package moat

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/gaussmoat/gint"
	"github.com/katalvlaran/gaussmoat/sieve"
)

// stripper encapsulates mutable strip-mode state.
type stripper struct {
	cfg     Config
	opts    Options
	ctx     context.Context
	x0, x1  int64 // columns [x0, x1)
	offsets []gint.Gint
	blocks  map[int64]*sieve.Result
	visited map[gint.Gint]struct{}
	queue   []gint.Gint
	res     *StripResult
}

// Strip searches the vertical strip [cfg.RealPart, cfg.RealPart+cfg.Width)
// above the real axis for a crossing: a walk of jumps no longer than the
// threshold, staying inside the strip, from a prime within one jump of the
// real axis up to imaginary part cfg.MaxImag.
//
// The strip is sieved lazily in blocks of cfg.BlockHeight rows. With
// cfg.MaxImag = 0 the search runs until the reachable set is exhausted
// (StatusMoat) or the context ends.
func Strip(ctx context.Context, cfg Config, opts ...Option) (*StripResult, error) {
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
	s := &stripper{
		cfg:     cfg,
		opts:    o,
		ctx:     ctx,
		x0:      cfg.RealPart,
		x1:      cfg.RealPart + cfg.Width,
		offsets: gint.Offsets(cfg.JumpSquared),
		blocks:  make(map[int64]*sieve.Result),
		visited: make(map[gint.Gint]struct{}),
		res:     &StripResult{RealPart: cfg.RealPart, Width: cfg.Width, Top: gint.Gint{A: cfg.RealPart, B: -1}},
	}
	if err := s.seed(); err != nil {
		return nil, err
	}
	err = s.loop()
	s.finish()
	if err != nil && s.res.Status != StatusCanceled {
		return nil, err
	}
	return s.res, err
}

// block returns the sieved block holding row b, sieving it on first use.
func (s *stripper) block(b int64) (*sieve.Result, error) {
	k := b / s.cfg.BlockHeight
	if blk, ok := s.blocks[k]; ok {
		return blk, nil
	}
	top := k * s.cfg.BlockHeight
	blk, err := sieve.Block(s.x0, top, s.cfg.Width, s.cfg.BlockHeight, s.opts.sieveOptions()...)
	if err != nil {
		return nil, err
	}
	s.blocks[k] = blk
	s.res.SievedImag = max(s.res.SievedImag, top+s.cfg.BlockHeight)
	s.opts.Logger.Debug("moat: strip block sieved",
		zap.Int64("realPart", s.x0),
		zap.Int64("from", top),
		zap.Int64("to", top+s.cfg.BlockHeight),
		zap.Int64("primes", blk.Count()))
	return blk, nil
}

// isPrime reports whether g, a point of the strip, is prime.
func (s *stripper) isPrime(g gint.Gint) (bool, error) {
	blk, err := s.block(g.B)
	if err != nil {
		return false, err
	}
	return blk.IsPrime(g), nil
}

// inStrip reports whether g lies in the strip on or above the real axis.
func (s *stripper) inStrip(g gint.Gint) bool {
	return g.A >= s.x0 && g.A < s.x1 && g.B >= 0
}

// seed admits every strip prime within one jump of the real axis.
func (s *stripper) seed() error {
	for b := int64(0); b*b <= s.cfg.JumpSquared; b++ {
		for a := s.x0; a < s.x1; a++ {
			g := gint.Gint{A: a, B: b}
			ok, err := s.isPrime(g)
			if err != nil {
				return err
			}
			if ok {
				s.admit(g)
			}
		}
	}
	s.res.Sources = int64(len(s.queue))
	return nil
}

// admit adds g to the reached set and the frontier.
func (s *stripper) admit(g gint.Gint) {
	s.visited[g] = struct{}{}
	s.queue = append(s.queue, g)
	s.res.Size++
	if g.B > s.res.Top.B || (g.B == s.res.Top.B && g.A > s.res.Top.A) {
		s.res.Top = g
	}
	s.opts.OnAdmit(g)
}

// crossed reports whether g reached the configured height.
func (s *stripper) crossed(g gint.Gint) bool {
	return s.cfg.MaxImag > 0 && g.B >= s.cfg.MaxImag
}

// loop expands the frontier breadth-first.
func (s *stripper) loop() error {
	for qi := 0; qi < len(s.queue); qi++ {
		select {
		case <-s.ctx.Done():
			s.res.Status = StatusCanceled
			return s.ctx.Err()
		default:
		}

		p := s.queue[qi]
		if s.crossed(p) {
			s.res.Crossed = true
			s.res.Status = StatusBoundReached
			return nil
		}
		for _, off := range s.offsets {
			q := p.Add(off)
			if !s.inStrip(q) {
				continue
			}
			if _, ok := s.visited[q]; ok {
				continue
			}
			ok, err := s.isPrime(q)
			if err != nil {
				return err
			}
			if ok {
				s.admit(q)
			}
		}
	}
	s.res.Status = StatusMoat
	return nil
}

// finish copies counters into the result and logs the terminal state.
func (s *stripper) finish() {
	s.res.Blocks = len(s.blocks)
	if s.res.Size == 0 {
		s.res.Top = gint.Gint{}
	}
	s.opts.Logger.Info("moat: strip search finished",
		zap.Stringer("status", s.res.Status),
		zap.Bool("crossed", s.res.Crossed),
		zap.Int64("size", s.res.Size),
		zap.Int64("sources", s.res.Sources),
		zap.Stringer("top", s.res.Top),
		zap.Int64("sievedImag", s.res.SievedImag))
}
