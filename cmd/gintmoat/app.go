package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gaussmoat/gint"
	"github.com/katalvlaran/gaussmoat/moat"
)

// Exploration modes.
const (
	modeOrigin    = "origin"
	modeSegmented = "segmented"
	modeVertical  = "vertical"
)

// errInput marks unusable command-line input.
var errInput = errors.New("cannot understand input")

// settings is everything one run needs, after flags and the config file
// have been merged.
type settings struct {
	Jump        float64 `yaml:"jump"`
	RealPart    int64   `yaml:"real_part"`
	Mode        string  `yaml:"mode"`
	Verbose     bool    `yaml:"verbose"`
	PrintPrimes bool    `yaml:"print_primes"`
	MaxNorm     int64   `yaml:"max_norm"`
	GrowthStep  int64   `yaml:"growth_step"`
	Width       int64   `yaml:"width"`
	Height      int64   `yaml:"height"`
	MaxImag     int64   `yaml:"max_imag"`
	MetricsFile string  `yaml:"metrics_file"`

	hasRealPart bool
}

// app holds the state of one invocation.
type app struct {
	stdout, stderr io.Writer

	set        settings
	origin     bool
	segmented  bool
	vertical   bool
	configPath string

	logger *zap.Logger
	helped bool
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr, logger: zap.NewNop()}
}

// command builds the root command bound to a.
func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "gintmoat <jumpSize> [realPart]",
		Short: "Calculate Gaussian prime moats",
		Long: `Calculate the Gaussian prime moat for a jump threshold.

  jumpSize   The jump threshold under which primes are adjacent.
  realPart   The real part of the vertical strip to explore in vertical mode.

Exploration modes:
  --origin     Explore the connected component starting at the origin over
               the first octant. This is the default.
  --segmented  Explore the same component ring by ring, counting only its
               size. Memory stays proportional to one ring.
  --vertical   Search for a moat along a thin vertical strip starting at
               realPart.`,
		Args:          cobra.RangeArgs(0, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.resolve(cmd, args); err != nil {
				return err
			}
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if a.set.Verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.explore(cmd)
		},
	}
	root.SetOut(a.stderr)
	root.SetErr(a.stderr)

	help := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		a.helped = true
		help(cmd, args)
	})

	f := root.Flags()
	f.BoolVarP(&a.set.Verbose, "verbose", "v", false, "Display progress")
	f.BoolVarP(&a.set.PrintPrimes, "printprimes", "p", false, "Print the real and imaginary part of every component prime (origin mode)")
	f.BoolVar(&a.origin, modeOrigin, false, "Explore the component of 1+i (default)")
	f.BoolVar(&a.segmented, modeSegmented, false, "Count the component of 1+i ring by ring")
	f.BoolVar(&a.vertical, modeVertical, false, "Search the vertical strip at realPart")
	f.Int64Var(&a.set.MaxNorm, "max-norm", 0, "Stop sieving at this norm (0 = until a moat is found)")
	f.Int64Var(&a.set.GrowthStep, "growth-step", 0, "Minimum norm added per sieve growth (0 = default)")
	f.Int64Var(&a.set.Width, "width", 0, "Strip width (0 = 4·ceil(√J), J = floor(jumpSize²))")
	f.Int64Var(&a.set.Height, "height", 0, "Rows sieved per strip block (0 = default)")
	f.Int64Var(&a.set.MaxImag, "max-imag", 0, "Strip height counted as a crossing (0 = unbounded)")
	f.StringVar(&a.set.MetricsFile, "metrics-file", "", "Write run metrics to this file in Prometheus text format")
	f.StringVar(&a.configPath, "config", "", "YAML file supplying defaults for any flag")
	root.MarkFlagsMutuallyExclusive(modeOrigin, modeSegmented, modeVertical)
	return root
}

// resolve merges positional arguments, flags and the config file into a.set.
func (a *app) resolve(cmd *cobra.Command, args []string) error {
	switch {
	case a.segmented:
		a.set.Mode = modeSegmented
	case a.vertical:
		a.set.Mode = modeVertical
	case a.origin:
		a.set.Mode = modeOrigin
	}
	if len(args) > 0 {
		j, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("%w: jump size %q", errInput, args[0])
		}
		a.set.Jump = j
	}
	if len(args) > 1 {
		r, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: real part %q", errInput, args[1])
		}
		a.set.RealPart = r
		a.set.hasRealPart = true
	}
	if a.configPath != "" {
		file, err := loadSettings(a.configPath)
		if err != nil {
			return err
		}
		a.set = merge(a.set, file, changed(cmd, len(args)))
	}
	return a.set.validate()
}

// validate checks the merged settings.
func (s *settings) validate() error {
	if s.Jump <= 0 {
		return fmt.Errorf("%w: jump size must be positive", errInput)
	}
	switch s.Mode {
	case "":
		s.Mode = modeOrigin
	case modeOrigin, modeSegmented:
	case modeVertical:
		if !s.hasRealPart {
			return fmt.Errorf("%w: vertical mode requires realPart", errInput)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", errInput, s.Mode)
	}
	return nil
}

// config translates settings into an explorer configuration.
func (s settings) config() (moat.Config, error) {
	cfg, err := moat.NewConfig(s.Jump)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", errInput, err)
	}
	cfg.MaxNorm = s.MaxNorm
	cfg.GrowthStep = s.GrowthStep
	cfg.RealPart = s.RealPart
	cfg.Width = s.Width
	cfg.BlockHeight = s.Height
	cfg.MaxImag = s.MaxImag
	return cfg, nil
}

// explore runs the selected mode and reports.
func (a *app) explore(cmd *cobra.Command) error {
	cfg, err := a.set.config()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	opts := []moat.Option{moat.WithLogger(a.logger)}
	rec := newRecorder(a.set.Mode)
	began := time.Now()

	if a.set.PrintPrimes && a.set.Mode != modeOrigin {
		a.logger.Warn("printprimes only applies to origin mode", zap.String("mode", a.set.Mode))
	}

	var runErr error
	switch a.set.Mode {
	case modeVertical:
		a.logger.Info("searching for moat in vertical strip",
			zap.Int64("realPart", cfg.RealPart), zap.Float64("jump", cfg.Jump()))
		var res *moat.StripResult
		res, runErr = moat.Strip(ctx, cfg, opts...)
		if res != nil {
			a.reportStrip(res)
			rec.strip(res)
		}
	case modeSegmented:
		a.logger.Info("searching for moat in segments starting at origin", zap.Float64("jump", cfg.Jump()))
		var res *moat.Result
		res, runErr = moat.Segmented(ctx, cfg, opts...)
		if res != nil {
			fmt.Fprintf(a.stderr, "The main component has size: %d\n", res.Size)
			a.reportTail(res)
			rec.component(res)
		}
	default:
		a.logger.Info("searching for moat starting at origin", zap.Float64("jump", cfg.Jump()))
		var res *moat.Result
		res, runErr = moat.Explore(ctx, cfg, opts...)
		if res != nil {
			if a.set.PrintPrimes {
				a.printPrimes(res.Component)
			}
			fmt.Fprintf(a.stderr, "The discovered component has size: %d\n", res.Size)
			fmt.Fprintf(a.stderr, "The furthest out prime in component has coordinates: %d %d\n", res.Max.A, res.Max.B)
			a.reportTail(res)
			rec.component(res)
		}
	}

	rec.elapsed(time.Since(began))
	if a.set.MetricsFile != "" {
		if err := rec.write(a.set.MetricsFile); err != nil {
			return errors.Join(runErr, fmt.Errorf("write metrics: %w", err))
		}
		a.logger.Debug("metrics written", zap.String("path", a.set.MetricsFile))
	}
	return runErr
}

// reportTail explains a result that did not end in a moat.
func (a *app) reportTail(res *moat.Result) {
	switch res.Status {
	case moat.StatusBoundReached:
		fmt.Fprintf(a.stderr, "The search stopped at norm %d; the component may continue.\n", res.SievedNorm)
	case moat.StatusCanceled:
		fmt.Fprintln(a.stderr, "The search was interrupted; the component is partial.")
	}
}

// reportStrip prints the outcome of a strip search.
func (a *app) reportStrip(res *moat.StripResult) {
	switch res.Status {
	case moat.StatusMoat:
		fmt.Fprintf(a.stderr, "The strip at real part %d of width %d contains a moat.\n", res.RealPart, res.Width)
	case moat.StatusBoundReached:
		fmt.Fprintf(a.stderr, "The strip at real part %d of width %d was crossed at imaginary part %d.\n", res.RealPart, res.Width, res.Top.B)
	case moat.StatusCanceled:
		fmt.Fprintln(a.stderr, "The search was interrupted; the strip result is partial.")
	}
	fmt.Fprintf(a.stderr, "The reached component has size: %d\n", res.Size)
	fmt.Fprintf(a.stderr, "The highest prime reached has coordinates: %d %d\n", res.Top.A, res.Top.B)
}

// printPrimes writes one "a b" line per member.
func (a *app) printPrimes(members []gint.Gint) {
	for _, g := range members {
		fmt.Fprintf(a.stdout, "%d %d\n", g.A, g.B)
	}
}

// fail prints err the way invalid input is reported.
func (a *app) fail(err error) {
	fmt.Fprintf(a.stderr, "\n%v\n", err)
	if !errors.Is(err, context.Canceled) {
		fmt.Fprintln(a.stderr, "Use -h optional flag for help.")
	}
}
