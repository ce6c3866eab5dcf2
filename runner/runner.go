package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/grafos/config"
	"github.com/katalvlaran/grafos/loader"
)

// Runner loads one graph per Run and reports the selected algorithm.
type Runner struct {
	out  io.Writer
	log  *zap.Logger
	cfg  *config.Config
	opts Options
}

// New returns a Runner writing reports to out. A nil logger discards logs
// and a nil cfg means config.Default().
func New(out io.Writer, log *zap.Logger, cfg *config.Config, opts ...Option) (*Runner, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if log == nil {
		log = zap.NewNop()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	return &Runner{out: out, log: log, cfg: cfg, opts: o}, nil
}

// Run loads path once and executes mode against it.
//
// Errors: loader errors, coloring.ErrTooLarge for an exact run above the
// configured limit, ErrMSTMismatch under Verify, and CSV write failures.
func (r *Runner) Run(path string, mode Mode) error {
	res, err := loader.Load(path)
	if err != nil {
		return err
	}
	r.log.Debug("graph loaded",
		zap.String("path", path),
		zap.String("vertices", humanize.Comma(int64(res.N()))),
		zap.String("edges", humanize.Comma(int64(res.Graph.EdgeCount()))),
		zap.Int("declared", res.Declared),
		zap.Int("edge_lines", res.Edges),
	)

	switch {
	case mode.MST:
		return r.runMST(path, res)
	case r.opts.Compare:
		return r.runCompare(res)
	default:
		return r.runColoring(res, mode.Algorithm)
	}
}

// timing summarizes repeated wall-clock measurements in seconds.
type timing struct {
	mean, std float64
	runs      int
}

// measure calls fn k times and times each call. fn is expected to keep the
// result of its first call.
func measure(k int, fn func(first bool) error) (timing, error) {
	samples := make([]float64, 0, k)
	for i := 0; i < k; i++ {
		start := time.Now()
		if err := fn(i == 0); err != nil {
			return timing{}, err
		}
		samples = append(samples, time.Since(start).Seconds())
	}
	mean, std := stat.MeanStdDev(samples, nil)
	if k == 1 {
		std = 0
	}

	return timing{mean: mean, std: std, runs: k}, nil
}

// printTiming writes the "Time:" line and, for repeated runs, the spread.
func (r *Runner) printTiming(t timing) {
	fmt.Fprintf(r.out, "Time: %.6fs\n", t.mean)
	if t.runs > 1 {
		fmt.Fprintf(r.out, "Runs: %d (stddev %.6fs)\n", t.runs, t.std)
	}
}
