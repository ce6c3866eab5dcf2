package runner

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/katalvlaran/grafos/coloring"
	"github.com/katalvlaran/grafos/loader"
)

// colorRun is the outcome of one coloring method.
type colorRun struct {
	method string
	colors coloring.Coloring
	used   int
	valid  bool
	timing timing
}

// color runs method on res.Graph, timing only the algorithm call.
func (r *Runner) color(res *loader.Result, method string) (colorRun, error) {
	opts := coloring.Options{Method: method, Limit: r.cfg.BruteLimit}

	var colors coloring.Coloring
	t, err := measure(r.opts.Repeat, func(first bool) error {
		c, err := coloring.Compute(res.Graph, opts)
		if first {
			colors = c
		}
		return err
	})
	if err != nil {
		return colorRun{}, err
	}

	return colorRun{
		method: method,
		colors: colors,
		used:   coloring.ColorsUsed(colors),
		valid:  coloring.Valid(res.Graph, colors),
		timing: t,
	}, nil
}

func (r *Runner) runColoring(res *loader.Result, method string) error {
	run, err := r.color(res, method)
	if err != nil {
		return err
	}
	r.log.Info("coloring finished",
		zap.String("algorithm", method),
		zap.Int("colors", run.used),
		zap.Float64("seconds", run.timing.mean),
	)

	fmt.Fprintf(r.out, "Algorithm: %s\n", method)
	fmt.Fprintf(r.out, "Vertices: %d\n", res.N())
	fmt.Fprintf(r.out, "Colors used: %d\n", run.used)
	r.printTiming(run.timing)
	fmt.Fprintf(r.out, "Valid coloring: %s\n", yesNo(run.valid))

	if r.opts.Show && res.N() < r.cfg.ShowLimit {
		fmt.Fprintln(r.out, "\nVertex -> Color")
		for i, c := range run.colors {
			fmt.Fprintf(r.out, "%d -> %d\n", res.Label(i), c)
		}
	}

	if r.opts.Output != "" {
		rows := make([][]string, 0, res.N())
		for i, c := range run.colors {
			rows = append(rows, []string{strconv.Itoa(res.Label(i)), strconv.Itoa(c)})
		}
		return r.writeCSV(r.opts.Output, []string{"vertex", "color"}, rows)
	}

	return nil
}

// runCompare runs every coloring method, skipping the exact one above the
// configured limit, and prints a summary table.
func (r *Runner) runCompare(res *loader.Result) error {
	fmt.Fprintf(r.out, "Vertices: %d\n\n", res.N())

	runs := make([]colorRun, 0, len(coloring.Methods))
	for _, method := range coloring.Methods {
		if method == coloring.MethodExact && res.N() > r.cfg.BruteLimit {
			fmt.Fprintf(r.out, "Skipping %s: graph has %d vertices (> %d)\n\n", method, res.N(), r.cfg.BruteLimit)
			r.log.Info("exact coloring skipped", zap.Int("vertices", res.N()), zap.Int("limit", r.cfg.BruteLimit))
			continue
		}
		run, err := r.color(res, method)
		if err != nil {
			return err
		}
		runs = append(runs, run)
	}

	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tCOLORS\tTIME\tVALID")
	for _, run := range runs {
		fmt.Fprintf(tw, "%s\t%d\t%.6fs\t%s\n", run.method, run.used, run.timing.mean, yesNo(run.valid))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if r.opts.Show && res.N() < r.cfg.ShowLimit {
		for _, run := range runs {
			fmt.Fprintf(r.out, "\n%s: %v\n", run.method, run.colors)
		}
	}

	if r.opts.Output != "" {
		rows := make([][]string, 0, len(runs))
		for _, run := range runs {
			rows = append(rows, []string{
				run.method,
				strconv.Itoa(run.used),
				strconv.FormatFloat(run.timing.mean, 'f', 6, 64),
				yesNo(run.valid),
			})
		}
		return r.writeCSV(r.opts.Output, []string{"algorithm", "colors", "seconds", "valid"}, rows)
	}

	return nil
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
