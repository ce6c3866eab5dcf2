package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/grafos/coloring"
	"github.com/katalvlaran/grafos/loader"
)

// BatchExt is the extension of graph files picked up by RunBatch.
const BatchExt = ".txt"

// DefaultBatchOutput is the CSV file RunBatch writes when no output is set.
const DefaultBatchOutput = "batch_results.csv"

// batchHeader is the CSV header of a batch run.
var batchHeader = []string{"file", "vertices", "algorithm", "colors", "seconds", "valid"}

// RunBatch runs every coloring method on each BatchExt file in dir, in name
// order, and writes one CSV row per (file, method) to the configured output
// or DefaultBatchOutput.
//
// Files that fail to load are reported and skipped. The exact method is
// skipped above the configured limit. Only an unreadable directory or a
// CSV write failure is returned as an error.
func (r *Runner) RunBatch(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBatchDir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), BatchExt) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	fmt.Fprintf(r.out, "Running batch in %s (%d files)\n", dir, len(names))

	var rows [][]string
	for _, name := range names {
		res, err := loader.Load(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(r.out, "\nError reading %s: %v\n", name, err)
			r.log.Warn("batch file skipped", zap.String("file", name), zap.Error(err))
			continue
		}
		fmt.Fprintf(r.out, "\n--- %s (%d vertices) ---\n", name, res.N())

		for _, method := range coloring.Methods {
			if method == coloring.MethodExact && res.N() > r.cfg.BruteLimit {
				fmt.Fprintf(r.out, "Skipping %s (n=%d > limit=%d)\n", method, res.N(), r.cfg.BruteLimit)
				continue
			}
			run, err := r.color(res, method)
			if err != nil {
				fmt.Fprintf(r.out, "Error in %s: %v\n", method, err)
				continue
			}
			fmt.Fprintf(r.out, "%s: colors=%d, time=%.6fs, valid=%s\n",
				method, run.used, run.timing.mean, yesNo(run.valid))
			rows = append(rows, []string{
				name,
				strconv.Itoa(res.N()),
				method,
				strconv.Itoa(run.used),
				strconv.FormatFloat(run.timing.mean, 'f', 6, 64),
				yesNo(run.valid),
			})
		}
	}

	out := r.opts.Output
	if out == "" {
		out = DefaultBatchOutput
	}

	return r.writeCSV(out, batchHeader, rows)
}
