// Command grafos colors a graph with a chosen heuristic or computes its
// minimum spanning tree with Prim and Kruskal.
//
// Usage:
//
//	grafos <graph-file> <algorithm> [--mst] [flags]
//	grafos --batch <dir> [flags]
//
// Exit status: 0 success, 1 missing arguments or bad flags, 2 unknown
// algorithm, 3 load or runtime failure.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grafos/config"
	"github.com/katalvlaran/grafos/logging"
	"github.com/katalvlaran/grafos/runner"
)

// Exit statuses.
const (
	exitOK        = 0
	exitUsage     = 1
	exitAlgorithm = 2
	exitFailure   = 3
)

// usageError marks command-line mistakes detected by cobra or flag parsing.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// flags holds the parsed command-line options.
type flags struct {
	mst        bool
	compare    bool
	show       bool
	verify     bool
	output     string
	repeat     int
	limit      int
	batch      string
	configPath string
	logLevel   string
	logFormat  string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return exitCode(err)
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "grafos <graph-file> <algorithm> [--mst]",
		Short: "Graph coloring heuristics and minimum spanning trees",
		Long: "grafos loads an edge-list graph file and either colors it with greedy, welsh, dsatur or brute,\n" +
			"or (algorithm mst, or --mst) runs Prim and Kruskal and reports both total weights.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(_ *cobra.Command, args []string) error {
			if f.batch != "" {
				if len(args) > 0 {
					return usageError{fmt.Errorf("--batch takes no positional arguments, got %v", args)}
				}
				return nil
			}
			if len(args) < 2 {
				return runner.ErrMissingArgs
			}
			if len(args) > 2 {
				return usageError{fmt.Errorf("unexpected arguments: %v", args[2:])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.batch != "" {
				return executeBatch(cmd, f)
			}
			return execute(cmd, args[0], args[1], f)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	fl := cmd.Flags()
	fl.BoolVar(&f.mst, "mst", false, "run Prim and Kruskal regardless of <algorithm>")
	fl.BoolVar(&f.compare, "compare", false, "run every coloring method and print a table")
	fl.BoolVar(&f.show, "show", false, "print per-vertex colors or MST edges for small graphs")
	fl.BoolVar(&f.verify, "verify", false, "check MST totals against a reference implementation")
	fl.StringVar(&f.output, "output", "", "write results as CSV to this file")
	fl.IntVar(&f.repeat, "repeat", 1, "time each algorithm this many times")
	fl.IntVar(&f.limit, "limit", 0, "largest vertex count for brute (overrides config)")
	fl.StringVar(&f.batch, "batch", "", "run every coloring method on each .txt graph in this directory")
	fl.StringVar(&f.configPath, "config", "", "TOML configuration file")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug|info|warn|error")
	fl.StringVar(&f.logFormat, "log-format", "", "log format: console|json")

	return cmd
}

// execute validates the selector, assembles configuration and runs.
func execute(cmd *cobra.Command, path, algorithm string, f flags) error {
	// Selector first: an unknown algorithm never touches the filesystem.
	mode, err := runner.ParseMode(algorithm, f.mst)
	if err != nil {
		return err
	}

	return withRunner(cmd, f, func(r *runner.Runner) error {
		return r.Run(path, mode)
	})
}

// executeBatch colors every graph file in the --batch directory.
func executeBatch(cmd *cobra.Command, f flags) error {
	return withRunner(cmd, f, func(r *runner.Runner) error {
		return r.RunBatch(f.batch)
	})
}

// withRunner loads configuration, applies flag overrides, builds the logger
// and Runner, and passes the Runner to fn.
func withRunner(cmd *cobra.Command, f flags, fn func(*runner.Runner) error) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if cmd.Flags().Changed("limit") {
		cfg.BruteLimit = f.limit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	r, err := runner.New(cmd.OutOrStdout(), log, cfg,
		runner.WithCompare(f.compare),
		runner.WithShow(f.show),
		runner.WithVerify(f.verify),
		runner.WithOutput(f.output),
		runner.WithRepeat(f.repeat),
	)
	if err != nil {
		return usageError{err}
	}

	return fn(r)
}

// exitCode maps an error from the command to the process exit status.
func exitCode(err error) int {
	var usage usageError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, runner.ErrMissingArgs), errors.As(err, &usage):
		return exitUsage
	case errors.Is(err, runner.ErrInvalidAlgorithm):
		return exitAlgorithm
	default:
		return exitFailure
	}
}
