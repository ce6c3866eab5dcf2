package runner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grafos/coloring"
)

var (
	// ErrMissingArgs indicates that the graph file or algorithm was not given.
	ErrMissingArgs = errors.New("runner: missing arguments: <graph-file> <algorithm> [--mst]")

	// ErrInvalidAlgorithm indicates an unrecognized algorithm selector.
	ErrInvalidAlgorithm = errors.New("runner: invalid algorithm")

	// ErrInvalidOption indicates a bad Option value.
	ErrInvalidOption = errors.New("runner: invalid option")

	// ErrBatchDir indicates that the batch directory cannot be read.
	ErrBatchDir = errors.New("runner: cannot read batch directory")

	// ErrMSTMismatch indicates that an MST total disagrees with the
	// reference computation during verification.
	ErrMSTMismatch = errors.New("runner: MST total mismatch")
)

// SelectorMST is the algorithm selector for MST mode.
const SelectorMST = "mst"

// Mode is a parsed algorithm selection.
type Mode struct {
	// MST runs Prim and Kruskal instead of a coloring.
	MST bool

	// Algorithm is the coloring method name; empty in MST mode.
	Algorithm string
}

// String returns the selector Mode was parsed from.
func (m Mode) String() string {
	if m.MST {
		return SelectorMST
	}
	return m.Algorithm
}

// ParseMode turns a selector into a Mode. forceMST selects MST mode
// whatever algorithm says; otherwise algorithm must be "mst" or one of
// coloring.Methods.
func ParseMode(algorithm string, forceMST bool) (Mode, error) {
	if forceMST || algorithm == SelectorMST {
		return Mode{MST: true}, nil
	}
	if !coloring.IsMethod(algorithm) {
		return Mode{}, fmt.Errorf("%w: %q (want one of %v or %q)", ErrInvalidAlgorithm, algorithm, coloring.Methods, SelectorMST)
	}

	return Mode{Algorithm: algorithm}, nil
}

// Options toggles the optional report features.
type Options struct {
	// Compare runs every coloring method and prints a summary table.
	Compare bool

	// Show prints per-vertex colors or MST edges for small graphs.
	Show bool

	// Verify checks MST totals against a reference implementation.
	Verify bool

	// Output, if set, is the CSV file results are written to.
	Output string

	// Repeat is the number of timed runs per algorithm (at least 1).
	Repeat int

	err error
}

// Option configures a Runner.
type Option func(*Options)

// DefaultOptions returns Options with every feature off and Repeat 1.
func DefaultOptions() Options {
	return Options{Repeat: 1}
}

// WithCompare enables the coloring comparison table.
func WithCompare(on bool) Option {
	return func(o *Options) { o.Compare = on }
}

// WithShow enables printing of assignments for small graphs.
func WithShow(on bool) Option {
	return func(o *Options) { o.Show = on }
}

// WithVerify enables the reference MST cross-check.
func WithVerify(on bool) Option {
	return func(o *Options) { o.Verify = on }
}

// WithOutput writes results as CSV to path.
func WithOutput(path string) Option {
	return func(o *Options) { o.Output = path }
}

// WithRepeat times each algorithm k times. k < 1 is ErrInvalidOption.
func WithRepeat(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: repeat must be >= 1 (got %d)", ErrInvalidOption, k)
			return
		}
		o.Repeat = k
	}
}
