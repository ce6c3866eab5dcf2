// Package coloring defines method selectors, options and sentinel errors for
// vertex coloring, and dispatches to the individual strategies via Compute.
package coloring

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grafos/core"
)

// Uncolored marks a vertex that has not been assigned a color yet.
const Uncolored = -1

// DefaultExactLimit is the largest vertex count Exact accepts by default.
const DefaultExactLimit = 12

// ErrUnknownMethod indicates a Method value that Compute does not recognize.
var ErrUnknownMethod = errors.New("coloring: unknown method")

// ErrTooLarge indicates that Exact was asked to color a graph above its limit.
var ErrTooLarge = errors.New("coloring: graph too large for exact coloring")

// Method selectors accepted by Compute.
const (
	// MethodGreedy visits vertices in index order.
	MethodGreedy = "greedy"

	// MethodWelshPowell visits vertices by descending degree.
	MethodWelshPowell = "welsh"

	// MethodDSatur picks the most saturated vertex at every step.
	MethodDSatur = "dsatur"

	// MethodExact searches for a minimum coloring by backtracking.
	MethodExact = "brute"
)

// Methods lists every method in the order they are compared.
var Methods = []string{MethodGreedy, MethodWelshPowell, MethodDSatur, MethodExact}

// Coloring holds one color per dense vertex index.
type Coloring []int

// newColoring returns a Coloring of length n with every entry Uncolored.
func newColoring(n int) Coloring {
	c := make(Coloring, n)
	for i := range c {
		c[i] = Uncolored
	}

	return c
}

// Options configures Compute.
type Options struct {
	// Method is one of the Method* constants.
	Method string

	// Limit bounds the vertex count accepted by MethodExact.
	Limit int
}

// Option mutates Options.
type Option func(*Options)

// WithMethod sets the coloring Method.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithLimit sets the MethodExact vertex limit.
func WithLimit(n int) Option {
	return func(o *Options) { o.Limit = n }
}

// DefaultOptions returns Options for MethodDSatur with DefaultExactLimit.
func DefaultOptions() Options {
	return Options{Method: MethodDSatur, Limit: DefaultExactLimit}
}

// IsMethod reports whether name is a known Method.
func IsMethod(name string) bool {
	for _, m := range Methods {
		if m == name {
			return true
		}
	}

	return false
}

// Compute runs the strategy selected by opts.Method on g.
//
//   - MethodGreedy       → Greedy(g)
//   - MethodWelshPowell  → WelshPowell(g)
//   - MethodDSatur       → DSatur(g)
//   - MethodExact        → Exact(g, opts.Limit)
//   - otherwise          → ErrUnknownMethod
func Compute(g *core.Graph, opts Options) (Coloring, error) {
	switch opts.Method {
	case MethodGreedy:
		return Greedy(g), nil
	case MethodWelshPowell:
		return WelshPowell(g), nil
	case MethodDSatur:
		return DSatur(g), nil
	case MethodExact:
		return Exact(g, opts.Limit)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}
