// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grafos/core"
)

// ErrInvalidGraph indicates that a nil graph was passed.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates an MSTOptions.Method that Compute does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from vertex 0 using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Methods lists both algorithms in reporting order.
var Methods = []string{MethodPrim, MethodKruskal}

// Tree is the result of an MST computation.
//
// On a connected graph it holds n-1 edges. On a disconnected graph Prim
// returns the tree of vertex 0's component and Kruskal a spanning forest;
// neither reports an error.
type Tree struct {
	// Edges in the order they were accepted.
	Edges []core.Edge

	// Total is the sum of the accepted edge weights.
	Total float64
}

// Spanning reports whether t spans all n vertices (n-1 edges).
func (t Tree) Spanning(n int) bool {
	return n <= 1 || len(t.Edges) == n-1
}

// MSTOptions configures which MST algorithm Compute runs.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
// Complexity: O(1).
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal → Kruskal(graph)
//	– MethodPrim    → Prim(graph)
//	– otherwise     → ErrUnknownMethod
func Compute(graph *core.Graph, opts MSTOptions) (Tree, error) {
	var (
		edges []core.Edge
		total float64
		err   error
	)
	switch opts.Method {
	case MethodKruskal:
		edges, total, err = Kruskal(graph)
	case MethodPrim:
		edges, total, err = Prim(graph)
	default:
		return Tree{}, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
	if err != nil {
		return Tree{}, err
	}

	return Tree{Edges: edges, Total: total}, nil
}
