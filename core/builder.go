// File: builder.go
// Role: Builder lifecycle: NewBuilder/Grow/AddEdge/Build.
// Determinism:
//   - Build() sorts every neighbor list ascending.
//   - Repeated AddEdge on the same pair keeps one edge; the weight of the
//     latest call wins.

package core

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// NewBuilder returns a Builder holding n isolated vertices.
// Complexity: O(n).
func NewBuilder(n int) (*Builder, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeCount, n)
	}
	b := &Builder{weights: make(map[EdgeKey]float64)}
	b.grow(n)

	return b, nil
}

// N returns the current number of vertices.
func (b *Builder) N() int { return len(b.adj) }

// Grow appends k isolated vertices and returns the index of the first one.
// Complexity: O(k).
func (b *Builder) Grow(k int) (int, error) {
	if k < 0 {
		return 0, fmt.Errorf("%w: k=%d", ErrNegativeCount, k)
	}
	first := len(b.adj)
	b.grow(k)

	return first, nil
}

func (b *Builder) grow(k int) {
	for i := 0; i < k; i++ {
		b.adj = append(b.adj, mapset.NewThreadUnsafeSet[int]())
	}
}

// AddEdge records the undirected edge {u, v} with weight w.
//
// Errors:
//   - ErrLoop if u == v.
//   - ErrVertexRange if either endpoint is outside [0, N()).
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(u, v int, w float64) error {
	n := len(b.adj)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("%w: edge (%d,%d) with n=%d", ErrVertexRange, u, v, n)
	}
	if u == v {
		return fmt.Errorf("%w: vertex %d", ErrLoop, u)
	}

	// Set insertion is idempotent; only the weight is overwritten.
	b.adj[u].Add(v)
	b.adj[v].Add(u)
	b.weights[Key(u, v)] = w

	return nil
}

// Build freezes the accumulated vertices and edges into an immutable Graph.
// The Builder may keep being used; later changes do not affect the result.
// Complexity: O(V + E log Δ) where Δ is the maximum degree.
func (b *Builder) Build() *Graph {
	n := len(b.adj)
	g := &Graph{
		n:       n,
		adj:     make([][]int, n),
		weights: make(map[EdgeKey]float64, len(b.weights)),
	}
	for v, set := range b.adj {
		nbrs := set.ToSlice()
		sort.Ints(nbrs)
		g.adj[v] = nbrs
	}
	for k, w := range b.weights {
		g.weights[k] = w
	}
	g.edges = len(g.weights)

	return g
}
