// Package core defines the dense, zero-based Graph model shared by every
// algorithm package, together with the Builder used to assemble it.
//
// This file declares Edge, EdgeKey, Graph, Builder and the sentinel errors.
//
// Errors:
//
//	ErrLoop            - self-loop passed to Builder.AddEdge.
//	ErrVertexRange     - vertex index outside [0, n).
//	ErrNegativeCount   - negative vertex count passed to NewBuilder or Grow.
package core

import (
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
)

// Sentinel errors for graph construction.
var (
	// ErrLoop indicates an edge whose endpoints are the same vertex.
	ErrLoop = errors.New("core: self-loop not allowed")

	// ErrVertexRange indicates a vertex index outside [0, n).
	ErrVertexRange = errors.New("core: vertex index out of range")

	// ErrNegativeCount indicates a negative vertex count.
	ErrNegativeCount = errors.New("core: negative vertex count")
)

// DefaultWeight is the weight of an edge whose weight was not specified.
const DefaultWeight = 1.0

// EdgeKey identifies an undirected edge by its ordered endpoints U < V.
type EdgeKey struct {
	U int
	V int
}

// Key returns the canonical EdgeKey for the unordered pair {u, v}.
// Complexity: O(1).
func Key(u, v int) EdgeKey {
	if u > v {
		u, v = v, u
	}

	return EdgeKey{U: u, V: v}
}

// Edge is a weighted connection between two dense vertex indices.
//
// For MST results From is the endpoint already in the tree and To the one
// it brought in; for Graph.Edges() From < To.
type Edge struct {
	// From is the first endpoint.
	From int

	// To is the second endpoint.
	To int

	// Weight is the cost of the edge.
	Weight float64
}

// Key returns the canonical EdgeKey of e.
func (e Edge) Key() EdgeKey { return Key(e.From, e.To) }

// Graph is an immutable undirected simple graph over vertices [0, n).
//
// adj[v] holds v's neighbors in ascending order; weights holds exactly one
// entry per edge, keyed by Key(u, v). A Graph is produced by Builder.Build
// and never mutated afterwards, so it carries no locks.
type Graph struct {
	n       int
	adj     [][]int
	weights map[EdgeKey]float64
	edges   int
}

// Builder accumulates vertices and edges before freezing them into a Graph.
//
// Neighbor sets make insertion idempotent: repeating an edge never creates a
// parallel edge, it only overwrites the stored weight (last write wins).
// A Builder is not safe for concurrent use.
type Builder struct {
	adj     []mapset.Set[int]
	weights map[EdgeKey]float64
}
