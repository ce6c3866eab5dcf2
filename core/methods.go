// File: methods.go
// Role: read-only queries over an immutable Graph.
// Determinism:
//   - Neighbors() returns ascending indices.
//   - Edges() returns edges ordered by From asc, then To asc, with From < To.

package core

import "fmt"

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Neighbors returns the ascending neighbor list of v.
// The slice is shared with the Graph and must not be modified.
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []int { return g.adj[v] }

// Degree returns the number of neighbors of v.
// Complexity: O(1).
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// MaxDegree returns the largest vertex degree, or 0 for an empty graph.
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	best := 0
	for _, nbrs := range g.adj {
		if len(nbrs) > best {
			best = len(nbrs)
		}
	}

	return best
}

// HasEdge reports whether {u, v} is an edge.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.weights[Key(u, v)]

	return ok
}

// Weight returns the weight of {u, v} and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, bool) {
	w, ok := g.weights[Key(u, v)]

	return w, ok
}

// MustWeight returns the weight of {u, v}.
//
// It panics when the pair has no entry: every adjacency pair has a weight by
// construction, so a miss means the caller passed a non-adjacent pair.
func (g *Graph) MustWeight(u, v int) float64 {
	w, ok := g.weights[Key(u, v)]
	if !ok {
		panic(fmt.Sprintf("core: no weight for edge (%d,%d)", u, v))
	}

	return w
}

// Edges returns every edge once, with From < To, in canonical order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v, Weight: g.weights[Key(u, v)]})
			}
		}
	}

	return out
}

// TotalWeight sums the weights of all edges.
// Complexity: O(E).
func (g *Graph) TotalWeight() float64 {
	var sum float64
	for _, e := range g.Edges() {
		sum += e.Weight
	}

	return sum
}
