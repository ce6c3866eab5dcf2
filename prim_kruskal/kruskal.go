// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It produces a minimum spanning forest of an immutable *core.Graph.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/grafos/core"
)

// Kruskal computes a minimum spanning forest of an undirected, weighted graph
// with a disjoint-set (union-find) structure.
//
// Error Conditions:
//   - ErrInvalidGraph: if graph is nil.
//
// Steps:
//  1. Collect graph.Edges() (canonical order: From asc, then To asc).
//  2. Stable sort by ascending Weight, so equal weights keep canonical order.
//  3. Initialize a DSU over [0, n).
//  4. For each edge (u,v): if find(u) != find(v), union and keep the edge.
//     Every edge is considered; on a connected graph exactly n-1 are kept.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate input.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	// 2. Collect and sort edges; weights are re-read through MustWeight so a
	//    missing entry surfaces as a panic rather than a silent zero.
	edges := graph.Edges()
	for i := range edges {
		edges[i].Weight = graph.MustWeight(edges[i].From, edges[i].To)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Disjoint sets, one per vertex.
	sets := newDSU(graph.N())

	// 4. Accept edges that join two different components.
	var (
		mst         = make([]core.Edge, 0, max(graph.N()-1, 0))
		totalWeight float64
	)
	for _, e := range edges {
		if sets.union(e.From, e.To) {
			mst = append(mst, e)
			totalWeight += e.Weight
		}
	}

	return mst, totalWeight, nil
}
