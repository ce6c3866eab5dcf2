// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the tree from vertex 0 of an immutable *core.Graph using a min‐heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/grafos/core"
)

// Prim computes the MST of the component containing vertex 0 by growing
// outwards with a min‐heap of candidate edges.
//
// Error Conditions:
//   - ErrInvalidGraph: if graph is nil.
//
// Steps:
//  1. Empty graph → empty tree.
//  2. Mark vertex 0 visited and push every edge (w, 0, v) into the heap.
//  3. While the heap is non-empty and the tree has < n-1 edges:
//     a. Pop the lightest entry (u→v).
//     b. If v is already visited, drop the entry. Stale entries are never
//     removed eagerly; they are discarded here (lazy deletion).
//     c. Otherwise mark v visited, record the edge, add its weight.
//     d. Push (w, v, x) for every unvisited neighbor x of v.
//  4. Return what was collected; fewer than n-1 edges means vertex 0's
//     component does not cover the graph.
//
// Weights come from graph.MustWeight, which panics on a missing entry.
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate input.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := graph.N()
	if n == 0 {
		return []core.Edge{}, 0, nil
	}

	// 2. Initialize visited set, result container and the frontier.
	visited := make([]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)

	const root = 0
	visited[root] = true
	pushFrontier(graph, pq, visited, root)

	// 3. Main loop: extract smallest edge and expand until n-1 edges.
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(frontierEdge)
		if visited[e.to] {
			// Stale entry: its target joined the tree through a lighter edge.
			continue
		}
		visited[e.to] = true
		mst = append(mst, core.Edge{From: e.from, To: e.to, Weight: e.weight})
		totalWeight += e.weight

		pushFrontier(graph, pq, visited, e.to)
	}

	// 4. Return the (possibly partial) tree and its total weight.
	return mst, totalWeight, nil
}

// pushFrontier pushes every edge from v to an unvisited neighbor.
func pushFrontier(graph *core.Graph, pq *edgePQ, visited []bool, v int) {
	for _, x := range graph.Neighbors(v) {
		if !visited[x] {
			heap.Push(pq, frontierEdge{weight: graph.MustWeight(v, x), from: v, to: x})
		}
	}
}

// frontierEdge is a heap entry (weight, from, to).
type frontierEdge struct {
	weight   float64
	from, to int
}

// edgePQ implements heap.Interface for a min‐heap of frontierEdge.
// Ties on weight break by (from, to) ascending so runs are reproducible.
type edgePQ []frontierEdge

// Len returns the number of entries in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then from, then to.
func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.from != b.from {
		return a.from < b.from
	}

	return a.to < b.to
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a frontierEdge. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(frontierEdge)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
