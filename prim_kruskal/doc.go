// Package prim_kruskal computes minimum spanning trees of an undirected,
// weighted *core.Graph with two independent algorithms: Prim and Kruskal.
//
// On a connected graph both return n-1 edges and the same total weight,
// though the edge sets may differ when weights tie. The run orchestrator
// executes both on the same graph and prints both totals as a cross-check.
//
// Algorithms
//
//   - Kruskal(g) ([]core.Edge, float64, error)
//
//   - Sort g.Edges() by weight with a stable sort, so ties keep the
//     canonical (From, To) order, then accept every edge whose endpoints
//     lie in different disjoint sets (union by rank, path halving).
//
//   - Every edge is considered, so on a disconnected graph the result is a
//     spanning forest with n - components edges.
//
//   - Time O(E log E), memory O(V + E).
//
//   - Prim(g) ([]core.Edge, float64, error)
//
//   - Grow a tree from vertex 0 with a min-heap of frontier edges keyed by
//     (weight, from, to). Entries whose target already joined the tree are
//     dropped when popped (lazy deletion).
//
//   - On a disconnected graph only vertex 0's component is covered.
//
//   - Time O(E log E), memory O(V + E).
//
// Both read weights through core.Graph.MustWeight: an adjacency entry
// without a weight is an internal defect and panics instead of returning an
// error. Neither algorithm reports an error for a disconnected graph.
//
// Compute(g, MSTOptions) dispatches by MethodPrim or MethodKruskal and wraps
// the result in a Tree.
package prim_kruskal
