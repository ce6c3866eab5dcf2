// Package coloring provides vertex-coloring heuristics over an immutable
// *core.Graph, a validator, and an exact search for small graphs.
//
// All heuristics give the current vertex the smallest color not used by its
// already-colored neighbors. They differ only in the order in which vertices
// are visited:
//
//   - Greedy(g)       index order 0..n-1.
//   - WelshPowell(g)  descending degree; equal degrees keep index order.
//   - DSatur(g)       dynamic: highest saturation degree, then highest
//     degree, then lowest index; seeded with the max-degree vertex.
//
// Exact(g, limit) finds a minimum coloring by backtracking and refuses graphs
// with more than limit vertices (ErrTooLarge).
//
// Measurement helpers:
//
//   - Valid(g, c)     no edge joins equal colors.
//   - ColorsUsed(c)   1 + max(c); {0, 2} counts as 3 colors.
//
// None of the heuristics is optimal in general. Isolated vertices always
// receive color 0.
//
// Complexity: Greedy O(V+E), WelshPowell O(V log V + E), DSatur O(V²+E),
// Exact exponential.
package coloring
