// Package bfs implements breadth-first traversal over a dense *core.Graph.
//
// BFS(g, start, opts...) visits vertices in non-decreasing distance from
// start and returns:
//
//   - Order: visit sequence;
//   - Depth: edge distance per vertex (Unreached when not visited);
//   - Parent: BFS-tree predecessor (Unreached for start and unvisited).
//
// Neighbors are explored in ascending index order, so results are
// deterministic.
//
// Options: WithContext (cancellation), WithMaxDepth (d > 0 limits depth,
// d < 0 is ErrOptionViolation), WithOnVisit (hook; an error aborts).
//
// Components(g) repeats the traversal from every unvisited vertex and
// returns the connected components. MST consumers use it to relate the edge
// count of a spanning forest to the graph: edges = n − len(Components(g)).
//
// Complexity: O(V + E) time and memory.
package bfs
