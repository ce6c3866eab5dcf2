// Package runner is the run orchestrator behind the grafos command.
//
// ParseMode validates the algorithm selector before any file is touched:
// "greedy", "welsh", "dsatur" and "brute" select a coloring, "mst" (or the
// forceMST flag) selects MST mode, anything else is ErrInvalidAlgorithm.
//
// Runner.Run loads the graph once through loader.Load, then
//
//   - in coloring mode runs one heuristic, timing only the algorithm call,
//     and prints the algorithm, vertex count, colors used, elapsed seconds
//     and whether the coloring is valid;
//   - in MST mode runs Prim and Kruskal on the same graph and prints both
//     totals, so a connected graph shows equal weights.
//
// Options add a comparison table over all coloring methods, per-vertex
// output for small graphs, a gonum cross-check of MST totals, repeated
// timing and CSV output.
package runner
