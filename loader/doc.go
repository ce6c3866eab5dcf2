// Package loader parses the line-oriented graph format used by grafos and
// normalizes it into a dense core.Graph.
//
// Format
//
//	c free-form comment          (lines starting with "c" or "#")
//	p edge 5 4                   (optional; third token = vertex count)
//	e 1 2 3.5                    (edge 1-2 with weight 3.5)
//	2 3                          (edge 2-3, "e" optional, weight 1.0)
//
// Normalization
//
//   - Self-loops are dropped; a repeated pair keeps its last weight.
//   - Lines that do not parse as "<int> <int> [float]" are skipped.
//   - With a declared count N the universe is padded with ids
//     [base, base+N), base being 0 when id 0 occurs and 1 otherwise.
//   - Ids are sorted and remapped to 0..n-1; Result.Mapping keeps the
//     original → dense mapping in ascending id order.
//
// Errors
//
// ErrOpen, ErrRead and ErrNoEdges all match errors.Is(err, ErrLoad).
// An input whose only edges are self-loops yields ErrNoEdges.
package loader
