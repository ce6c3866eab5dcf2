// Package grafos colors undirected graphs and computes their minimum
// spanning trees.
//
// The work is split into small packages:
//
//	core/          immutable dense Graph (neighbor lists + edge weights) and its Builder
//	loader/        line-oriented edge-list parser, id normalization, writer
//	coloring/      Greedy, Welsh–Powell, DSATUR, exact backtracking, validator
//	prim_kruskal/  Prim and Kruskal minimum spanning trees
//	bfs/           breadth-first traversal and connected components
//	builder/       deterministic graph constructors for tests and benchmarks
//	converters/    gonum bridge and reference MST
//	config/        TOML, .env and environment settings
//	logging/       zap logger construction
//	runner/        run orchestration, timing and reports
//	cmd/grafos/    command-line entry point
//
// Input file format:
//
//	c comment            (also "# comment")
//	p edge 5 4           (declared vertex count pads isolated vertices)
//	e 1 2 3.5            (leading "e" optional, weight defaults to 1)
//	2 3
//
// Quick start:
//
//	go run ./cmd/grafos graph.col dsatur
//	go run ./cmd/grafos graph.col mst --verify
package grafos
