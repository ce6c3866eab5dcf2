// SPDX-License-Identifier: MIT
// Package: grafos/builder

// Package builder assembles deterministic core.Graph fixtures for tests,
// examples and benchmarks.
//
// Each Constructor appends fresh vertices to the graph under construction,
// so BuildGraph(opts, Cycle(5), Isolated(2), Complete(4)) is the disjoint
// union of a 5-cycle, two isolated vertices and K_4, with vertices numbered
// in that order.
//
// Topologies: Path, Cycle, Complete, Star, Wheel, CompleteBipartite,
// RandomSparse, Isolated.
//
// Weights come from the configured WeightFn (ConstantWeight(1) by default,
// UniformWeight, IntegerWeight). Stochastic constructors need WithSeed or
// WithRand; identical seeds and constructor order give identical graphs.
package builder
