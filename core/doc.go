// Package core provides the dense, immutable graph model used by grafos.
//
// A Graph G = (V,E) has vertices numbered 0..n-1 and undirected, weighted,
// simple edges:
//
//   - Vertices are dense integer indices; callers that start from arbitrary
//     ids (e.g. loader) remap them before building.
//   - Each vertex owns a neighbor set; inserting an edge twice is idempotent.
//   - Every edge has exactly one weight, stored under the canonical key
//     Key(u, v) = {min(u,v), max(u,v)}. Unspecified weights are DefaultWeight.
//   - Self-loops are rejected (ErrLoop); parallel edges cannot exist.
//
// Lifecycle
//
//	b, _ := core.NewBuilder(3)
//	_ = b.AddEdge(0, 1, 3.0)
//	_ = b.AddEdge(1, 2, 1.0)
//	g := b.Build() // immutable from here on
//
// Builder.AddEdge may be called repeatedly for the same pair; the last weight
// wins. Builder.Grow appends fresh isolated vertices, which lets fixture
// constructors compose disjoint unions.
//
// Queries
//
//   - N, EdgeCount, Degree, MaxDegree: O(1)/O(V).
//   - Neighbors(v): ascending neighbor slice, shared, read-only.
//   - Weight(u, v): (w, ok); MustWeight panics on a non-edge.
//   - Edges(): canonical order: From ascending, then To ascending.
//
// Concurrency
//
// A built Graph is never mutated, so concurrent readers are safe without
// locks. A Builder is single-owner.
package core
