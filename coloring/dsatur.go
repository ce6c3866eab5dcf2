package coloring

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/grafos/core"
)

// DSatur colors g with the saturation-degree heuristic.
//
// Steps:
//  1. Color the vertex of maximum degree with 0 (lowest index on ties) and
//     record color 0 in the neighbor-color set of each of its neighbors.
//  2. Repeat n-1 times: scan all uncolored vertices and pick the one with the
//     largest saturation (distinct neighbor colors), then the largest degree,
//     then the lowest index; give it the smallest color missing from its
//     neighbor-color set; add that color to every uncolored neighbor's set.
//
// The selection is a linear scan, not a priority queue.
// Complexity: O(V² + E).
func DSatur(g *core.Graph) Coloring {
	n := g.N()
	colors := newColoring(n)
	if n == 0 {
		return colors
	}

	seen := make([]mapset.Set[int], n)
	for v := range seen {
		seen[v] = mapset.NewThreadUnsafeSet[int]()
	}

	assign := func(v, c int) {
		colors[v] = c
		for _, w := range g.Neighbors(v) {
			if colors[w] == Uncolored {
				seen[w].Add(c)
			}
		}
	}

	// 1. Seed with the maximum-degree vertex.
	seed := 0
	for v := 1; v < n; v++ {
		if g.Degree(v) > g.Degree(seed) {
			seed = v
		}
	}
	assign(seed, 0)

	// 2. Saturation-driven selection.
	for step := 1; step < n; step++ {
		best := Uncolored
		for v := 0; v < n; v++ {
			if colors[v] != Uncolored {
				continue
			}
			if best == Uncolored || moreSaturated(g, seen, v, best) {
				best = v
			}
		}
		if best == Uncolored {
			break
		}

		c := 0
		for seen[best].Contains(c) {
			c++
		}
		assign(best, c)
	}

	return colors
}

// moreSaturated reports whether v strictly beats u on (saturation, degree).
func moreSaturated(g *core.Graph, seen []mapset.Set[int], v, u int) bool {
	sv, su := seen[v].Cardinality(), seen[u].Cardinality()
	if sv != su {
		return sv > su
	}

	return g.Degree(v) > g.Degree(u)
}
