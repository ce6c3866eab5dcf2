package coloring

import "github.com/katalvlaran/grafos/core"

// Valid reports whether no edge of g joins two vertices of the same color.
// A coloring whose length differs from g.N() is never valid.
// Complexity: O(V + E).
func Valid(g *core.Graph, c Coloring) bool {
	if len(c) != g.N() {
		return false
	}
	for u := 0; u < g.N(); u++ {
		for _, v := range g.Neighbors(u) {
			if c[u] == c[v] {
				return false
			}
		}
	}

	return true
}

// ColorsUsed returns 1 + the largest color in c, ignoring Uncolored entries,
// or 0 when nothing is colored.
//
// It counts by maximum index, not by distinct values: {0, 2} reports 3.
// Complexity: O(V).
func ColorsUsed(c Coloring) int {
	highest := Uncolored
	for _, col := range c {
		if col > highest {
			highest = col
		}
	}

	return highest + 1
}
