package coloring

import (
	"fmt"

	"github.com/katalvlaran/grafos/core"
)

// Exact returns a minimum coloring of g by backtracking.
//
// It tries k = 1, 2, … colors; for each k it assigns colors to vertices in
// index order, skipping colors already held by earlier neighbors, and stops
// at the first k for which a complete assignment exists.
//
// Errors:
//   - ErrTooLarge if g.N() > limit (limit ≤ 0 selects DefaultExactLimit).
//
// Complexity: exponential; O(k^V) in the worst case.
func Exact(g *core.Graph, limit int) (Coloring, error) {
	if limit <= 0 {
		limit = DefaultExactLimit
	}
	n := g.N()
	if n > limit {
		return nil, fmt.Errorf("%w: n=%d > limit=%d", ErrTooLarge, n, limit)
	}
	colors := newColoring(n)
	if n == 0 {
		return colors, nil
	}

	for k := 1; k <= n; k++ {
		for i := range colors {
			colors[i] = Uncolored
		}
		if extend(g, colors, 0, k) {
			return colors, nil
		}
	}

	// Unreachable: k = n always succeeds.
	for v := range colors {
		colors[v] = v
	}

	return colors, nil
}

// extend tries to color vertices v..n-1 with at most k colors.
func extend(g *core.Graph, colors Coloring, v, k int) bool {
	if v == len(colors) {
		return true
	}
	for c := 0; c < k; c++ {
		if clashes(g, colors, v, c) {
			continue
		}
		colors[v] = c
		if extend(g, colors, v+1, k) {
			return true
		}
		colors[v] = Uncolored
	}

	return false
}

// clashes reports whether any neighbor of v already holds color c.
func clashes(g *core.Graph, colors Coloring, v, c int) bool {
	for _, w := range g.Neighbors(v) {
		if colors[w] == c {
			return true
		}
	}

	return false
}
