package coloring

import (
	"sort"

	"github.com/katalvlaran/grafos/core"
)

// Greedy colors vertices in index order 0..n-1, giving each the smallest
// color not used by its already-colored neighbors.
// Complexity: O(V + E).
func Greedy(g *core.Graph) Coloring {
	order := make([]int, g.N())
	for v := range order {
		order[v] = v
	}

	return colorInOrder(g, order)
}

// WelshPowell colors vertices by descending degree with the same
// first-available rule as Greedy. Equal degrees keep index order (stable
// sort), so the lower index is colored first.
// Complexity: O(V log V + E).
func WelshPowell(g *core.Graph) Coloring {
	order := make([]int, g.N())
	for v := range order {
		order[v] = v
	}
	sort.SliceStable(order, func(i, j int) bool {
		return g.Degree(order[i]) > g.Degree(order[j])
	})

	return colorInOrder(g, order)
}

// colorInOrder applies the first-available rule along order.
func colorInOrder(g *core.Graph, order []int) Coloring {
	colors := newColoring(g.N())
	p := newPalette(g.MaxDegree())
	for _, v := range order {
		colors[v] = p.firstAvailable(g.Neighbors(v), colors)
	}

	return colors
}

// palette finds the smallest color absent from a neighborhood.
//
// A vertex of degree d always has a free color in [0, d], so a mark slice of
// length maxDegree+1 suffices; it is cleared after each query.
type palette struct {
	used []bool
}

func newPalette(maxDegree int) *palette {
	return &palette{used: make([]bool, maxDegree+1)}
}

// firstAvailable returns the smallest color not held by any colored neighbor.
// Complexity: O(deg).
func (p *palette) firstAvailable(nbrs []int, colors Coloring) int {
	for _, w := range nbrs {
		if c := colors[w]; c != Uncolored && c < len(p.used) {
			p.used[c] = true
		}
	}
	c := 0
	for c < len(p.used) && p.used[c] {
		c++
	}
	for _, w := range nbrs {
		if cw := colors[w]; cw != Uncolored && cw < len(p.used) {
			p.used[cw] = false
		}
	}

	return c
}
