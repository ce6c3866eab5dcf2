package converters

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/grafos/core"
)

// ToGonum copies g into a gonum weighted undirected graph.
// Node IDs equal dense indices; absent edges weigh +Inf, self weights 0.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) *simple.WeightedUndirectedGraph {
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := 0; v < g.N(); v++ {
		dst.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		dst.SetWeightedEdge(dst.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), e.Weight))
	}

	return dst
}

// ReferenceMST computes a minimum spanning forest of g with gonum's Kruskal
// and returns the forest and its total weight.
// Complexity: O(E log E).
func ReferenceMST(g *core.Graph) (*simple.WeightedUndirectedGraph, float64) {
	forest := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	total := path.Kruskal(forest, ToGonum(g))

	return forest, total
}
