package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/grafos/core"
	"github.com/katalvlaran/grafos/prim_kruskal"
)

// ExampleKruskal builds a small weighted square with one diagonal and
// prints the forest Kruskal accepts.
func ExampleKruskal() {
	b, _ := core.NewBuilder(4)
	_ = b.AddEdge(0, 1, 1)
	_ = b.AddEdge(1, 2, 2)
	_ = b.AddEdge(2, 3, 1)
	_ = b.AddEdge(3, 0, 4)
	_ = b.AddEdge(0, 2, 3)
	g := b.Build()

	edges, total, _ := prim_kruskal.Kruskal(g)
	for _, e := range edges {
		fmt.Printf("%d-%d:%g\n", e.From, e.To, e.Weight)
	}
	fmt.Println("total:", total)
	// Output:
	// 0-1:1
	// 2-3:1
	// 1-2:2
	// total: 4
}

// ExampleCompute runs both algorithms and compares their totals.
func ExampleCompute() {
	b, _ := core.NewBuilder(3)
	_ = b.AddEdge(0, 1, 3)
	_ = b.AddEdge(1, 2, 1)
	_ = b.AddEdge(0, 2, 5)
	g := b.Build()

	for _, m := range prim_kruskal.Methods {
		tree, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: m})
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf("%s: %g (%d edges)\n", m, tree.Total, len(tree.Edges))
	}
	// Output:
	// prim: 4 (2 edges)
	// kruskal: 4 (2 edges)
}
