package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/grafos/builder"
	"github.com/katalvlaran/grafos/core"
	"github.com/katalvlaran/grafos/prim_kruskal"
)

// buildMediumGraph returns a seeded random graph with uniform weights.
func buildMediumGraph(n int, p float64) *core.Graph {
	return builder.MustBuild(
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeight(1, 100))},
		builder.RandomSparse(n, p),
	)
}

// BenchmarkKruskal measures Kruskal on 500 vertices with ~2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(500, 0.016)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures Prim on the same graph, rooted at vertex 0.
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(500, 0.016)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g)
	}
}
