package coloring_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafos/builder"
	"github.com/katalvlaran/grafos/coloring"
	"github.com/katalvlaran/grafos/core"
)

// strategies lists the heuristics under test by name.
var strategies = map[string]func(*core.Graph) coloring.Coloring{
	coloring.MethodGreedy:      coloring.Greedy,
	coloring.MethodWelshPowell: coloring.WelshPowell,
	coloring.MethodDSatur:      coloring.DSatur,
}

// buildEdges creates an n-vertex graph from unit-weight index pairs.
func buildEdges(t *testing.T, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	b, err := core.NewBuilder(n)
	require.NoError(t, err)
	for _, p := range pairs {
		require.NoError(t, b.AddEdge(p[0], p[1], 1))
	}

	return b.Build()
}

// fixtures returns a spread of topologies, including disconnected ones.
func fixtures(t *testing.T) map[string]*core.Graph {
	t.Helper()
	seed := []builder.BuilderOption{builder.WithSeed(1)}

	return map[string]*core.Graph{
		"path":      builder.MustBuild(nil, builder.Path(7)),
		"odd cycle": builder.MustBuild(nil, builder.Cycle(7)),
		"complete":  builder.MustBuild(nil, builder.Complete(6)),
		"wheel":     builder.MustBuild(nil, builder.Wheel(8)),
		"bipartite": builder.MustBuild(nil, builder.CompleteBipartite(3, 4)),
		"mixed":     builder.MustBuild(nil, builder.Star(5), builder.Isolated(3), builder.Cycle(4)),
		"random":    builder.MustBuild(seed, builder.RandomSparse(60, 0.15)),
		"dense":     builder.MustBuild(seed, builder.RandomSparse(40, 0.6)),
	}
}

// TestHeuristics_Valid asserts every heuristic yields a complete, proper coloring.
func TestHeuristics_Valid(t *testing.T) {
	for gname, g := range fixtures(t) {
		for sname, color := range strategies {
			t.Run(gname+"/"+sname, func(t *testing.T) {
				c := color(g)
				require.Len(t, c, g.N())
				assert.NotContains(t, c, coloring.Uncolored)
				assert.True(t, coloring.Valid(g, c), "coloring %v is not proper", c)
				assert.LessOrEqual(t, coloring.ColorsUsed(c), g.MaxDegree()+1)
			})
		}
	}
}

// TestHeuristics_IsolatedGetZero checks that vertices without neighbors get color 0.
func TestHeuristics_IsolatedGetZero(t *testing.T) {
	g := builder.MustBuild(nil, builder.Complete(4), builder.Isolated(2), builder.Path(2), builder.Isolated(1))
	isolated := []int{4, 5, 8}
	for sname, color := range strategies {
		c := color(g)
		for _, v := range isolated {
			assert.Equal(t, 0, c[v], "%s: isolated vertex %d", sname, v)
		}
	}
}

// TestHeuristics_Ordering pins the exact colorings on a path whose index order
// misleads greedy: edges 0-2, 2-3, 3-1.
func TestHeuristics_Ordering(t *testing.T) {
	g := buildEdges(t, 4, [2]int{0, 2}, [2]int{2, 3}, [2]int{3, 1})

	want := map[string]coloring.Coloring{
		coloring.MethodGreedy:      {0, 0, 1, 2},
		coloring.MethodWelshPowell: {1, 0, 0, 1},
		coloring.MethodDSatur:      {1, 0, 0, 1},
	}
	for sname, color := range strategies {
		if diff := cmp.Diff(want[sname], color(g)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", sname, diff)
		}
	}
	greedy := coloring.ColorsUsed(coloring.Greedy(g))
	assert.LessOrEqual(t, coloring.ColorsUsed(coloring.WelshPowell(g)), greedy)
	assert.LessOrEqual(t, coloring.ColorsUsed(coloring.DSatur(g)), greedy)
}

// TestHeuristics_KnownChromatic checks color counts on graphs with known χ.
func TestHeuristics_KnownChromatic(t *testing.T) {
	tests := []struct {
		name string
		g    *core.Graph
		want int
	}{
		{"K5", builder.MustBuild(nil, builder.Complete(5)), 5},
		{"even cycle", builder.MustBuild(nil, builder.Cycle(6)), 2},
		{"odd cycle", builder.MustBuild(nil, builder.Cycle(5)), 3},
		{"odd wheel", builder.MustBuild(nil, builder.Wheel(6)), 4},
		{"K3,4", builder.MustBuild(nil, builder.CompleteBipartite(3, 4)), 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, coloring.ColorsUsed(coloring.DSatur(tc.g)))
			exact, err := coloring.Exact(tc.g, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, coloring.ColorsUsed(exact))
		})
	}
}

// TestDSatur_TieBreak pins the lowest-index tie-break on a 4-cycle.
func TestDSatur_TieBreak(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(4))
	assert.Equal(t, coloring.Coloring{0, 1, 0, 1}, coloring.DSatur(g))
	assert.Equal(t, coloring.Coloring{}, coloring.DSatur(buildEdges(t, 0)))
}

// TestExact_NeverWorse compares the exact search with every heuristic.
func TestExact_NeverWorse(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(10, 0.4))
		exact, err := coloring.Exact(g, 10)
		require.NoError(t, err)
		require.True(t, coloring.Valid(g, exact))
		for sname, color := range strategies {
			assert.LessOrEqual(t, coloring.ColorsUsed(exact), coloring.ColorsUsed(color(g)), "seed %d, %s", seed, sname)
		}
	}

	_, err := coloring.Exact(builder.MustBuild(nil, builder.Path(13)), 0)
	assert.ErrorIs(t, err, coloring.ErrTooLarge)
}

// TestValid_Rejects covers improper and malformed colorings.
func TestValid_Rejects(t *testing.T) {
	g := buildEdges(t, 3, [2]int{0, 1}, [2]int{1, 2})
	assert.True(t, coloring.Valid(g, coloring.Coloring{0, 1, 0}))
	assert.False(t, coloring.Valid(g, coloring.Coloring{0, 0, 1}))
	assert.False(t, coloring.Valid(g, coloring.Coloring{0, 1}))
	assert.False(t, coloring.Valid(g, coloring.Coloring{-1, -1, 0}))
}

// TestColorsUsed checks the 1 + max counting policy.
func TestColorsUsed(t *testing.T) {
	assert.Equal(t, 3, coloring.ColorsUsed(coloring.Coloring{0, 2}))
	assert.Equal(t, 1, coloring.ColorsUsed(coloring.Coloring{0, 0, 0}))
	assert.Equal(t, 2, coloring.ColorsUsed(coloring.Coloring{-1, 1}))
	assert.Equal(t, 0, coloring.ColorsUsed(coloring.Coloring{-1}))
	assert.Equal(t, 0, coloring.ColorsUsed(nil))
}

// TestCompute_Dispatch verifies method selection and unknown methods.
func TestCompute_Dispatch(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(5))

	for _, m := range coloring.Methods {
		assert.True(t, coloring.IsMethod(m))
		c, err := coloring.Compute(g, coloring.Options{Method: m})
		require.NoError(t, err, m)
		assert.True(t, coloring.Valid(g, c), m)
	}

	_, err := coloring.Compute(g, coloring.Options{Method: "xyz"})
	assert.ErrorIs(t, err, coloring.ErrUnknownMethod)
	assert.False(t, coloring.IsMethod("xyz"))

	opts := coloring.DefaultOptions()
	coloring.WithMethod(coloring.MethodExact)(&opts)
	coloring.WithLimit(3)(&opts)
	_, err = coloring.Compute(g, opts)
	assert.ErrorIs(t, err, coloring.ErrTooLarge)
}
