package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafos/core"
)

// TestBuilder_Errors verifies that invalid construction requests are rejected.
func TestBuilder_Errors(t *testing.T) {
	_, err := core.NewBuilder(-1)
	assert.ErrorIs(t, err, core.ErrNegativeCount)

	b, err := core.NewBuilder(3)
	require.NoError(t, err)

	assert.ErrorIs(t, b.AddEdge(1, 1, 2), core.ErrLoop)
	assert.ErrorIs(t, b.AddEdge(0, 3, 1), core.ErrVertexRange)
	assert.ErrorIs(t, b.AddEdge(-1, 0, 1), core.ErrVertexRange)

	_, err = b.Grow(-2)
	assert.ErrorIs(t, err, core.ErrNegativeCount)
}

// TestBuilder_Idempotent checks that repeated edges collapse and the last weight wins.
func TestBuilder_Idempotent(t *testing.T) {
	b, err := core.NewBuilder(2)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1, 3))
	require.NoError(t, b.AddEdge(1, 0, 7))

	g := b.Build()
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, []int{0}, g.Neighbors(1))

	w, ok := g.Weight(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 7.0, w)
}

// TestGraph_Queries covers degree, ordering and weight lookups on a small graph.
func TestGraph_Queries(t *testing.T) {
	b, err := core.NewBuilder(4)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(2, 0, 5))
	require.NoError(t, b.AddEdge(0, 1, 1))
	require.NoError(t, b.AddEdge(1, 2, 2))
	g := b.Build()

	assert.Equal(t, 4, g.N())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
	assert.Equal(t, 0, g.Degree(3))
	assert.Equal(t, 2, g.MaxDegree())
	assert.True(t, g.HasEdge(2, 1))
	assert.False(t, g.HasEdge(0, 3))
	assert.Equal(t, 8.0, g.TotalWeight())

	want := []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 5},
		{From: 1, To: 2, Weight: 2},
	}
	assert.Equal(t, want, g.Edges())

	assert.Panics(t, func() { g.MustWeight(0, 3) })
	assert.Equal(t, 5.0, g.MustWeight(2, 0))
}

// TestBuilder_GrowAndSnapshot ensures Build snapshots state and Grow appends vertices.
func TestBuilder_GrowAndSnapshot(t *testing.T) {
	b, err := core.NewBuilder(2)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1, 1))
	g1 := b.Build()

	first, err := b.Grow(2)
	require.NoError(t, err)
	assert.Equal(t, 2, first)
	assert.Equal(t, 4, b.N())
	require.NoError(t, b.AddEdge(1, 3, 4))

	g2 := b.Build()
	assert.Equal(t, 2, g1.N())
	assert.Equal(t, 1, g1.EdgeCount())
	assert.Equal(t, 4, g2.N())
	assert.Equal(t, 2, g2.EdgeCount())
	assert.Equal(t, []int{0, 3}, g2.Neighbors(1))
}

// TestKey verifies canonical ordering of edge keys.
func TestKey(t *testing.T) {
	assert.Equal(t, core.EdgeKey{U: 1, V: 4}, core.Key(4, 1))
	assert.Equal(t, core.Key(1, 4), core.Edge{From: 4, To: 1}.Key())
}
