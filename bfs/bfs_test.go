package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafos/bfs"
	"github.com/katalvlaran/grafos/builder"
	"github.com/katalvlaran/grafos/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := builder.MustBuild(nil, builder.Path(3))
	_, err = bfs.BFS(g, 3)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(g, -1)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_PathGraph checks order, depth and parent links on a path.
func TestBFS_PathGraph(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(5))

	res, err := bfs.BFS(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3, 0, 4}, res.Order)
	assert.Equal(t, []int{2, 1, 0, 1, 2}, res.Depth)
	assert.Equal(t, []int{1, 2, bfs.Unreached, 2, 3}, res.Parent)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, path)

	path, err = res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, path)
}

// TestBFS_Unreached leaves other components untouched.
func TestBFS_Unreached(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(2), builder.Isolated(1))

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.False(t, res.Reached(2))
	assert.Equal(t, bfs.Unreached, res.Depth[2])

	_, err = res.PathTo(2)
	assert.Error(t, err)
	_, err = res.PathTo(99)
	assert.Error(t, err)
}

// TestBFS_MaxDepth stops expansion at the configured depth.
func TestBFS_MaxDepth(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(6))

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.False(t, res.Reached(3))
}

// TestBFS_OnVisit propagates hook errors and sees every visit.
func TestBFS_OnVisit(t *testing.T) {
	g := builder.MustBuild(nil, builder.Star(4))

	var depths []int
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(_, d int) error {
		depths = append(depths, d)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 1}, depths)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestBFS_Cancelled returns the context error.
func TestBFS_Cancelled(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(5))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestComponents partitions mixed topologies.
func TestComponents(t *testing.T) {
	g := builder.MustBuild(nil, builder.Star(3), builder.Isolated(2), builder.Cycle(3))

	comps := bfs.Components(g)
	assert.Equal(t, [][]int{{0, 1, 2}, {3}, {4}, {5, 6, 7}}, comps)

	empty, err := core.NewBuilder(0)
	require.NoError(t, err)
	assert.Empty(t, bfs.Components(empty.Build()))
	assert.Nil(t, bfs.Components(nil))
}

// TestComponents_Cover checks every vertex lands in exactly one component.
func TestComponents_Cover(t *testing.T) {
	g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(80, 0.02))

	seen := make([]int, g.N())
	for _, comp := range bfs.Components(g) {
		for _, v := range comp {
			seen[v]++
		}
	}
	for v, c := range seen {
		assert.Equal(t, 1, c, "vertex %d", v)
	}
}
