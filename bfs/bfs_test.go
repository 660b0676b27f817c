// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/bfs"
	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
)

func TestBFS_Errors(t *testing.T) {
	t.Parallel()

	_, err := bfs.BFS(nil, 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, 1)
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	g.MustAddNode(1)
	_, err = bfs.BFS(g, 1, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SingleNode(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	g.MustAddNode(7)
	res, err := bfs.BFS(g, 7)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeKey{7}, res.Order)
	assert.Equal(t, 0, res.Depth[7])
}

func TestBFS_PathDepthsAreDirected(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeKey{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, 4, res.Depth[4])

	res, err = bfs.BFS(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeKey{3, 4}, res.Order)
	assert.False(t, res.Reached(0))
}

func TestBFS_MaxDepth(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Cycle(6))
	require.NoError(t, err)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeKey{0, 1, 2}, res.Order)
}

func TestBFS_FilterEdge(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	for _, k := range []core.NodeKey{1, 2, 3} {
		g.MustAddNode(k)
	}
	g.MustAddEdge(1, 2, 0)
	g.MustAddEdge(1, 3, 4)

	res, err := bfs.BFS(g, 1, bfs.WithFilterEdge(func(e *core.Edge) bool { return e.Weight() > 0 }))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeKey{1, 3}, res.Order)
}

func TestBFS_OnVisitError(t *testing.T) {
	t.Parallel()

	stop := errors.New("stop")
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(n core.NodeKey, _ int) error {
		if n == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []core.NodeKey{0, 1, 2}, res.Order)
}

func TestBFS_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)

	_, err = bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReachableAndHops(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	require.NoError(t, err)
	require.NoError(t, g.AddNode(99))

	assert.True(t, bfs.Reachable(g, 0, 8))
	assert.False(t, bfs.Reachable(g, 0, 99))
	assert.False(t, bfs.Reachable(g, 0, 1234))
	assert.False(t, bfs.Reachable(g, 1234, 0))
	assert.False(t, bfs.Reachable(nil, 0, 0))

	hops, ok := bfs.Hops(g, 0, 8)
	assert.True(t, ok)
	assert.Equal(t, 4, hops)

	_, ok = bfs.Hops(g, 99, 0)
	assert.False(t, ok)
}
