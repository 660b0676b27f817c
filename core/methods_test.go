// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in structural error sentinels and the "no mutation on error" rule.
//   - Anchor the diagnostic renderings used by logs.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
)

// newTriangle builds 1→2 (7), 2→3 (1), 1→3 (9).
func newTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, k := range []core.NodeKey{1, 2, 3} {
		require.NoError(t, g.AddNode(k))
	}
	_, err := g.AddEdge(1, 2, 7)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 3, 9)
	require.NoError(t, err)

	return g
}

func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(42))
	assert.True(t, g.IsPresent(42))
	assert.False(t, g.IsPresent(7))
	assert.Equal(t, 1, g.Order())

	// Duplicate insert fails and leaves the graph untouched.
	err := g.AddNode(42)
	require.ErrorIs(t, err, core.ErrDuplicateNode)
	assert.Contains(t, err.Error(), "42")
	assert.Equal(t, 1, g.Order())

	// The sentinel key can never be inserted.
	require.ErrorIs(t, g.AddNode(core.InvalidNodeKey), core.ErrInvalidNodeKey)
	assert.False(t, g.IsPresent(core.InvalidNodeKey))
	assert.Equal(t, 1, g.Order())
}

func TestGraph_AddNode_NegativeAndZeroKeys(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(0))
	require.NoError(t, g.AddNode(-5))
	assert.Equal(t, []core.NodeKey{-5, 0}, g.GetNodes())
}

func TestGraph_AddEdge(t *testing.T) {
	g := newTriangle(t)
	assert.Equal(t, 3, g.Size())

	e, err := g.AddEdge(2, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, core.NodeKey(2), e.From())
	assert.Equal(t, core.NodeKey(1), e.To())
	assert.Equal(t, uint32(7), e.Weight())
	assert.Equal(t, 4, g.Size(), "reverse direction is a distinct edge")
}

func TestGraph_AddEdge_Errors(t *testing.T) {
	tests := []struct {
		name     string
		from, to core.NodeKey
		want     error
	}{
		{"duplicate", 1, 2, core.ErrDuplicateEdge},
		{"missing source", 9, 1, core.ErrMissingSource},
		{"missing destination", 1, 9, core.ErrMissingDestination},
		{"both missing", 8, 9, core.ErrMissingSource},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTriangle(t)
			before := g.EdgesToString()

			e, err := g.AddEdge(tt.from, tt.to, 3)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, e)
			assert.Equal(t, 3, g.Size())
			assert.Equal(t, before, g.EdgesToString())
			assert.Equal(t, 3, g.Order(), "edges never create nodes")
		})
	}
}

func TestGraph_MustAdd(t *testing.T) {
	g := core.NewGraph()
	g.MustAddNode(1)
	g.MustAddNode(2)
	e := g.MustAddEdge(1, 2, 5)
	assert.Equal(t, uint32(5), e.Weight())

	assert.Panics(t, func() { g.MustAddNode(1) })
	assert.Panics(t, func() { g.MustAddEdge(1, 2, 5) })
	assert.Panics(t, func() { g.MustAddEdge(1, 3, 5) })
}

func TestGraph_GetOutwardEdgesFrom(t *testing.T) {
	g := newTriangle(t)

	edges, err := g.GetOutwardEdgesFrom(1)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, core.NodeKey(2), edges[0].To())
	assert.Equal(t, core.NodeKey(3), edges[1].To())
	for _, e := range edges {
		assert.Equal(t, core.NodeKey(1), e.From())
	}

	// Sink node: present but without outward edges.
	edges, err = g.GetOutwardEdgesFrom(3)
	require.NoError(t, err)
	assert.Empty(t, edges)

	_, err = g.GetOutwardEdgesFrom(99)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_GetOutwardEdgesFrom_SharesOwnedEdges(t *testing.T) {
	g := core.NewGraph()
	g.MustAddNode(1)
	g.MustAddNode(2)
	created := g.MustAddEdge(1, 2, 4)

	edges, err := g.GetOutwardEdgesFrom(1)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Same(t, created, edges[0], "views reference the graph-owned edge")

	// Mutating the returned slice does not touch the graph.
	edges[0] = nil
	again, err := g.GetOutwardEdgesFrom(1)
	require.NoError(t, err)
	assert.Same(t, created, again[0])
}

func TestGraph_GetNodes_Snapshot(t *testing.T) {
	g := core.NewGraph()
	for _, k := range []core.NodeKey{3, 1, 2} {
		g.MustAddNode(k)
	}
	nodes := g.GetNodes()
	assert.Equal(t, []core.NodeKey{1, 2, 3}, nodes)

	nodes[0] = 100
	assert.False(t, g.IsPresent(100))
	assert.True(t, g.IsPresent(1))
}

func TestGraph_Renderings(t *testing.T) {
	empty := core.NewGraph()
	assert.Equal(t, "[]", empty.NodesToString())
	assert.Equal(t, "[]", empty.EdgesToString())

	g := core.NewGraph()
	for _, k := range []core.NodeKey{2, 1, 3} {
		g.MustAddNode(k)
	}
	g.MustAddEdge(1, 2, 7)
	g.MustAddEdge(2, 1, 7)
	g.MustAddEdge(2, 3, 10)

	// Insertion order, not sorted order.
	assert.Equal(t, "[(2), (1), (3)]", g.NodesToString())
	// Row order follows node storage: row of 2 first, then row of 1.
	assert.Equal(t, "[((2)->(1) w:7), ((2)->(3) w:10), ((1)->(2) w:7)]", g.EdgesToString())
	assert.Equal(t, "((1)->(3) w:0)", g.MustAddEdge(1, 3, 0).String())
}

func TestNodeKey_String(t *testing.T) {
	assert.Equal(t, "17", core.NodeKey(17).String())
	assert.Equal(t, "-3", core.NodeKey(-3).String())
}
