// SPDX-License-Identifier: MIT
// Package core_test verifies that read-only queries on a built graph may run concurrently.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
)

// TestConcurrentReads runs many readers against one immutable graph.
func TestConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	const n = 64
	for i := 0; i < n; i++ {
		g.MustAddNode(core.NodeKey(i))
	}
	for i := 0; i < n-1; i++ {
		g.MustAddEdge(core.NodeKey(i), core.NodeKey(i+1), uint32(i))
	}

	const readers = 32
	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func(id int) {
			defer wg.Done()
			key := core.NodeKey(id % n)
			require.True(t, g.IsPresent(key))
			_, err := g.GetOutwardEdgesFrom(key)
			require.NoError(t, err)
			require.Len(t, g.GetNodes(), n)
			require.Equal(t, n-1, g.Size())
		}(r)
	}
	wg.Wait()
}

// TestConcurrentAddNode checks that racing writers cannot insert a duplicate.
func TestConcurrentAddNode(t *testing.T) {
	g := core.NewGraph()
	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for w := 0; w < writers; w++ {
		go func() {
			defer wg.Done()
			_ = g.AddNode(1) // exactly one writer wins
		}()
	}
	wg.Wait()
	require.Equal(t, 1, g.Order())
}
