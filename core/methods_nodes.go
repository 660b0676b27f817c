// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - GetNodes() returns keys sorted ascending.
//   - NodesToString() follows insertion order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"slices"
)

// AddNode inserts a new node.
//
// Implementation:
//   - Stage 1: Reject InvalidNodeKey (ErrInvalidNodeKey).
//   - Stage 2: Under the write lock, scan for an existing key (ErrDuplicateNode).
//   - Stage 3: Append the key and an empty adjacency row.
//
// Errors:
//   - ErrInvalidNodeKey: key == InvalidNodeKey.
//   - ErrDuplicateNode: key already present.
//
// On error the graph is unchanged.
//
// Complexity:
//   - Time O(V), Space O(1) amortized.
func (g *Graph) AddNode(key NodeKey) error {
	if key == InvalidNodeKey {
		return ErrInvalidNodeKey
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.indexOf(key) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, key)
	}

	g.nodes = append(g.nodes, key)
	g.adj = append(g.adj, nil) // empty row, filled by AddEdge

	return nil
}

// MustAddNode is AddNode that panics on error.
func (g *Graph) MustAddNode(key NodeKey) {
	if err := g.AddNode(key); err != nil {
		panic(err)
	}
}

// IsPresent reports whether key is a node of the graph.
// Complexity: O(V) linear scan.
func (g *Graph) IsPresent(key NodeKey) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.indexOf(key) >= 0
}

// GetNodes returns a snapshot of all node keys in ascending order.
//
// The order is a convenience for reproducible output; the set semantics are
// what callers may rely on.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) GetNodes() []NodeKey {
	g.mu.RLock()
	keys := slices.Clone(g.nodes)
	g.mu.RUnlock()

	slices.Sort(keys)

	return keys
}

// Order returns the number of nodes.
// Complexity: O(1).
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// indexOf returns the storage slot of key, or -1.
// Caller must hold mu.
func (g *Graph) indexOf(key NodeKey) int {
	for i, n := range g.nodes {
		if n == key {
			return i
		}
	}

	return -1
}
