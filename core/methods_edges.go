// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/MustAddEdge/GetOutwardEdgesFrom/Size.
// Determinism:
//   - GetOutwardEdgesFrom() returns edges in insertion order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.
// AI-HINT (file):
//   - Both endpoints must exist before AddEdge; edges never create nodes.
//   - An undirected connection is two AddEdge calls, one per direction.

package core

import "fmt"

// AddEdge creates a directed edge from→to with the given weight and returns
// a read-only handle to it. The graph keeps ownership of the edge.
//
// Steps:
//  1. Lock mu.
//  2. Reject an existing (from,to) pair ⇒ ErrDuplicateEdge.
//  3. Reject a missing source ⇒ ErrMissingSource.
//  4. Reject a missing destination ⇒ ErrMissingDestination.
//  5. Append the edge to the source row.
//
// Every failure returns before step 5, so the graph is unchanged on error.
//
// Complexity: O(V+E) (duplicate scan over every row).
func (g *Graph) AddEdge(from, to NodeKey, weight uint32) (*Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.findEdge(from, to) != nil {
		return nil, fmt.Errorf("%w: %s -> %s", ErrDuplicateEdge, from, to)
	}

	src := g.indexOf(from)
	if src < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingSource, from)
	}
	if g.indexOf(to) < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingDestination, to)
	}

	e := &Edge{from: from, to: to, weight: weight}
	g.adj[src] = append(g.adj[src], e)

	return e, nil
}

// MustAddEdge is AddEdge that panics on error.
func (g *Graph) MustAddEdge(from, to NodeKey, weight uint32) *Edge {
	e, err := g.AddEdge(from, to, weight)
	if err != nil {
		panic(err)
	}

	return e
}

// GetOutwardEdgesFrom returns every edge leaving node.
//
// The returned slice is a fresh snapshot; the *Edge values are references
// into the graph and stay valid for its lifetime.
//
// Errors:
//   - ErrNodeNotFound: node is absent.
//
// Complexity: O(V) lookup + O(deg(node)) copy.
func (g *Graph) GetOutwardEdgesFrom(node NodeKey) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i := g.indexOf(node)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, node)
	}

	out := make([]*Edge, 0, len(g.adj[i]))
	for _, e := range g.adj[i] {
		if e.from == node {
			out = append(out, e)
		}
	}

	return out, nil
}

// Size returns the total number of edges.
// Complexity: O(V).
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sizeLocked()
}

func (g *Graph) sizeLocked() int {
	n := 0
	for _, row := range g.adj {
		n += len(row)
	}

	return n
}

// findEdge scans every adjacency row for the (from,to) pair.
// Caller must hold mu.
func (g *Graph) findEdge(from, to NodeKey) *Edge {
	for _, row := range g.adj {
		for _, e := range row {
			if e.from == from && e.to == to {
				return e
			}
		}
	}

	return nil
}
