// SPDX-License-Identifier: MIT

// Package core provides the in-memory directed weighted graph store used by
// the shortest-path routine.
//
// The Graph G = (V,E) is deliberately minimal:
//
//   - Nodes are opaque NodeKey scalars kept in insertion order (no duplicates).
//   - Edges are directed and weighted with a non-negative uint32.
//   - Each node owns its outward edges in a parallel adjacency slice.
//   - At most one edge per ordered pair (from,to); (a,b) and (b,a) may coexist.
//   - Nodes and edges are only ever added, never removed or mutated.
//
// Why a linear store?
//
//   - IsPresent, duplicate-edge checks and adjacency lookup scan the node
//     slice. This keeps insertion order observable in the string renderings
//     and is adequate for the graph sizes the package targets.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(key NodeKey) error                             // O(V)
//	IsPresent(key NodeKey) bool                            // O(V)
//	GetNodes() []NodeKey                                   // O(V log V)
//	Order() int                                            // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to NodeKey, weight uint32) (*Edge, error) // O(V+E)
//	GetOutwardEdgesFrom(node NodeKey) ([]*Edge, error)      // O(V+deg(node))
//	Size() int                                              // O(V)
//
//	// Diagnostics
//	NodesToString() string  // "[(1), (2)]"
//	EdgesToString() string  // "[((1)->(2) w:7)]"
//
// Errors:
//
// All structural violations return a sentinel (use errors.Is) and leave the
// graph unchanged:
//
//	ErrInvalidNodeKey, ErrDuplicateNode, ErrDuplicateEdge,
//	ErrMissingSource, ErrMissingDestination, ErrNodeNotFound.
//
// MustAddNode and MustAddEdge panic instead, for fixtures where an ignored
// error would hide a broken graph.
//
// Concurrency:
//
// A single sync.RWMutex guards the store. Concurrent read-only queries on a
// built graph are safe; mutation during a running search is not supported.
package core
