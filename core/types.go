// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NodeKey, Edge, Graph, the View contract and sentinel errors.
// Policy:
//   - Edges are owned by the Graph; callers only ever see *Edge handles
//     without setters.
//   - Errors are sentinels; context is attached with %w at the call site.

package core

import (
	"errors"
	"math"
	"strconv"
	"sync"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidNodeKey indicates an attempt to insert InvalidNodeKey.
	ErrInvalidNodeKey = errors.New("core: invalid node key")

	// ErrDuplicateNode indicates AddNode was called with a key already present.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrDuplicateEdge indicates an edge with the same (from,to) pair exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrMissingSource indicates the edge source node is not in the graph.
	ErrMissingSource = errors.New("core: no such source node")

	// ErrMissingDestination indicates the edge destination node is not in the graph.
	ErrMissingDestination = errors.New("core: no such destination node")

	// ErrNodeNotFound indicates a query referenced a node that is not in the graph.
	ErrNodeNotFound = errors.New("core: no such node")
)

// NodeKey identifies a node. Keys are opaque, totally ordered and hashable.
type NodeKey int64

// InvalidNodeKey never equals a key stored in a Graph; AddNode rejects it.
const InvalidNodeKey NodeKey = math.MinInt64

// String renders the key in base 10.
func (k NodeKey) String() string { return strconv.FormatInt(int64(k), 10) }

// Edge is a directed, weighted connection between two nodes.
//
// Edges are created and owned by a Graph. The handle returned by AddEdge and
// GetOutwardEdgesFrom stays valid for the lifetime of the Graph; it exposes
// accessors only, so callers cannot mutate the stored edge.
type Edge struct {
	from   NodeKey
	to     NodeKey
	weight uint32
}

// From returns the source node.
func (e *Edge) From() NodeKey { return e.from }

// To returns the destination node.
func (e *Edge) To() NodeKey { return e.to }

// Weight returns the non-negative edge weight.
func (e *Edge) Weight() uint32 { return e.weight }

// String renders the edge as "((from)->(to) w:weight)".
func (e *Edge) String() string {
	b := make([]byte, 0, 32)
	b = append(b, "(("...)
	b = strconv.AppendInt(b, int64(e.from), 10)
	b = append(b, ")->("...)
	b = strconv.AppendInt(b, int64(e.to), 10)
	b = append(b, ") w:"...)
	b = strconv.AppendUint(b, uint64(e.weight), 10)
	b = append(b, ')')

	return string(b)
}

// View is the read-only surface a shortest-path search needs.
// *Graph satisfies it; tests and adapters may provide their own.
type View interface {
	// IsPresent reports whether key is a node of the graph.
	IsPresent(key NodeKey) bool

	// GetNodes returns a snapshot of every node key.
	GetNodes() []NodeKey

	// GetOutwardEdgesFrom returns every edge whose From() is node,
	// or ErrNodeNotFound if node is absent.
	GetOutwardEdgesFrom(node NodeKey) ([]*Edge, error)
}

// Graph is a directed weighted graph with insertion-ordered nodes.
//
// nodes[i] owns the outward edges stored in adj[i]; the two slices always
// have the same length. mu guards both.
type Graph struct {
	mu sync.RWMutex

	nodes []NodeKey
	adj   [][]*Edge
}

// Compile-time check that *Graph satisfies View.
var _ View = (*Graph)(nil)

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{}
}
