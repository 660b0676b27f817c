// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first reachability over a directed core.View.
//
// BFS ignores edge weights: it answers "is there a directed path" and "how
// many edges long is the shortest one". It is the unweighted counterpart of
// package dijkstra and agrees with it on reachability for every graph:
//
//	bfs.Reachable(g, s, t) == (dijkstra.ShortestPathDistance(s, t, g) != dijkstra.Unreachable)
//
// Options:
//
//   - WithContext:        cancellation, checked once per dequeued node.
//   - WithMaxDepth:       stop expanding beyond a hop count (0 = unlimited).
//   - WithFilterEdge:     skip edges, e.g. to drop zero-weight links.
//   - WithOnVisit:        hook per visited node; an error aborts the walk.
//
// Complexity: O(V + E) edge visits plus the View's lookup cost per expanded
// node (O(V) for core.Graph).
package bfs
