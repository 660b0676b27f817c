// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source, single-destination shortest-path
// distances on directed graphs with non-negative integer weights.
//
// Overview:
//
//   - Every node of the graph is pushed into a decrease-key frontier up front:
//     the source with priority 0, every other node with frontier.Infinity.
//   - The search repeatedly pops the minimum, settles it, and relaxes its
//     outward edges by lowering the neighbor's priority in place.
//   - It stops as soon as the destination is settled, or when the minimum
//     left in the frontier is Infinity (nothing else is reachable).
//
// Result:
//
//   - A distance ≥ 0, or Unreachable (-1). Unreachability is a normal
//     outcome: a missing source or destination, or no path, never errors.
//   - Only the distance is computed; paths are not reconstructed.
//
// Frontier choice:
//
//   - ScanFrontier (default): linear-scan lookup + full re-heapify, O(V) per
//     relaxation, O(V·E + V log V) per search.
//   - IndexedFrontier: node→slot map + heap.Fix, O((V + E) log V) per search.
//   - Both produce identical distances.
//
// Stale entries:
//
//   - Relaxation never pushes; it updates in place or does nothing, so the
//     frontier holds at most one entry per node. The visited check on pop is
//     kept regardless and counted as Stats.StalePops.
//
// Numeric range:
//
//   - Weights are uint32 and distances int64. A simple path has at most V-1
//     edges, so its length is below (V-1)·2^32, far from Infinity.
//
// Thread safety:
//
//   - A search only reads the graph. Concurrent searches on a graph that is
//     no longer being mutated are safe.
//
// Example:
//
//	d := dijkstra.ShortestPathDistance(1, 5, g)
//	if d == dijkstra.Unreachable {
//	    ...
//	}
package dijkstra
