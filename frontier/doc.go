// SPDX-License-Identifier: MIT

// Package frontier provides min-priority containers over (node, priority)
// entries that support the decrease-key operation Dijkstra's algorithm needs.
//
// Overview:
//
//   - A plain binary heap can push and pop, but cannot lower the priority of
//     an element already in it. Frontier adds Contains and DecreaseOrUpdate.
//   - Identity is the node key alone; the priority is mutable payload.
//   - Ties between equal priorities resolve in heap order: deterministic for
//     a given push sequence, but neither FIFO nor LIFO.
//
// Implementations:
//
//   - ScanQueue: locates entries with a linear scan and restores the heap by
//     re-heapifying the whole storage after a decrease. O(n) per lookup;
//     adequate for the graph sizes this module targets.
//   - IndexedQueue: pairs the heap with a node→slot map so lookup is O(1)
//     and decrease-key is O(log n) via heap.Fix. Externally identical.
//
// DecreaseOrUpdate semantics (both implementations):
//
//   - node absent                  → false, no-op (not an error)
//   - newPriority < stored priority → overwrite, restore heap order, true
//   - otherwise                    → false, entry untouched
//
// Push does not suppress duplicates; callers keep at most one live entry per
// node. PopMin is the only operation that removes an entry.
//
// Errors:
//
//   - ErrEmpty: PopMin or Peek on an empty container.
//
// Thread safety:
//
//   - Frontiers are not safe for concurrent use; a search owns its frontier.
package frontier
