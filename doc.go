// Package shortpath computes single-pair shortest-path distances over
// directed graphs with non-negative integer weights.
//
// Layout:
//
//	core/           Graph store: NodeKey, Edge, Graph, the read-only View
//	frontier/       decrease-key priority queues (ScanQueue, IndexedQueue)
//	dijkstra/       ShortestPathDistance and Search over a core.View
//	bfs/            unweighted reachability and hop counts
//	builder/        deterministic fixtures (Path, Cycle, Grid, ...) and YAML/JSON documents
//	observability/  slog helpers, OpenTelemetry metrics and spans for searches
//	cmd/shortpath   CLI: load a graph document, print a distance
//
// Quick example:
//
//	    1 ──7──▶ 2
//	    │        ▲
//	    3        2
//	    ▼        │
//	    3 ───────┘
//
//	g := core.NewGraph()
//	for _, k := range []core.NodeKey{1, 2, 3} {
//		g.MustAddNode(k)
//	}
//	g.MustAddEdge(1, 2, 7)
//	g.MustAddEdge(1, 3, 3)
//	g.MustAddEdge(3, 2, 2)
//	d := dijkstra.ShortestPathDistance(1, 2, g) // 5
//
// Every edge is one-way; model a two-way link as two edges. A missing node or
// a missing path yields dijkstra.Unreachable, never an error.
package shortpath
