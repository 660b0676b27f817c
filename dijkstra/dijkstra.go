// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/frontier"
	"github.com/katalvlaran/shortpath/observability"
)

// ShortestPathDistance returns the length of the shortest directed path from
// source to destination in g, or Unreachable.
//
// Unreachable is returned when g is nil, when source or destination is not a
// node of g, or when no path exists. ShortestPathDistance(n, n, g) is 0 for
// every node n of g.
//
// The graph is only read; repeated calls with the same arguments on an
// unmodified graph return the same result.
//
// Complexity (ScanFrontier):
//
//   - Time:  O(V·E + V log V)
//   - Space: O(V)
func ShortestPathDistance(source, destination core.NodeKey, g core.View, opts ...Option) int64 {
	return Search(source, destination, g, opts...).Distance
}

// Search runs the same algorithm as ShortestPathDistance and also returns
// the search counters.
//
// Panics if g reports ErrNodeNotFound for a node that GetNodes returned:
// such a View violates its contract.
func Search(source, destination core.NodeKey, g core.View, opts ...Option) Result {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.observed && cfg.RunID == "" {
		cfg.RunID = uuid.New().String()
	}

	r := &runner{
		g:           g,
		source:      source,
		destination: destination,
		options:     cfg,
		logger:      observability.EnrichLogger(cfg.Logger, cfg.RunID, int64(source), int64(destination)),
	}

	ctx, span := cfg.Spans.StartSearchSpan(cfg.Context, cfg.RunID, int64(source), int64(destination))
	elapsed := observability.TimedOperation()

	dist := r.run()

	r.stats.Duration = elapsed()
	reachable := dist != Unreachable
	cfg.Spans.EndSearchSpan(span, dist, reachable, r.stats)
	cfg.Metrics.RecordSearch(ctx, reachable, r.stats)
	observability.LogSearchComplete(r.logger, dist, reachable, r.stats)

	return Result{Distance: dist, Reachable: reachable, Stats: r.stats}
}

// runner holds the mutable state of a single search.
type runner struct {
	g           core.View
	source      core.NodeKey
	destination core.NodeKey
	options     Options
	logger      *slog.Logger

	best    map[core.NodeKey]int64    // best known distance per node
	visited map[core.NodeKey]struct{} // settled nodes
	pq      frontier.Frontier
	stats   Stats
}

// run executes Init → Relax-loop → Terminate and returns the distance.
func (r *runner) run() int64 {
	if r.g == nil {
		return Unreachable
	}
	if !r.g.IsPresent(r.source) {
		observability.LogEndpointMissing(r.logger, "source")
		return Unreachable
	}
	if !r.g.IsPresent(r.destination) {
		observability.LogEndpointMissing(r.logger, "destination")
		return Unreachable
	}

	r.init()

	return r.process()
}

// init seeds the frontier and the best-distance map with one entry per
// node: 0 for the source, Infinity for everything else.
func (r *runner) init() {
	nodes := r.g.GetNodes()
	observability.LogSearchStart(r.logger, len(nodes))

	r.best = make(map[core.NodeKey]int64, len(nodes))
	r.visited = make(map[core.NodeKey]struct{}, len(nodes))
	r.pq = r.options.Frontier.newFrontier(len(nodes))

	for _, n := range nodes {
		e := frontier.NewEntry(n)
		if n == r.source {
			e.Priority = 0
		}
		r.best[n] = e.Priority
		r.pq.Push(e)
	}
}

// process is the relax loop.
//
// Loop termination conditions:
//
//   - The destination is settled: its priority is the answer.
//   - The popped minimum is Infinity: every remaining node is unreachable.
//   - The frontier is exhausted.
func (r *runner) process() int64 {
	for !r.pq.IsEmpty() {
		cur, err := r.pq.PopMin()
		if err != nil {
			break
		}
		r.stats.Pops++

		if _, seen := r.visited[cur.Node]; seen {
			r.stats.StalePops++
			continue
		}
		if cur.Priority == frontier.Infinity {
			break
		}

		r.visited[cur.Node] = struct{}{}
		r.stats.Settled++

		if cur.Node == r.destination {
			return cur.Priority
		}

		r.relax(cur)
		observability.LogFrontier(r.logger, int64(cur.Node), r.pq)
	}

	return Unreachable
}

// relax tries to improve the best distance of every neighbor of cur.
func (r *runner) relax(cur frontier.Entry) {
	edges, err := r.g.GetOutwardEdgesFrom(cur.Node)
	if err != nil {
		panic(fmt.Errorf("dijkstra: adjacency of settled node %s: %w", cur.Node, err))
	}

	for _, e := range edges {
		to := e.To()
		candidate := cur.Priority + int64(e.Weight())

		known, ok := r.best[to]
		if !ok {
			// Edge into a node GetNodes did not report; nothing to relax.
			continue
		}
		if candidate >= known {
			continue
		}

		r.best[to] = candidate
		if r.pq.DecreaseOrUpdate(to, candidate) {
			r.stats.Relaxations++
		}
	}
}
