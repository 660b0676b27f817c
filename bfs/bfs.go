// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  core.NodeKey
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	g     core.View
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS walks g breadth-first from start along directed edges.
// Returns ErrGraphNil, ErrStartNodeNotFound or ErrOptionViolation for invalid
// input, ErrNeighbors when the view fails, the context error on
// cancellation, or the wrapped OnVisit error. On error the partial Result is
// still returned.
func BFS(g core.View, start core.NodeKey, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.IsPresent(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartNodeNotFound, start)
	}

	w := &walker{
		g:    g,
		opts: o,
		ctx:  o.Ctx,
		res: &Result{
			Depth: make(map[core.NodeKey]int),
		},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// Reachable reports whether a directed path leads from `from` to `to`.
// Absent endpoints are never reachable.
func Reachable(g core.View, from, to core.NodeKey) bool {
	if g == nil || !g.IsPresent(to) {
		return false
	}
	res, err := BFS(g, from)
	if err != nil {
		return false
	}

	return res.Reached(to)
}

// Hops returns the number of edges on the shortest directed path, ignoring
// weights, and false when `to` cannot be reached.
func Hops(g core.View, from, to core.NodeKey) (int, bool) {
	if g == nil || !g.IsPresent(to) {
		return 0, false
	}
	res, err := BFS(g, from)
	if err != nil {
		return 0, false
	}
	d, ok := res.Depth[to]

	return d, ok
}

// enqueue records the depth of node and appends it to the queue.
func (w *walker) enqueue(node core.NodeKey, d int) {
	w.res.Depth[node] = d
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", item.node, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues every unseen
// destination that the view knows about.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	edges, err := w.g.GetOutwardEdgesFrom(item.node)
	if err != nil {
		return fmt.Errorf("%w: outward edges of %s: %w", ErrNeighbors, item.node, err)
	}
	for _, e := range edges {
		if !w.opts.FilterEdge(e) {
			continue
		}
		to := e.To()
		if _, seen := w.res.Depth[to]; seen || !w.g.IsPresent(to) {
			continue
		}
		w.enqueue(to, next)
	}

	return nil
}
