// SPDX-License-Identifier: MIT
// Package dijkstra_test provides examples demonstrating the shortest-path routine.
package dijkstra_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// ExampleShortestPathDistance finds the cheaper two-hop route and shows that
// edges are one-way.
func ExampleShortestPathDistance() {
	g := core.NewGraph()
	for _, k := range []core.NodeKey{1, 2, 3} {
		g.MustAddNode(k)
	}
	g.MustAddEdge(1, 2, 10)
	g.MustAddEdge(1, 3, 3)
	g.MustAddEdge(3, 2, 2)

	fmt.Println(dijkstra.ShortestPathDistance(1, 2, g))
	fmt.Println(dijkstra.ShortestPathDistance(2, 1, g) == dijkstra.Unreachable)
	// Output:
	// 5
	// true
}

// ExampleSearch uses the indexed frontier and reads the counters.
func ExampleSearch() {
	g := core.NewGraph()
	for _, k := range []core.NodeKey{1, 2, 3} {
		g.MustAddNode(k)
	}
	g.MustAddEdge(1, 2, 1)
	g.MustAddEdge(2, 3, 1)
	g.MustAddEdge(3, 1, 1)

	res := dijkstra.Search(1, 3, g, dijkstra.WithFrontier(dijkstra.IndexedFrontier))
	fmt.Printf("distance=%d settled=%d\n", res.Distance, res.Stats.Settled)
	// Output: distance=2 settled=3
}

// ExampleShortestPathDistance_cityRoute models six intersections with two-way
// streets as paired edges. The closed road C-D carries the largest weight so
// it is never worth taking.
func ExampleShortestPathDistance_cityRoute() {
	const (
		a core.NodeKey = iota + 1
		b
		c
		d
		e
		f
	)
	g := core.NewGraph()
	for _, k := range []core.NodeKey{a, b, c, d, e, f} {
		g.MustAddNode(k)
	}
	roads := []struct {
		u, v    core.NodeKey
		minutes uint32
	}{
		{a, b, 4}, {a, c, 2}, {b, c, 1}, {b, d, 5},
		{c, d, math.MaxUint32}, {c, e, 10}, {d, f, 6}, {e, f, 3},
	}
	for _, r := range roads {
		g.MustAddEdge(r.u, r.v, r.minutes)
		g.MustAddEdge(r.v, r.u, r.minutes)
	}

	fmt.Println(dijkstra.ShortestPathDistance(a, f, g))
	// Output: 14
}
