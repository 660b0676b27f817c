// SPDX-License-Identifier: MIT

// Command shortpath loads a graph document and prints the shortest-path
// distance between two nodes.
//
// Usage:
//
//	shortpath -graph fixture.yaml -from 1 -to 5 [-frontier scan|indexed] [-stats] [-v]
//
// The distance is printed on its own line, or "unreachable" when no path
// exists. Load and flag errors go to stderr with exit status 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/observability"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shortpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		graphPath = fs.String("graph", "", "graph document (.yaml, .yml or .json)")
		from      = fs.Int64("from", 0, "source node key")
		to        = fs.Int64("to", 0, "destination node key")
		kind      = fs.String("frontier", dijkstra.ScanFrontier.String(), "frontier implementation: scan or indexed")
		stats     = fs.Bool("stats", false, "print search counters after the distance")
		verbose   = fs.Bool("v", false, "debug logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if *graphPath == "" {
		fmt.Fprintln(stderr, "shortpath: -graph is required")
		fs.Usage()
		return 1
	}
	fk, err := dijkstra.ParseFrontierKind(*kind)
	if err != nil {
		fmt.Fprintln(stderr, "shortpath:", err)
		return 1
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	g, err := builder.FromFile(*graphPath)
	if err != nil {
		logger.Error("load graph", "path", *graphPath, "error", err)
		return 1
	}
	logger.Debug("graph loaded", "path", *graphPath, "nodes", g.Order(), "edges", g.Size())

	res := dijkstra.Search(core.NodeKey(*from), core.NodeKey(*to), g,
		dijkstra.WithFrontier(fk),
		dijkstra.WithLogger(logger),
		dijkstra.WithMetrics(observability.NewMetricsRecorder()),
		dijkstra.WithTracing(observability.NewSpanManager()),
	)

	if res.Reachable {
		fmt.Fprintln(stdout, res.Distance)
	} else {
		fmt.Fprintln(stdout, "unreachable")
	}
	if *stats {
		fmt.Fprintf(stdout, "pops=%d stale_pops=%d relaxations=%d settled=%d\n",
			res.Stats.Pops, res.Stats.StalePops, res.Stats.Relaxations, res.Stats.Settled)
	}

	return 0
}
