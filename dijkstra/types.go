// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/shortpath/frontier"
	"github.com/katalvlaran/shortpath/observability"
)

// Unreachable is the distance reported when no path exists, or when the
// source or destination is not in the graph.
const Unreachable int64 = -1

// FrontierKind selects the decrease-key frontier implementation.
type FrontierKind int

const (
	// ScanFrontier uses frontier.ScanQueue (linear-scan lookup).
	ScanFrontier FrontierKind = iota

	// IndexedFrontier uses frontier.IndexedQueue (O(log n) decrease-key).
	IndexedFrontier
)

// String returns the flag spelling of the kind ("scan" or "indexed").
func (k FrontierKind) String() string {
	switch k {
	case ScanFrontier:
		return "scan"
	case IndexedFrontier:
		return "indexed"
	default:
		return fmt.Sprintf("FrontierKind(%d)", int(k))
	}
}

// ParseFrontierKind maps "scan" or "indexed" to a FrontierKind.
func ParseFrontierKind(s string) (FrontierKind, error) {
	switch s {
	case "scan", "":
		return ScanFrontier, nil
	case "indexed":
		return IndexedFrontier, nil
	default:
		return 0, fmt.Errorf("dijkstra: unknown frontier kind %q", s)
	}
}

// newFrontier allocates the configured frontier sized for order nodes.
func (k FrontierKind) newFrontier(order int) frontier.Frontier {
	if k == IndexedFrontier {
		return frontier.NewIndexedQueue(order)
	}
	return frontier.NewScanQueue(order)
}

// Options configures a search.
//
// Frontier – decrease-key implementation (default ScanFrontier).
// Logger   – optional structured logger; nil disables logging.
// Metrics  – metrics recorder (default observability.NoopMetrics).
// Spans    – span manager (default observability.NoopSpanManager).
// Context  – parent context for spans and metrics (default Background).
// RunID    – correlation id for logs and spans; generated when empty and any
// observability option is set.
type Options struct {
	Frontier FrontierKind
	Logger   *slog.Logger
	Metrics  observability.MetricsRecorder
	Spans    observability.SpanManager
	Context  context.Context
	RunID    string

	observed bool // set by any option that enables logs, metrics or spans
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the configuration used when no option is given.
//
// Defaults:
//   - Frontier: ScanFrontier.
//   - Logger:   nil (no logs).
//   - Metrics:  observability.NoopMetrics{}.
//   - Spans:    observability.NoopSpanManager{}.
//   - Context:  context.Background().
func DefaultOptions() Options {
	return Options{
		Frontier: ScanFrontier,
		Metrics:  observability.NoopMetrics{},
		Spans:    observability.NoopSpanManager{},
		Context:  context.Background(),
	}
}

// WithFrontier selects the frontier implementation.
// Panics on an unknown kind.
func WithFrontier(kind FrontierKind) Option {
	if kind != ScanFrontier && kind != IndexedFrontier {
		panic(fmt.Sprintf("dijkstra: WithFrontier(%d): unknown kind", int(kind)))
	}
	return func(o *Options) {
		o.Frontier = kind
	}
}

// WithLogger enables structured logging. A nil logger disables it.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
		o.observed = o.observed || logger != nil
	}
}

// WithMetrics records per-search metrics. Panics on nil.
func WithMetrics(m observability.MetricsRecorder) Option {
	if m == nil {
		panic("dijkstra: WithMetrics(nil)")
	}
	return func(o *Options) {
		o.Metrics = m
		o.observed = true
	}
}

// WithTracing wraps every search in a span. Panics on nil.
func WithTracing(s observability.SpanManager) Option {
	if s == nil {
		panic("dijkstra: WithTracing(nil)")
	}
	return func(o *Options) {
		o.Spans = s
		o.observed = true
	}
}

// WithContext sets the parent context for spans and metrics. Panics on nil.
// The search itself is never cancelled.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("dijkstra: WithContext(nil)")
	}
	return func(o *Options) {
		o.Context = ctx
	}
}

// WithRunID sets the correlation id attached to logs and spans.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// Stats are the counters of one search.
type Stats = observability.SearchStats

// Result is the full outcome of Search.
type Result struct {
	Distance  int64 // shortest distance, or Unreachable
	Reachable bool  // Distance != Unreachable
	Stats     Stats
}
