// SPDX-License-Identifier: MIT

package observability

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SearchStats are the counters one search accumulates.
type SearchStats struct {
	Pops        int           // entries extracted from the frontier
	StalePops   int           // popped entries that were already settled
	Relaxations int           // successful distance improvements
	Settled     int           // nodes marked visited
	Duration    time.Duration // wall time of the search
}

// MetricsRecorder records search metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordSearch records one completed search.
	RecordSearch(ctx context.Context, reachable bool, stats SearchStats)
}

// meterName scopes every instrument this package creates.
const meterName = "github.com/katalvlaran/shortpath"

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	runs        metric.Int64Counter
	pops        metric.Int64Counter
	stalePops   metric.Int64Counter
	relaxations metric.Int64Counter
	settled     metric.Int64Histogram
	latency     metric.Float64Histogram
}

// newOtelMetrics creates instruments on the global meter provider.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter(meterName)

	runs, err := meter.Int64Counter("shortpath.search.runs",
		metric.WithDescription("Number of shortest-path searches"),
	)
	if err != nil {
		return nil, err
	}

	pops, err := meter.Int64Counter("shortpath.search.pops",
		metric.WithDescription("Frontier entries extracted"),
	)
	if err != nil {
		return nil, err
	}

	stalePops, err := meter.Int64Counter("shortpath.search.stale_pops",
		metric.WithDescription("Extracted entries discarded as already settled"),
	)
	if err != nil {
		return nil, err
	}

	relaxations, err := meter.Int64Counter("shortpath.search.relaxations",
		metric.WithDescription("Successful edge relaxations"),
	)
	if err != nil {
		return nil, err
	}

	settled, err := meter.Int64Histogram("shortpath.search.settled",
		metric.WithDescription("Nodes settled per search"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("shortpath.search.latency_ms",
		metric.WithDescription("Search latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		runs:        runs,
		pops:        pops,
		stalePops:   stalePops,
		relaxations: relaxations,
		settled:     settled,
		latency:     latency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If instrument creation fails, returns a no-op recorder.
//
// Instruments are created on the global meter provider at call time; set it
// first:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := newOtelMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordSearch records one search.
func (m *otelMetrics) RecordSearch(ctx context.Context, reachable bool, stats SearchStats) {
	attrs := metric.WithAttributes(attribute.Bool("reachable", reachable))

	m.runs.Add(ctx, 1, attrs)
	m.pops.Add(ctx, int64(stats.Pops), attrs)
	m.stalePops.Add(ctx, int64(stats.StalePops), attrs)
	m.relaxations.Add(ctx, int64(stats.Relaxations), attrs)
	m.settled.Record(ctx, int64(stats.Settled), attrs)
	m.latency.Record(ctx, float64(stats.Duration.Microseconds())/1000, attrs)
}
