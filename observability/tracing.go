// SPDX-License-Identifier: MIT

package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName scopes the spans this package creates.
const tracerName = "github.com/katalvlaran/shortpath"

// SpanManager handles search span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartSearchSpan starts a span covering one search.
	StartSearchSpan(ctx context.Context, runID string, source, destination int64) (context.Context, trace.Span)

	// EndSearchSpan records the outcome on span and ends it.
	EndSearchSpan(span trace.Span, distance int64, reachable bool, stats SearchStats)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct {
	tracer trace.Tracer
}

// NewSpanManager returns a SpanManager bound to the global tracer provider
// at call time. Configure the provider first:
//
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{tracer: otel.Tracer(tracerName)}
}

// StartSearchSpan starts a "shortpath.search" span.
func (m *otelSpanManager) StartSearchSpan(ctx context.Context, runID string, source, destination int64) (context.Context, trace.Span) {
	return m.tracer.Start(ctx, "shortpath.search",
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.Int64("search.source", source),
			attribute.Int64("search.destination", destination),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSearchSpan sets result attributes and ends span.
// Unreachability is an expected outcome, so the status is Ok either way.
func (m *otelSpanManager) EndSearchSpan(span trace.Span, distance int64, reachable bool, stats SearchStats) {
	if span == nil {
		return
	}
	span.SetAttributes(
		attribute.Int64("search.distance", distance),
		attribute.Bool("search.reachable", reachable),
		attribute.Int("search.pops", stats.Pops),
		attribute.Int("search.settled", stats.Settled),
	)
	span.SetStatus(codes.Ok, "")
	span.End()
}
