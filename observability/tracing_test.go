// SPDX-License-Identifier: MIT

package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest installs an in-memory tracer provider as the global one.
func setupTracingTest(t *testing.T) *tracetest.InMemoryExporter {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	})

	return exporter
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestSearchSpan(t *testing.T) {
	exporter := setupTracingTest(t)
	sm := NewSpanManager()

	_, span := sm.StartSearchSpan(context.Background(), "run-9", 1, 5)
	require.NotNil(t, span)
	sm.EndSearchSpan(span, 20, true, SearchStats{Pops: 6, Settled: 5})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	s := spans[0]
	assert.Equal(t, "shortpath.search", s.Name)
	assert.Equal(t, codes.Ok, s.Status.Code)

	attrs := attrMap(s.Attributes)
	assert.Equal(t, "run-9", attrs["run.id"].AsString())
	assert.Equal(t, int64(1), attrs["search.source"].AsInt64())
	assert.Equal(t, int64(5), attrs["search.destination"].AsInt64())
	assert.Equal(t, int64(20), attrs["search.distance"].AsInt64())
	assert.True(t, attrs["search.reachable"].AsBool())
	assert.Equal(t, int64(6), attrs["search.pops"].AsInt64())
}

func TestEndSearchSpan_NilSpan(t *testing.T) {
	assert.NotPanics(t, func() {
		NewSpanManager().EndSearchSpan(nil, 0, false, SearchStats{})
	})
}

func TestNoopSpanManager(t *testing.T) {
	ctx := context.Background()
	got, span := NoopSpanManager{}.StartSearchSpan(ctx, "r", 1, 2)
	assert.Equal(t, ctx, got)
	assert.False(t, span.IsRecording())
	assert.NotPanics(t, func() { NoopSpanManager{}.EndSearchSpan(span, 0, false, SearchStats{}) })
}
