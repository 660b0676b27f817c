// SPDX-License-Identifier: MIT

package observability

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// EnrichLogger adds search context to a logger.
// Returns a new logger with run_id, source and destination fields.
func EnrichLogger(logger *slog.Logger, runID string, source, destination int64) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("run_id", runID),
		slog.Int64("source", source),
		slog.Int64("destination", destination),
	)
}

// LogSearchStart logs the start of a search over a graph of the given order.
func LogSearchStart(logger *slog.Logger, order int) {
	if logger == nil {
		return
	}
	logger.Debug("search starting",
		slog.Int("nodes", order),
	)
}

// LogSearchComplete logs search completion with its outcome and counters.
func LogSearchComplete(logger *slog.Logger, distance int64, reachable bool, stats SearchStats) {
	if logger == nil {
		return
	}
	logger.Info("search completed",
		slog.Int64("distance", distance),
		slog.Bool("reachable", reachable),
		slog.Int("pops", stats.Pops),
		slog.Int("stale_pops", stats.StalePops),
		slog.Int("relaxations", stats.Relaxations),
		slog.Int("settled", stats.Settled),
		slog.Float64("duration_ms", float64(stats.Duration.Microseconds())/1000),
	)
}

// LogEndpointMissing logs a search rejected because an endpoint is absent.
func LogEndpointMissing(logger *slog.Logger, which string) {
	if logger == nil {
		return
	}
	logger.Debug("search endpoint not in graph",
		slog.String("endpoint", which),
	)
}

// LogFrontier logs the frontier rendering at Debug level.
// The Stringer is only evaluated when Debug is enabled on the handler.
func LogFrontier(logger *slog.Logger, settled int64, frontier fmt.Stringer) {
	if logger == nil || !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.Debug("node settled",
		slog.Int64("node", settled),
		slog.String("frontier", frontier.String()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
