// SPDX-License-Identifier: MIT

// Package observability provides opt-in logging, metrics and tracing for
// shortest-path searches.
//
// Features:
//   - Structured logging via log/slog (nil-safe helpers)
//   - Metrics via OpenTelemetry (global meter provider)
//   - Tracing via OpenTelemetry (global tracer provider)
//
// Every feature has a no-op implementation used when disabled, so a search
// without options pays nothing beyond a nil check.
package observability
