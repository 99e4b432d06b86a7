// Package observability provides structured logging, metrics, and
// tracing for eventcal operation dispatch.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds request context to a logger. Returns a new logger
// with request_id, op, and transport fields.
func EnrichLogger(logger *slog.Logger, requestID, op, transport string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("request_id", requestID),
		slog.String("op", op),
		slog.String("transport", transport),
	)
}

// LogCallStart logs the start of a dispatched operation.
func LogCallStart(logger *slog.Logger, op, transport string) {
	if logger == nil {
		return
	}
	logger.Debug("operation starting",
		slog.String("op", op),
		slog.String("transport", transport),
	)
}

// LogCallComplete logs successful completion of a dispatched operation.
func LogCallComplete(logger *slog.Logger, op, transport string, duration time.Duration) {
	if logger == nil {
		return
	}
	logger.Info("operation completed",
		slog.String("op", op),
		slog.String("transport", transport),
		slog.Float64("duration_ms", float64(duration.Microseconds())/1000.0),
	)
}

// LogCallError logs a failed dispatched operation.
func LogCallError(logger *slog.Logger, op, transport string, err error, duration time.Duration) {
	if logger == nil {
		return
	}
	logger.Error("operation failed",
		slog.String("op", op),
		slog.String("transport", transport),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", float64(duration.Microseconds())/1000.0),
	)
}
