package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records dispatch metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordCall records one dispatched operation with its transport,
	// duration, and error status.
	RecordCall(ctx context.Context, op, transport string, duration time.Duration, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	calls       metric.Int64Counter
	callLatency metric.Float64Histogram
	callErrors  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("eventcal")

	calls, err := meter.Int64Counter("eventcal.dispatch.calls",
		metric.WithDescription("Number of dispatched operations"),
	)
	if err != nil {
		return nil, err
	}

	callLatency, err := meter.Float64Histogram("eventcal.dispatch.latency_ms",
		metric.WithDescription("Dispatched operation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	callErrors, err := meter.Int64Counter("eventcal.dispatch.errors",
		metric.WithDescription("Number of failed dispatched operations"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		calls:       calls,
		callLatency: callLatency,
		callErrors:  callErrors,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder backed by the global
// OTel meter provider. Falls back to NoopMetrics if the instruments
// cannot be created.
func NewMetricsRecorder(logger *slog.Logger) MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		if logger != nil {
			logger.Warn("metrics disabled", slog.String("error", err.Error()))
		}
		return NoopMetrics{}
	}
	return m
}

// RecordCall implements MetricsRecorder.
func (m *otelMetrics) RecordCall(ctx context.Context, op, transport string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("transport", transport),
	)
	m.calls.Add(ctx, 1, attrs)
	m.callLatency.Record(ctx, float64(duration.Microseconds())/1000.0, attrs)
	if err != nil {
		m.callErrors.Add(ctx, 1, attrs)
	}
}
