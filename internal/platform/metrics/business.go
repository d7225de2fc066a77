package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// BusinessMetrics registra conteo y duración de operaciones de dominio
// (ej: domain="owner", operation="create").
type BusinessMetrics interface {
	Observe(ctx context.Context, domain, operation string, started time.Time, err error)
}

type businessMetrics struct {
	operations otelmetric.Int64Counter
	duration   otelmetric.Float64Histogram
}

func NewBusinessMetrics(mp otelmetric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := mp.Meter(namespace)

	operations, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		otelmetric.WithDescription("Total number of business operations"),
		otelmetric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create operations counter: %w", err)
	}

	duration, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		otelmetric.WithDescription("Duration of business operations in seconds"),
		otelmetric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	return &businessMetrics{operations: operations, duration: duration}, nil
}

func (b *businessMetrics) Observe(ctx context.Context, domain, operation string, started time.Time, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	attrs := otelmetric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	b.operations.Add(ctx, 1, attrs)
	b.duration.Record(ctx, time.Since(started).Seconds(), attrs)
}

type nopBusinessMetrics struct{}

// NopBusinessMetrics no registra nada (METRICS_ENABLED=false / tests).
func NopBusinessMetrics() BusinessMetrics { return nopBusinessMetrics{} }

func (nopBusinessMetrics) Observe(context.Context, string, string, time.Time, error) {}
