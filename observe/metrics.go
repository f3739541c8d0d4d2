package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records dispatch and view-lookup metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordDispatch records a dispatch with duration and error status.
	RecordDispatch(ctx context.Context, meta DispatchMeta, duration time.Duration, err error)

	// RecordViewLookup records a view cache lookup for modulePath.
	RecordViewLookup(ctx context.Context, modulePath string, hit bool)
}

type metricsImpl struct {
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
	lookupCount  metric.Int64Counter
}

// NewMetrics creates Metrics instruments on meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	totalCount, err := meter.Int64Counter(
		"soffit.render.total",
		metric.WithDescription("Total number of render dispatches"),
		metric.WithUnit("{dispatch}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"soffit.render.errors",
		metric.WithDescription("Total number of failed render dispatches"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"soffit.render.duration_ms",
		metric.WithDescription("Render dispatch duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	lookupCount, err := meter.Int64Counter(
		"soffit.view.lookups",
		metric.WithDescription("View cache lookups by result"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		totalCount:   totalCount,
		errorCount:   errorCount,
		durationHist: durationHist,
		lookupCount:  lookupCount,
	}, nil
}

func (m *metricsImpl) RecordDispatch(ctx context.Context, meta DispatchMeta, duration time.Duration, err error) {
	opt := metric.WithAttributes(attribute.String("soffit.module", meta.Module))

	m.totalCount.Add(ctx, 1, opt)
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Microseconds())/1000, opt)
}

func (m *metricsImpl) RecordViewLookup(ctx context.Context, modulePath string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.lookupCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("soffit.module_path", modulePath),
		attribute.String("result", result),
	))
}

type noopMetrics struct{}

// NopMetrics returns Metrics that record nothing.
func NopMetrics() Metrics { return noopMetrics{} }

func (noopMetrics) RecordDispatch(context.Context, DispatchMeta, time.Duration, error) {}
func (noopMetrics) RecordViewLookup(context.Context, string, bool)                      {}
