package observe

import (
	"context"
	"time"
)

// ExecuteFunc is the signature of a dispatch wrapped by Middleware.
// It may fill in meta fields (mode, window state, view) as they become known.
type ExecuteFunc func(ctx context.Context, meta *DispatchMeta) error

// Middleware wraps dispatch with observability (tracing, metrics, logging).
//
// Contract:
//   - Concurrency: Run is safe for concurrent use.
//   - Context: the span context is propagated to fn.
//   - Errors: errors from fn are recorded and returned unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware. Nil arguments are replaced by no-ops.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = NopTracer()
	}
	if metrics == nil {
		metrics = NopMetrics()
	}
	if logger == nil {
		logger = NopLogger()
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Run executes fn with tracing, metrics, and logging.
func (m *Middleware) Run(ctx context.Context, meta DispatchMeta, fn ExecuteFunc) error {
	ctx, span := m.tracer.StartSpan(ctx, meta)
	start := time.Now()

	err := fn(ctx, &meta)

	duration := time.Since(start)
	m.tracer.EndSpan(span, meta, err)
	m.metrics.RecordDispatch(ctx, meta, duration, err)

	fields := append(meta.Fields(), F("duration_ms", float64(duration.Microseconds())/1000))
	if err != nil {
		fields = append(fields, F("error", err.Error()))
		m.logger.Error(ctx, "render dispatch failed", fields...)
	} else {
		m.logger.Info(ctx, "render dispatch completed", fields...)
	}

	return err
}

// Metrics returns the middleware's metrics recorder.
func (m *Middleware) Metrics() Metrics {
	return m.metrics
}

// Logger returns the middleware's logger.
func (m *Middleware) Logger() Logger {
	return m.logger
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
