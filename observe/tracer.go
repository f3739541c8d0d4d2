package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// DispatchMeta describes one render dispatch for telemetry purposes.
// Mode and WindowState are known only after the payload is decoded.
type DispatchMeta struct {
	Module      string // Module name from the request path (required)
	PayloadType string // Declared payload type identifier
	Mode        string // Lower-cased rendering mode
	WindowState string // Lower-cased window state
	ViewPath    string // Selected view
}

// SpanName returns the span name for this dispatch.
// Format: soffit.render.<module>
func (m DispatchMeta) SpanName() string {
	return "soffit.render." + m.Module
}

// Attributes returns the non-empty fields as span attributes.
func (m DispatchMeta) Attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String("soffit.module", m.Module)}
	if m.PayloadType != "" {
		attrs = append(attrs, attribute.String("soffit.payload_type", m.PayloadType))
	}
	if m.Mode != "" {
		attrs = append(attrs, attribute.String("soffit.mode", m.Mode))
	}
	if m.WindowState != "" {
		attrs = append(attrs, attribute.String("soffit.window_state", m.WindowState))
	}
	if m.ViewPath != "" {
		attrs = append(attrs, attribute.String("soffit.view", m.ViewPath))
	}
	return attrs
}

// Fields returns the non-empty fields as log fields.
func (m DispatchMeta) Fields() []Field {
	fields := []Field{F("module", m.Module)}
	if m.PayloadType != "" {
		fields = append(fields, F("payload_type", m.PayloadType))
	}
	if m.Mode != "" {
		fields = append(fields, F("mode", m.Mode))
	}
	if m.WindowState != "" {
		fields = append(fields, F("window_state", m.WindowState))
	}
	if m.ViewPath != "" {
		fields = append(fields, F("view", m.ViewPath))
	}
	return fields
}

// Tracer wraps OpenTelemetry tracing with dispatch span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a dispatch.
	StartSpan(ctx context.Context, meta DispatchMeta) (context.Context, trace.Span)

	// EndSpan records meta and err on the span, then ends it.
	EndSpan(span trace.Span, meta DispatchMeta, err error)
}

type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer wrapping the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

func (t *tracerImpl) StartSpan(ctx context.Context, meta DispatchMeta) (context.Context, trace.Span) {
	attrs := append(meta.Attributes(), attribute.Bool("soffit.error", false))
	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (t *tracerImpl) EndSpan(span trace.Span, meta DispatchMeta, err error) {
	span.SetAttributes(meta.Attributes()...)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("soffit.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

type noopTracer struct {
	noop trace.Tracer
}

// NopTracer returns a Tracer that records nothing.
func NopTracer() Tracer {
	return &noopTracer{noop: tracenoop.NewTracerProvider().Tracer("noop")}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta DispatchMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, _ DispatchMeta, _ error) {
	span.End()
}
