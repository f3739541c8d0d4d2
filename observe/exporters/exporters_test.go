package exporters

import (
	"bytes"
	"context"
	"strings"
	"testing"

	promclient "github.com/prometheus/client_golang/prometheus"
)

func TestTracingExporter_InvalidName(t *testing.T) {
	_, err := NewTracingExporter(context.Background(), "invalid")
	if err == nil {
		t.Fatal("expected error for invalid exporter name")
	}
	if !strings.Contains(err.Error(), "unknown exporter") {
		t.Errorf("expected 'unknown exporter' in error, got: %v", err)
	}
}

func TestTracingExporter_Stdout(t *testing.T) {
	var buf bytes.Buffer
	exp, err := NewTracingExporter(context.Background(), "stdout", WithWriter(&buf))
	if err != nil {
		t.Fatalf("stdout tracing exporter: %v", err)
	}
	if exp == nil {
		t.Fatal("expected non-nil exporter")
	}
}

func TestTracingExporter_None(t *testing.T) {
	for _, name := range []string{"none", ""} {
		exp, err := NewTracingExporter(context.Background(), name)
		if err != nil || exp == nil {
			t.Errorf("NewTracingExporter(%q) = (%v, %v), want exporter", name, exp, err)
		}
	}
}

func TestTracingExporter_OtlpMissingEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")

	_, err := NewTracingExporter(context.Background(), "otlp")
	if err == nil || !strings.Contains(err.Error(), "endpoint") {
		t.Errorf("expected endpoint error, got: %v", err)
	}
}

func TestTracingExporter_JaegerMissingEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_JAEGER_ENDPOINT", "")

	if _, err := NewTracingExporter(context.Background(), "jaeger"); err == nil {
		t.Error("expected error when Jaeger endpoint not configured")
	}
}

func TestMetricsReader_InvalidName(t *testing.T) {
	if _, err := NewMetricsReader(context.Background(), "graphite"); err == nil {
		t.Error("expected error for invalid metrics exporter")
	}
}

func TestMetricsReader_Stdout(t *testing.T) {
	var buf bytes.Buffer
	reader, err := NewMetricsReader(context.Background(), "stdout", WithWriter(&buf))
	if err != nil || reader == nil {
		t.Fatalf("NewMetricsReader(stdout) = (%v, %v)", reader, err)
	}
}

func TestMetricsReader_PrometheusCustomRegistry(t *testing.T) {
	reg := promclient.NewRegistry()
	reader, err := NewMetricsReader(context.Background(), "prometheus", WithRegisterer(reg))
	if err != nil {
		t.Fatalf("NewMetricsReader(prometheus) error = %v", err)
	}
	if reader == nil {
		t.Fatal("expected non-nil reader")
	}
}

func TestMetricsReader_OtlpMissingEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", "")

	if _, err := NewMetricsReader(context.Background(), "otlp"); err == nil {
		t.Error("expected error when OTLP metrics endpoint not configured")
	}
}
