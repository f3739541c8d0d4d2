package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("failed to parse log line as JSON: %v\nLine: %s", err, line)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_WithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	scoped := logger.With(F("module", "hello"), F("mode", "view"))
	scoped.Info(context.Background(), "selected view", F("view", "/WEB-INF/soffit/hello/view.jsp"))

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e["module"] != "hello" || e["mode"] != "view" {
		t.Errorf("missing scoped fields: %v", e)
	}
	if e["view"] != "/WEB-INF/soffit/hello/view.jsp" {
		t.Errorf("view = %v", e["view"])
	}
	if e["msg"] != "selected view" || e["level"] != "info" {
		t.Errorf("msg/level = %v/%v", e["msg"], e["level"])
	}
	if _, ok := e["timestamp"]; !ok {
		t.Error("missing timestamp")
	}
}

func TestLogger_WithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLoggerWithWriter("info", &buf)
	_ = parent.With(F("module", "hello"))

	parent.Info(context.Background(), "plain")
	e := decodeLines(t, &buf)[0]
	if _, ok := e["module"]; ok {
		t.Error("With leaked fields into the parent logger")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)
	ctx := context.Background()

	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries at warn level, got %d", len(entries))
	}
	if entries[0]["level"] != "warn" || entries[1]["level"] != "error" {
		t.Errorf("unexpected levels: %v, %v", entries[0]["level"], entries[1]["level"])
	}
}

func TestLogger_Redaction(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("debug", &buf)

	logger.Debug(context.Background(), "request", F("body", `{"request":{}}`), F("token", "abc"), F("module", "hello"))

	e := decodeLines(t, &buf)[0]
	if e["body"] != "[REDACTED]" || e["token"] != "[REDACTED]" {
		t.Errorf("sensitive fields not redacted: %v", e)
	}
	if e["module"] != "hello" {
		t.Errorf("module = %v, want hello", e["module"])
	}
}

func TestLogger_ErrorValue(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Error(context.Background(), "failed", F("error", errors.New("boom")))
	if e := decodeLines(t, &buf)[0]; e["error"] != "boom" {
		t.Errorf("error = %v, want boom", e["error"])
	}
}

func TestLogger_TraceCorrelation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "dispatch")
	logger.Info(ctx, "inside span")
	span.End()

	e := decodeLines(t, &buf)[0]
	if e["trace_id"] != span.SpanContext().TraceID().String() {
		t.Errorf("trace_id = %v, want %s", e["trace_id"], span.SpanContext().TraceID())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug": LevelDebug,
		"info":  LevelInfo,
		"warn":  LevelWarn,
		"error": LevelError,
		"bogus": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
