package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Setting keys read by NewSettings.
const (
	KeyListenAddr      = "server.listen-addr"
	KeyViewsLocation   = "soffit.renderer.viewsLocation"
	KeyDocumentRoot    = "soffit.renderer.documentRoot"
	KeyExtension       = "soffit.renderer.extension"
	KeyMaxConcurrent   = "soffit.renderer.max-concurrent"
	KeyMaxBodyBytes    = "soffit.renderer.max-body-bytes"
	KeyLogLevel        = "soffit.logging.level"
	KeyTracingExporter = "soffit.tracing.exporter"
	KeySamplePct       = "soffit.tracing.sample-pct"
	KeyMetricsExporter = "soffit.metrics.exporter"
)

// Settings holds the renderer's server settings.
type Settings struct {
	// ListenAddr is the HTTP listen address. Default ":8080".
	ListenAddr string
	// ViewsLocation is the resource prefix under which module views live.
	// Default "/WEB-INF/soffit/"; the trailing slash is optional.
	ViewsLocation string
	// DocumentRoot is the directory the resource paths are resolved against.
	// Default ".".
	DocumentRoot string
	// Extension is the view template suffix, without the dot. Default "jsp".
	Extension string
	// MaxConcurrent caps simultaneous renders. Default 64.
	MaxConcurrent int
	// MaxBodyBytes caps the request body size. Default 1 MiB.
	MaxBodyBytes int64

	LogLevel        string
	TracingExporter string
	SamplePct       float64
	MetricsExporter string
}

// DefaultSettings returns settings with defaults applied.
func DefaultSettings() Settings {
	return Settings{
		ListenAddr:    ":8080",
		ViewsLocation: "/WEB-INF/soffit/",
		DocumentRoot:  ".",
		Extension:     "jsp",
		MaxConcurrent: 64,
		MaxBodyBytes:  1 << 20,
		LogLevel:      "info",
		SamplePct:     1.0,
	}
}

// NewSettings reads settings from l, falling back to defaults for absent or
// empty keys.
func NewSettings(l Lookup) (Settings, error) {
	s := DefaultSettings()

	str := func(key string, dst *string) {
		if v, ok := l.Get(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str(KeyListenAddr, &s.ListenAddr)
	str(KeyViewsLocation, &s.ViewsLocation)
	str(KeyDocumentRoot, &s.DocumentRoot)
	str(KeyExtension, &s.Extension)
	str(KeyLogLevel, &s.LogLevel)
	str(KeyTracingExporter, &s.TracingExporter)
	str(KeyMetricsExporter, &s.MetricsExporter)

	s.Extension = strings.TrimPrefix(s.Extension, ".")

	if v, ok := l.Get(KeyMaxConcurrent); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n <= 0 {
			return s, fmt.Errorf("%w: %s=%q", ErrInvalidValue, KeyMaxConcurrent, v)
		}
		s.MaxConcurrent = n
	}

	if v, ok := l.Get(KeyMaxBodyBytes); ok && v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || n <= 0 {
			return s, fmt.Errorf("%w: %s=%q", ErrInvalidValue, KeyMaxBodyBytes, v)
		}
		s.MaxBodyBytes = n
	}

	if v, ok := l.Get(KeySamplePct); ok && v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || f < 0 || f > 1 {
			return s, fmt.Errorf("%w: %s=%q", ErrInvalidValue, KeySamplePct, v)
		}
		s.SamplePct = f
	}

	return s, nil
}
