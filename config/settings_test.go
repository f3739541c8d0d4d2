package config

import (
	"errors"
	"testing"
)

func TestNewSettings_Defaults(t *testing.T) {
	s, err := NewSettings(NewProperties(nil))
	if err != nil {
		t.Fatalf("NewSettings() error = %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("NewSettings(empty) = %+v, want defaults %+v", s, DefaultSettings())
	}
}

func TestNewSettings_Overrides(t *testing.T) {
	p := NewProperties(map[string]string{
		KeyListenAddr:      ":9000",
		KeyViewsLocation:   "/views",
		KeyDocumentRoot:    "/srv/soffit",
		KeyExtension:       ".tmpl",
		KeyMaxConcurrent:   "8",
		KeyMaxBodyBytes:    "2048",
		KeyLogLevel:        "debug",
		KeyTracingExporter: "stdout",
		KeySamplePct:       "0.5",
		KeyMetricsExporter: "prometheus",
	})

	s, err := NewSettings(p)
	if err != nil {
		t.Fatalf("NewSettings() error = %v", err)
	}

	want := Settings{
		ListenAddr:      ":9000",
		ViewsLocation:   "/views",
		DocumentRoot:    "/srv/soffit",
		Extension:       "tmpl",
		MaxConcurrent:   8,
		MaxBodyBytes:    2048,
		LogLevel:        "debug",
		TracingExporter: "stdout",
		SamplePct:       0.5,
		MetricsExporter: "prometheus",
	}
	if s != want {
		t.Errorf("NewSettings() = %+v, want %+v", s, want)
	}
}

func TestNewSettings_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{KeyMaxConcurrent, "lots"},
		{KeyMaxConcurrent, "0"},
		{KeyMaxBodyBytes, "-1"},
		{KeySamplePct, "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			_, err := NewSettings(NewProperties(map[string]string{tt.key: tt.value}))
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("NewSettings() error = %v, want ErrInvalidValue", err)
			}
		})
	}
}
