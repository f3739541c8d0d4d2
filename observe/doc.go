// Package observe provides observability primitives for render dispatch.
//
// It is a pure instrumentation library: tracing, metrics and structured
// logging, plus exporter setup. The render package wraps each dispatch with
// Middleware; the view package reports cache lookups through Metrics.
package observe
