package main

import (
	"context"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonwraymond/soffit/cachecontrol"
	"github.com/jonwraymond/soffit/config"
	"github.com/jonwraymond/soffit/health"
	"github.com/jonwraymond/soffit/observe"
	"github.com/jonwraymond/soffit/payload"
	"github.com/jonwraymond/soffit/render"
	"github.com/jonwraymond/soffit/resilience"
	"github.com/jonwraymond/soffit/server"
	"github.com/jonwraymond/soffit/view"
)

const serviceName = "soffit-renderer"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app is the wired renderer.
type app struct {
	settings config.Settings
	observer observe.Observer
	mux      *http.ServeMux
}

func newApp(ctx context.Context, lookup config.Lookup) (*app, error) {
	settings, err := config.NewSettings(lookup)
	if err != nil {
		return nil, err
	}

	obs, err := observe.NewObserver(ctx, observe.Config{
		ServiceName: serviceName,
		Version:     version,
		Tracing: observe.TracingConfig{
			Enabled:   settings.TracingExporter != "",
			Exporter:  settings.TracingExporter,
			SamplePct: settings.SamplePct,
		},
		Metrics: observe.MetricsConfig{
			Enabled:  settings.MetricsExporter != "",
			Exporter: settings.MetricsExporter,
		},
		Logging: observe.LoggingConfig{
			Enabled: true,
			Level:   settings.LogLevel,
		},
	})
	if err != nil {
		return nil, err
	}

	mw, err := observe.MiddlewareFromObserver(obs)
	if err != nil {
		_ = obs.Shutdown(ctx)
		return nil, err
	}
	logger := obs.Logger()

	docRoot := os.DirFS(settings.DocumentRoot)
	catalog := view.NewFSCatalog(docRoot)
	selector, err := view.NewSelector(catalog,
		view.WithExtension(settings.Extension),
		view.WithMetrics(mw.Metrics()),
		view.WithLogger(logger),
	)
	if err != nil {
		_ = obs.Shutdown(ctx)
		return nil, err
	}

	dispatcher, err := render.New(render.Config{
		Decoder:       payload.NewDefaultRegistry(),
		Views:         selector,
		Policy:        cachecontrol.NewResolver(lookup, cachecontrol.WithLogger(logger)),
		ViewsLocation: settings.ViewsLocation,
		Middleware:    mw,
	})
	if err != nil {
		_ = obs.Shutdown(ctx)
		return nil, err
	}

	bulkhead := resilience.NewBulkhead(resilience.BulkheadConfig{MaxConcurrent: settings.MaxConcurrent})
	handler, err := server.NewHandler(server.Config{
		Dispatcher:   dispatcher,
		Renderer:     server.NewTemplateRenderer(docRoot, nil),
		Bulkhead:     bulkhead,
		Logger:       logger,
		MaxBodyBytes: settings.MaxBodyBytes,
	})
	if err != nil {
		_ = obs.Shutdown(ctx)
		return nil, err
	}

	agg := health.NewAggregator()
	agg.Register("views", health.NewCatalogChecker(catalog, settings.ViewsLocation))
	agg.Register("capacity", health.NewCapacityChecker(bulkhead, 0.9))

	mux := http.NewServeMux()
	handler.Register(mux)
	health.RegisterHandlers(mux, agg)
	if settings.MetricsExporter == "prometheus" {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	return &app{settings: settings, observer: obs, mux: mux}, nil
}

func (a *app) close(ctx context.Context) error {
	return a.observer.Shutdown(ctx)
}
