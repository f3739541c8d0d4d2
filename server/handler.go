package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/jonwraymond/soffit/observe"
	"github.com/jonwraymond/soffit/render"
	"github.com/jonwraymond/soffit/resilience"
)

// PayloadTypeHeader carries the payload type identifier.
const PayloadTypeHeader = "X-Soffit-PayloadClass"

// DefaultMaxBodyBytes caps request bodies when Config.MaxBodyBytes is unset.
const DefaultMaxBodyBytes int64 = 1 << 20

// Dispatcher is the part of *render.Dispatcher the handler needs.
type Dispatcher interface {
	Dispatch(ctx context.Context, typeID string, body []byte, module string) (render.Result, error)
}

// Config configures a Handler.
type Config struct {
	Dispatcher   Dispatcher // required
	Renderer     Renderer   // required
	Bulkhead     *resilience.Bulkhead
	Logger       observe.Logger
	MaxBodyBytes int64
}

// Handler serves render requests.
type Handler struct {
	dispatcher   Dispatcher
	renderer     Renderer
	bulkhead     *resilience.Bulkhead
	logger       observe.Logger
	maxBodyBytes int64
}

// NewHandler returns a Handler configured by cfg.
func NewHandler(cfg Config) (*Handler, error) {
	if cfg.Dispatcher == nil {
		return nil, ErrNilDispatcher
	}
	if cfg.Renderer == nil {
		return nil, ErrNilRenderer
	}
	h := &Handler{
		dispatcher:   cfg.Dispatcher,
		renderer:     cfg.Renderer,
		bulkhead:     cfg.Bulkhead,
		logger:       cfg.Logger,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
	if h.bulkhead == nil {
		h.bulkhead = resilience.NewBulkhead(resilience.BulkheadConfig{})
	}
	if h.logger == nil {
		h.logger = observe.NopLogger()
	}
	if h.maxBodyBytes <= 0 {
		h.maxBodyBytes = DefaultMaxBodyBytes
	}
	return h, nil
}

// Register adds the render route to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.Handle("POST /soffit/{module}", h)
}

// ServeHTTP dispatches and renders one request. The module name is the
// {module} path value.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h.bulkhead.Execute(r.Context(), func(ctx context.Context) error {
		return h.serve(ctx, w, r)
	})
	if err != nil {
		h.fail(r.Context(), w, err)
	}
}

func (h *Handler) serve(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		return err
	}

	res, err := h.dispatcher.Dispatch(ctx, r.Header.Get(PayloadTypeHeader), body, r.PathValue("module"))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, res.ViewPath, map[string]any{ModelName: res.Payload}); err != nil {
		if !errors.Is(err, ErrRenderFailed) {
			err = errors.Join(ErrRenderFailed, err)
		}
		return err
	}

	w.Header().Set("Cache-Control", res.CacheControl.String())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, err error) {
	status, code := errorResponse(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(ctx, "render request failed", observe.F("code", code), observe.F("error", err))
	} else {
		h.logger.Warn(ctx, "render request rejected", observe.F("code", code), observe.F("error", err))
	}
	writeJSONError(w, status, code, err.Error())
}

var _ http.Handler = (*Handler)(nil)
