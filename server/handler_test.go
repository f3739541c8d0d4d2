package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/jonwraymond/soffit/cachecontrol"
	"github.com/jonwraymond/soffit/config"
	"github.com/jonwraymond/soffit/payload"
	"github.com/jonwraymond/soffit/render"
	"github.com/jonwraymond/soffit/resilience"
	"github.com/jonwraymond/soffit/view"
)

var testViews = fstest.MapFS{
	"WEB-INF/soffit/hello/view.jsp":           {Data: []byte(`<p>{{ .soffit.Request.Mode }}/{{ .soffit.Request.WindowState }}</p>`)},
	"WEB-INF/soffit/hello/view.maximized.jsp": {Data: []byte(`<h1>{{ .soffit.Definition.Title }}</h1>`)},
	"WEB-INF/soffit/broken/view.jsp":          {Data: []byte(`{{ .soffit.NoSuchMethod }}`)},
}

func newTestServer(t *testing.T, bulkhead *resilience.Bulkhead, maxBody int64) *httptest.Server {
	t.Helper()
	sel, err := view.NewSelector(view.NewFSCatalog(testViews))
	if err != nil {
		t.Fatalf("NewSelector failed: %v", err)
	}
	d, err := render.New(render.Config{
		Decoder: payload.NewDefaultRegistry(),
		Views:   sel,
		Policy: cachecontrol.NewResolver(config.NewProperties(map[string]string{
			"soffit.hello.cache.scope":   "private",
			"soffit.hello.cache.max-age": "60",
		})),
	})
	if err != nil {
		t.Fatalf("render.New failed: %v", err)
	}
	h, err := NewHandler(Config{
		Dispatcher:   d,
		Renderer:     NewTemplateRenderer(testViews, nil),
		Bulkhead:     bulkhead,
		MaxBodyBytes: maxBody,
	})
	if err != nil {
		t.Fatalf("NewHandler failed: %v", err)
	}
	mux := http.NewServeMux()
	h.Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, module, typeID, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/soffit/"+module, strings.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	if typeID != "" {
		req.Header.Set(PayloadTypeHeader, typeID)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(data)
}

func TestHandler_Render(t *testing.T) {
	srv := newTestServer(t, nil, 0)

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "mode fallback",
			body: `{"request":{"mode":"VIEW","windowState":"normal"}}`,
			want: "<p>VIEW/normal</p>",
		},
		{
			name: "state specific",
			body: `{"request":{"mode":"view","windowState":"maximized"},"definition":{"title":"Hi <there>"}}`,
			want: "<h1>Hi &lt;there&gt;</h1>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, "hello", payload.V1TypeID, tt.body)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, body %s", resp.StatusCode, readBody(t, resp))
			}
			if got := resp.Header.Get("Cache-Control"); got != "private, max-age=60" {
				t.Errorf("Cache-Control = %q", got)
			}
			if got := resp.Header.Get("Content-Type"); got != "text/html; charset=utf-8" {
				t.Errorf("Content-Type = %q", got)
			}
			if got := readBody(t, resp); got != tt.want {
				t.Errorf("body = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandler_Errors(t *testing.T) {
	srv := newTestServer(t, nil, 64)
	valid := `{"request":{"mode":"view","windowState":"normal"}}`

	tests := []struct {
		name       string
		module     string
		typeID     string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "missing type", module: "hello", body: valid, wantStatus: http.StatusBadRequest, wantCode: "missing_type"},
		{name: "unknown type", module: "hello", typeID: "java.lang.Runtime", body: valid, wantStatus: http.StatusBadRequest, wantCode: "decode_failure"},
		{name: "bad json", module: "hello", typeID: payload.V1TypeID, body: "{", wantStatus: http.StatusBadRequest, wantCode: "decode_failure"},
		{name: "malformed", module: "hello", typeID: payload.V1TypeID, body: `{"request":{"mode":"view"}}`, wantStatus: http.StatusInternalServerError, wantCode: "malformed_payload"},
		{name: "no view", module: "hello", typeID: payload.V1TypeID, body: `{"request":{"mode":"edit","windowState":"normal"}}`, wantStatus: http.StatusInternalServerError, wantCode: "no_matching_view"},
		{name: "render failure", module: "broken", typeID: payload.V1TypeID, body: valid, wantStatus: http.StatusInternalServerError, wantCode: "render_failure"},
		{name: "too large", module: "hello", typeID: payload.V1TypeID, body: strings.Repeat(" ", 65) + valid, wantStatus: http.StatusRequestEntityTooLarge, wantCode: "payload_too_large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, tt.module, tt.typeID, tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var apiErr APIError
			if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if apiErr.Code != tt.wantCode {
				t.Errorf("code = %q, want %q (%s)", apiErr.Code, tt.wantCode, apiErr.Error)
			}
		})
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, nil, 0)
	resp, err := srv.Client().Get(srv.URL + "/soffit/hello")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

// blockingDispatcher holds every dispatch until release is closed.
type blockingDispatcher struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (d *blockingDispatcher) Dispatch(ctx context.Context, _ string, _ []byte, _ string) (render.Result, error) {
	d.once.Do(func() { close(d.started) })
	select {
	case <-d.release:
	case <-ctx.Done():
		return render.Result{}, ctx.Err()
	}
	return render.Result{}, errors.New("released")
}

func TestHandler_BulkheadFull(t *testing.T) {
	d := &blockingDispatcher{started: make(chan struct{}), release: make(chan struct{})}
	h, err := NewHandler(Config{
		Dispatcher: d,
		Renderer:   NewTemplateRenderer(testViews, nil),
		Bulkhead:   resilience.NewBulkhead(resilience.BulkheadConfig{MaxConcurrent: 1}),
	})
	if err != nil {
		t.Fatalf("NewHandler failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/soffit/hello", strings.NewReader("{}")))
	}()
	<-d.started

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/soffit/hello", strings.NewReader("{}")))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	close(d.release)
	<-done
}

func TestNewHandler_Validation(t *testing.T) {
	if _, err := NewHandler(Config{}); !errors.Is(err, ErrNilDispatcher) {
		t.Errorf("NewHandler(empty) error = %v, want ErrNilDispatcher", err)
	}
	if _, err := NewHandler(Config{Dispatcher: &blockingDispatcher{}}); !errors.Is(err, ErrNilRenderer) {
		t.Errorf("NewHandler(no renderer) error = %v, want ErrNilRenderer", err)
	}
}
