package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonwraymond/soffit/render"
	"github.com/jonwraymond/soffit/resilience"
	"github.com/jonwraymond/soffit/view"
)

var (
	// ErrNilDispatcher indicates a Handler was configured without a dispatcher.
	ErrNilDispatcher = errors.New("server: dispatcher is nil")

	// ErrNilRenderer indicates a Handler was configured without a renderer.
	ErrNilRenderer = errors.New("server: renderer is nil")

	// ErrRenderFailed indicates the selected view failed to produce output.
	ErrRenderFailed = errors.New("server: view render failed")
)

// APIError is the JSON body of every error response.
type APIError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(APIError{Error: message, Code: code})
}

// errorResponse maps err to a status code and error code.
func errorResponse(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, resilience.ErrBulkheadFull):
		return http.StatusServiceUnavailable, "overloaded"
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, "payload_too_large"
	case errors.Is(err, render.ErrMissingTypeIdentifier):
		return http.StatusBadRequest, "missing_type"
	case errors.Is(err, render.ErrMissingModule):
		return http.StatusBadRequest, "missing_module"
	case errors.Is(err, render.ErrDecodeFailure):
		return http.StatusBadRequest, "decode_failure"
	case errors.Is(err, render.ErrMalformedPayload):
		return http.StatusInternalServerError, "malformed_payload"
	case errors.Is(err, view.ErrNoMatchingView):
		return http.StatusInternalServerError, "no_matching_view"
	case errors.Is(err, ErrRenderFailed):
		return http.StatusInternalServerError, "render_failure"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
