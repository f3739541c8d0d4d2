package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// DecodeFunc decodes a request body into a Payload.
type DecodeFunc func(body []byte) (Payload, error)

// Decoder turns a declared type identifier and body into a Payload.
type Decoder interface {
	Decode(typeID string, body []byte) (Payload, error)
}

// Registry maps payload type identifiers to decoders.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]DecodeFunc
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]DecodeFunc)}
}

// NewDefaultRegistry returns a fresh Registry with every payload type this
// package knows about. Each call returns its own Registry, so types added by
// one caller are never seen by another.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	if err := r.Register(V1TypeID, DecodeV1); err != nil {
		panic(err)
	}
	return r
}

// Register binds typeID to fn.
func (r *Registry) Register(typeID string, fn DecodeFunc) error {
	typeID = strings.TrimSpace(typeID)
	if typeID == "" || fn == nil {
		return ErrInvalidRegistration
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.decoders[typeID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, typeID)
	}
	r.decoders[typeID] = fn
	return nil
}

// Decode runs the decoder registered for typeID.
func (r *Registry) Decode(typeID string, body []byte) (Payload, error) {
	r.mu.RLock()
	fn, ok := r.decoders[strings.TrimSpace(typeID)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typeID)
	}
	return fn(body)
}

// Types returns the registered type identifiers in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.decoders))
	for id := range r.decoders {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// DecodeV1 strictly decodes a V1 payload. Unknown fields and trailing data
// are rejected.
func DecodeV1(body []byte) (Payload, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyBody
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	var doc v1JSON
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("payload: decode v1: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("payload: decode v1: unexpected data after payload")
	}
	return NewV1(doc.Request.toRequest(), doc.Definition.toDefinition()), nil
}

var _ Decoder = (*Registry)(nil)
