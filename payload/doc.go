// Package payload defines the data handed to a view and the decoders that
// produce it.
//
// The upstream portal declares the payload type in a header; a Registry maps
// each known type identifier to an explicit DecodeFunc. There is no lookup
// by arbitrary type name: identifiers that were not registered fail with
// ErrUnknownType.
//
// Payload records are immutable once built. Accessors never expose internal
// storage, and With methods return updated copies.
package payload
