package payload

import "errors"

var (
	// ErrUnknownType indicates no decoder is registered for a type identifier.
	ErrUnknownType = errors.New("payload: unknown payload type")

	// ErrEmptyBody indicates the body to decode is empty.
	ErrEmptyBody = errors.New("payload: body is empty")

	// ErrInvalidRegistration indicates an empty type identifier or nil decoder.
	ErrInvalidRegistration = errors.New("payload: invalid decoder registration")

	// ErrDuplicateType indicates a type identifier is already registered.
	ErrDuplicateType = errors.New("payload: payload type already registered")
)
