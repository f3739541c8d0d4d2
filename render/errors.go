package render

import (
	"errors"

	"github.com/jonwraymond/soffit/view"
)

var (
	// ErrMissingTypeIdentifier indicates the payload type was not declared.
	ErrMissingTypeIdentifier = errors.New("render: missing payload type identifier")

	// ErrMissingModule indicates the module name is empty.
	ErrMissingModule = errors.New("render: missing module name")

	// ErrDecodeFailure indicates the body could not be decoded as the
	// declared type, or the type is unknown. The cause is wrapped.
	ErrDecodeFailure = errors.New("render: payload decode failed")

	// ErrMalformedPayload indicates the payload lacks a mode or window state.
	ErrMalformedPayload = errors.New("render: payload lacks mode or window state")

	// ErrNilDecoder indicates a Dispatcher was configured without a decoder.
	ErrNilDecoder = errors.New("render: decoder is nil")

	// ErrNilViews indicates a Dispatcher was configured without a view resolver.
	ErrNilViews = errors.New("render: view resolver is nil")
)

// Kind groups dispatch errors by who has to act on them.
type Kind int

const (
	// KindNone is the Kind of a nil error.
	KindNone Kind = iota
	// KindBadRequest means the caller sent an unusable request.
	KindBadRequest
	// KindServerState means the deployment or the integration is at fault,
	// for example a view file is missing.
	KindServerState
	// KindInternal covers everything else.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBadRequest:
		return "bad_request"
	case KindServerState:
		return "server_state"
	default:
		return "internal"
	}
}

// Classify returns the Kind of err.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMissingTypeIdentifier),
		errors.Is(err, ErrMissingModule),
		errors.Is(err, ErrDecodeFailure):
		return KindBadRequest
	case errors.Is(err, ErrMalformedPayload),
		errors.Is(err, view.ErrNoMatchingView):
		return KindServerState
	default:
		return KindInternal
	}
}
