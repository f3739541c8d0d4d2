package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonwraymond/soffit/cachecontrol"
	"github.com/jonwraymond/soffit/observe"
	"github.com/jonwraymond/soffit/payload"
	"github.com/jonwraymond/soffit/view"
)

// ViewResolver selects the view for a module path, mode and window state.
// *view.Selector implements it.
type ViewResolver interface {
	Resolve(ctx context.Context, modulePath, mode, windowState string) (string, error)
}

// PolicyResolver returns the Cache-Control directive for a module.
// *cachecontrol.Resolver implements it.
type PolicyResolver interface {
	ResolveContext(ctx context.Context, module string) cachecontrol.Directive
}

// Result is the outcome of a successful dispatch.
type Result struct {
	ViewPath     string
	CacheControl cachecontrol.Directive
	Payload      payload.Payload
}

// Config holds a Dispatcher's collaborators.
type Config struct {
	// Decoder decodes bodies by type identifier (required).
	Decoder payload.Decoder
	// Views selects view paths (required).
	Views ViewResolver
	// Policy resolves cache directives. Nil means every module gets NoCache.
	Policy PolicyResolver
	// ViewsLocation is the resource path holding module directories.
	// Defaults to DefaultViewsLocation.
	ViewsLocation string
	// Middleware wraps each dispatch. Nil disables telemetry.
	Middleware *observe.Middleware
}

// DefaultViewsLocation is the resource path modules live under by default.
const DefaultViewsLocation = "/WEB-INF/soffit/"

// Dispatcher runs render requests.
//
// Dispatcher is safe for concurrent use.
type Dispatcher struct {
	decoder       payload.Decoder
	views         ViewResolver
	policy        PolicyResolver
	viewsLocation string
	mw            *observe.Middleware
}

// New returns a Dispatcher configured by cfg.
func New(cfg Config) (*Dispatcher, error) {
	if cfg.Decoder == nil {
		return nil, ErrNilDecoder
	}
	if cfg.Views == nil {
		return nil, ErrNilViews
	}
	d := &Dispatcher{
		decoder:       cfg.Decoder,
		views:         cfg.Views,
		policy:        cfg.Policy,
		viewsLocation: cfg.ViewsLocation,
		mw:            cfg.Middleware,
	}
	if d.policy == nil {
		d.policy = cachecontrol.NewResolver(nil)
	}
	if d.viewsLocation == "" {
		d.viewsLocation = DefaultViewsLocation
	}
	if d.mw == nil {
		d.mw = observe.NewMiddleware(nil, nil, nil)
	}
	return d, nil
}

// ViewsLocation returns the resource path modules live under.
func (d *Dispatcher) ViewsLocation() string { return d.viewsLocation }

// Dispatch decodes body as typeID and selects module's view for it.
//
// Errors match one of ErrMissingTypeIdentifier, ErrMissingModule,
// ErrDecodeFailure, ErrMalformedPayload or view.ErrNoMatchingView, or come
// from the view catalog. Use Classify to map them to a response.
func (d *Dispatcher) Dispatch(ctx context.Context, typeID string, body []byte, module string) (Result, error) {
	var res Result
	meta := observe.DispatchMeta{Module: module, PayloadType: typeID}

	err := d.mw.Run(ctx, meta, func(ctx context.Context, meta *observe.DispatchMeta) error {
		if strings.TrimSpace(typeID) == "" {
			return ErrMissingTypeIdentifier
		}
		if strings.Trim(module, "/ ") == "" {
			return ErrMissingModule
		}

		p, err := d.decoder.Decode(typeID, body)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDecodeFailure, err)
		}
		if p == nil {
			return fmt.Errorf("%w: decoder returned no payload", ErrDecodeFailure)
		}

		mode, state := p.Mode(), p.WindowState()
		if mode == "" || state == "" {
			return fmt.Errorf("%w: mode=%q window state=%q", ErrMalformedPayload, mode, state)
		}
		meta.Mode = strings.ToLower(mode)
		meta.WindowState = strings.ToLower(state)

		viewPath, err := d.views.Resolve(ctx, view.ModulePath(d.viewsLocation, module), mode, state)
		if err != nil {
			return err
		}
		meta.ViewPath = viewPath

		res = Result{
			ViewPath:     viewPath,
			CacheControl: d.policy.ResolveContext(ctx, module),
			Payload:      p,
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}
