package cachecontrol

import (
	"context"
	"fmt"

	"github.com/jonwraymond/soffit/config"
	"github.com/jonwraymond/soffit/observe"
)

// DefaultPrefix is the namespace of per-module cache keys.
const DefaultPrefix = "soffit"

// Directive is a Cache-Control header value.
type Directive string

// NoCache is returned when a module has no complete cache configuration.
const NoCache Directive = "no-cache"

func (d Directive) String() string { return string(d) }

// ScopeKey returns the configuration key for module's cache scope.
func ScopeKey(prefix, module string) string {
	return fmt.Sprintf("%s.%s.cache.scope", prefix, module)
}

// MaxAgeKey returns the configuration key for module's cache max-age.
func MaxAgeKey(prefix, module string) string {
	return fmt.Sprintf("%s.%s.cache.max-age", prefix, module)
}

// Resolver computes directives from a config.Lookup.
//
// Resolver is safe for concurrent use when its Lookup is.
type Resolver struct {
	lookup config.Lookup
	prefix string
	logger observe.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithPrefix replaces DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(r *Resolver) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// WithLogger logs each resolution at debug level.
func WithLogger(l observe.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver returns a Resolver reading lookup. A nil lookup behaves as an
// empty configuration.
func NewResolver(lookup config.Lookup, opts ...Option) *Resolver {
	if lookup == nil {
		lookup = config.NewProperties(nil)
	}
	r := &Resolver{
		lookup: lookup,
		prefix: DefaultPrefix,
		logger: observe.NopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the directive for module. It never fails.
func (r *Resolver) Resolve(module string) Directive {
	return r.ResolveContext(context.Background(), module)
}

// ResolveContext is Resolve with ctx passed to the logger.
func (r *Resolver) ResolveContext(ctx context.Context, module string) Directive {
	scopeKey := ScopeKey(r.prefix, module)
	maxAgeKey := MaxAgeKey(r.prefix, module)
	scope, _ := r.lookup.Get(scopeKey)
	maxAge, _ := r.lookup.Get(maxAgeKey)

	d := NoCache
	if scope != "" && maxAge != "" {
		d = Directive(scope + ", max-age=" + maxAge)
	}
	r.logger.Debug(ctx, "cache policy resolved",
		observe.F("module", module),
		observe.F(scopeKey, scope),
		observe.F(maxAgeKey, maxAge),
		observe.F("cache_control", d.String()),
	)
	return d
}
