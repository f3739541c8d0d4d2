package view

import (
	"context"
	"strings"

	"github.com/jonwraymond/soffit/cache"
	"github.com/jonwraymond/soffit/observe"
)

// Selector picks and memoizes view paths.
//
// Selector is safe for concurrent use.
type Selector struct {
	catalog Catalog
	memo    *cache.Memoizer
	ext     string
	metrics observe.Metrics
	logger  observe.Logger
}

// Option configures a Selector.
type Option func(*Selector)

// WithExtension sets the view file extension, without the leading dot.
func WithExtension(ext string) Option {
	return func(s *Selector) {
		if ext = strings.TrimPrefix(ext, "."); ext != "" {
			s.ext = ext
		}
	}
}

// WithCache stores selections in c instead of a private MemoryCache.
func WithCache(c cache.Cache) Option {
	return func(s *Selector) {
		if c != nil {
			s.memo = cache.NewMemoizer(c)
		}
	}
}

// WithMetrics reports each lookup's hit or miss to m.
func WithMetrics(m observe.Metrics) Option {
	return func(s *Selector) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithLogger logs selections to l at debug level.
func WithLogger(l observe.Logger) Option {
	return func(s *Selector) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSelector returns a Selector that enumerates views through catalog.
func NewSelector(catalog Catalog, opts ...Option) (*Selector, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	s := &Selector{
		catalog: catalog,
		ext:     DefaultExtension,
		metrics: observe.NopMetrics(),
		logger:  observe.NopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.memo == nil {
		s.memo = cache.NewMemoizer(nil)
	}
	return s, nil
}

// Extension returns the view file extension.
func (s *Selector) Extension() string { return s.ext }

// Cache returns the cache holding memoized selections.
func (s *Selector) Cache() cache.Cache { return s.memo.Cache() }

// Resolve returns the view path for mode and windowState under modulePath.
// Comparison is case-insensitive on mode and window state. A cached
// selection is returned without consulting the catalog.
//
// If no candidate exists the error is a *NoMatchingViewError.
func (s *Selector) Resolve(ctx context.Context, modulePath, mode, windowState string) (string, error) {
	key := cache.NewViewKey(modulePath, mode, windowState)
	viewPath, hit, err := s.memo.Resolve(ctx, key, s.lookup)
	s.metrics.RecordViewLookup(ctx, modulePath, hit)
	if err != nil {
		return "", err
	}
	if !hit {
		s.logger.Debug(ctx, "view selected",
			observe.F("module_path", modulePath),
			observe.F("mode", key.Mode),
			observe.F("window_state", key.WindowState),
			observe.F("view_path", viewPath),
		)
	}
	return viewPath, nil
}

func (s *Selector) lookup(ctx context.Context, key cache.ViewKey) (string, error) {
	resources, err := s.catalog.ListResources(ctx, key.ModulePath)
	if err != nil {
		return "", err
	}
	candidates := CandidatePaths(key.ModulePath, key.Mode, key.WindowState, s.ext)
	for _, c := range candidates {
		if resources.Contains(c) {
			return c, nil
		}
	}
	return "", &NoMatchingViewError{
		ModulePath:  key.ModulePath,
		Mode:        key.Mode,
		WindowState: key.WindowState,
		Tried:       candidates,
	}
}
