package cache

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// ResolveFunc computes the view path for a key on cache miss.
type ResolveFunc func(ctx context.Context, key ViewKey) (string, error)

// Memoizer wraps view resolution with caching.
type Memoizer struct {
	cache  Cache
	flight singleflight.Group
}

// NewMemoizer creates a Memoizer backed by c.
// If c is nil, a fresh MemoryCache is used.
func NewMemoizer(c Cache) *Memoizer {
	if c == nil {
		c = NewMemoryCache()
	}
	return &Memoizer{cache: c}
}

// Cache returns the underlying cache.
func (m *Memoizer) Cache() Cache {
	return m.cache
}

// Resolve returns the cached view path for key, or calls fn on miss.
// On hit, fn is not called. Concurrent misses for the same key share one
// call to fn. Errors are NOT cached.
//
// The shared call runs under a context that keeps ctx's values but not its
// cancellation, so one caller going away never fails the others. A caller
// whose ctx ends first returns ctx.Err() while the shared call goes on to
// fill the cache.
//
// hit reports whether the value came from the cache.
func (m *Memoizer) Resolve(ctx context.Context, key ViewKey, fn ResolveFunc) (viewPath string, hit bool, err error) {
	if cached, ok := m.cache.Get(ctx, key); ok {
		return cached, true, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := m.flight.DoChan(key.String(), func() (any, error) {
		// Another flight may have filled the entry since our Get.
		if cached, ok := m.cache.Get(shared, key); ok {
			return cached, nil
		}

		resolved, err := fn(shared, key)
		if err != nil {
			return "", err
		}
		if err := m.cache.Set(shared, key, resolved); err != nil {
			return "", err
		}
		return resolved, nil
	})

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", false, res.Err
		}
		return res.Val.(string), false, nil
	}
}
