package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestMemoryCache_GetSet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	key := NewViewKey("mod/", "view", "normal")

	val, ok := c.Get(ctx, key)
	if ok {
		t.Error("Get on empty cache should return ok=false")
	}
	if val != "" {
		t.Errorf("Get on empty cache returned %q, want empty", val)
	}

	if err := c.Set(ctx, key, "mod/view.normal.jsp"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := c.Get(ctx, key)
	if !ok {
		t.Error("Get after Set should return ok=true")
	}
	if got != "mod/view.normal.jsp" {
		t.Errorf("Get returned %q, want %q", got, "mod/view.normal.jsp")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestMemoryCache_SetAcceptsAnyKey(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	keys := []ViewKey{
		{},
		NewViewKey("/views/a\nb/", "view", "normal"),
		NewViewKey("/"+strings.Repeat("m", 1024)+"/", "view", "normal"),
	}

	for i, k := range keys {
		if err := c.Set(ctx, k, "v.jsp"); err != nil {
			t.Errorf("Set(%q) = %v, want nil", k.String(), err)
		}
		if got, ok := c.Get(ctx, k); !ok || got != "v.jsp" {
			t.Errorf("Get(%q) = (%q, %v), want (%q, true)", k.String(), got, ok, "v.jsp")
		}
		if c.Len() != i+1 {
			t.Errorf("Len = %d, want %d", c.Len(), i+1)
		}
	}
}

func TestMemoryCache_SetOverwrite(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	key := NewViewKey("mod/", "view", "normal")

	_ = c.Set(ctx, key, "mod/view.jsp")
	_ = c.Set(ctx, key, "mod/view.normal.jsp")

	got, _ := c.Get(ctx, key)
	if got != "mod/view.normal.jsp" {
		t.Errorf("Get after overwrite = %q, want %q", got, "mod/view.normal.jsp")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestMemoryCache_Snapshot(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	key := NewViewKey("mod/", "edit", "maximized")
	_ = c.Set(ctx, key, "mod/edit.jsp")

	snap := c.Snapshot()
	if snap[key] != "mod/edit.jsp" {
		t.Errorf("Snapshot[%v] = %q, want %q", key, snap[key], "mod/edit.jsp")
	}

	// Mutating the snapshot must not affect the cache.
	delete(snap, key)
	if _, ok := c.Get(ctx, key); !ok {
		t.Error("deleting from snapshot removed cache entry")
	}
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	const numGoroutines = 100
	const opsPerGoroutine = 500

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < opsPerGoroutine; j++ {
				key := NewViewKey("mod/", "view", fmt.Sprintf("state%d", j%10))
				if j%2 == 0 {
					_ = c.Set(ctx, key, "mod/view.jsp")
				} else {
					_, _ = c.Get(ctx, key)
				}
			}
		}(i)
	}

	wg.Wait()

	if c.Len() != 10 {
		t.Errorf("Len = %d, want 10", c.Len())
	}
}
