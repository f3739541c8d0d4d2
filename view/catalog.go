package view

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// ResourceSet is a set of resource paths.
type ResourceSet map[string]struct{}

// NewResourceSet returns a set holding paths.
func NewResourceSet(paths ...string) ResourceSet {
	s := make(ResourceSet, len(paths))
	for _, p := range paths {
		s[p] = struct{}{}
	}
	return s
}

// Contains reports whether path is in the set.
func (s ResourceSet) Contains(path string) bool {
	_, ok := s[path]
	return ok
}

// Len returns the number of paths.
func (s ResourceSet) Len() int { return len(s) }

// Paths returns the paths in sorted order.
func (s ResourceSet) Paths() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Catalog enumerates the resources directly under a path prefix.
//
// Contract:
//   - Each returned path is prefix followed by a child name; directories end
//     with "/".
//   - A prefix with no resources yields an empty set, not an error.
//   - Implementations must be safe for concurrent use.
type Catalog interface {
	ListResources(ctx context.Context, prefix string) (ResourceSet, error)
}

// CatalogFunc adapts a function to Catalog.
type CatalogFunc func(ctx context.Context, prefix string) (ResourceSet, error)

// ListResources calls f.
func (f CatalogFunc) ListResources(ctx context.Context, prefix string) (ResourceSet, error) {
	return f(ctx, prefix)
}

// FSCatalog lists resources from a file system rooted at the document root.
// A prefix "/a/b/" refers to directory "a/b" in the file system.
type FSCatalog struct {
	fsys fs.FS
}

// NewFSCatalog returns a Catalog over fsys.
func NewFSCatalog(fsys fs.FS) *FSCatalog {
	return &FSCatalog{fsys: fsys}
}

// FS returns the underlying file system.
func (c *FSCatalog) FS() fs.FS { return c.fsys }

// ListResources lists the immediate children of prefix.
func (c *FSCatalog) ListResources(ctx context.Context, prefix string) (ResourceSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir := FSPath(prefix)
	entries, err := fs.ReadDir(c.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewResourceSet(), nil
		}
		return nil, fmt.Errorf("view: list %q: %w", prefix, err)
	}

	base := prefix
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	set := make(ResourceSet, len(entries))
	for _, e := range entries {
		p := base + e.Name()
		if e.IsDir() {
			p += "/"
		}
		set[p] = struct{}{}
	}
	return set, nil
}

// FSPath converts a resource path to an io/fs path: leading and trailing
// slashes are removed and the root becomes ".".
func FSPath(resource string) string {
	p := strings.Trim(resource, "/")
	if p == "" {
		return "."
	}
	return p
}

var _ Catalog = (*FSCatalog)(nil)
