package view

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestFSCatalog_ListResources(t *testing.T) {
	fsys := fstest.MapFS{
		"WEB-INF/soffit/hello/view.jsp":        {Data: []byte("v")},
		"WEB-INF/soffit/hello/view.normal.jsp": {Data: []byte("vn")},
		"WEB-INF/soffit/hello/partials/a.jsp":  {Data: []byte("a")},
	}
	c := NewFSCatalog(fsys)

	got, err := c.ListResources(context.Background(), "/WEB-INF/soffit/hello/")
	if err != nil {
		t.Fatalf("ListResources failed: %v", err)
	}
	want := []string{
		"/WEB-INF/soffit/hello/partials/",
		"/WEB-INF/soffit/hello/view.jsp",
		"/WEB-INF/soffit/hello/view.normal.jsp",
	}
	paths := got.Paths()
	if len(paths) != len(want) {
		t.Fatalf("Paths() = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("Paths()[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestFSCatalog_MissingDirectory(t *testing.T) {
	c := NewFSCatalog(fstest.MapFS{})
	got, err := c.ListResources(context.Background(), "/WEB-INF/soffit/nope/")
	if err != nil {
		t.Fatalf("ListResources failed: %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("Len() = %d, want 0", got.Len())
	}
}

type brokenFS struct{}

func (brokenFS) Open(string) (fs.File, error) { return nil, fs.ErrPermission }

func TestFSCatalog_Error(t *testing.T) {
	c := NewFSCatalog(brokenFS{})
	_, err := c.ListResources(context.Background(), "/mod/")
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("ListResources error = %v, want fs.ErrPermission", err)
	}
}

func TestFSCatalog_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFSCatalog(fstest.MapFS{}).ListResources(ctx, "/"); !errors.Is(err, context.Canceled) {
		t.Errorf("ListResources error = %v, want context.Canceled", err)
	}
}

func TestFSPath(t *testing.T) {
	tests := map[string]string{
		"/":                ".",
		"":                 ".",
		"/WEB-INF/soffit/": "WEB-INF/soffit",
		"mod/":             "mod",
	}
	for in, want := range tests {
		if got := FSPath(in); got != want {
			t.Errorf("FSPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestModulePath(t *testing.T) {
	tests := []struct {
		location, module, want string
	}{
		{"/WEB-INF/soffit/", "hello", "/WEB-INF/soffit/hello/"},
		{"/WEB-INF/soffit", "hello", "/WEB-INF/soffit/hello/"},
		{"/views/", "hello/", "/views/hello/"},
	}
	for _, tt := range tests {
		if got := ModulePath(tt.location, tt.module); got != tt.want {
			t.Errorf("ModulePath(%q, %q) = %q, want %q", tt.location, tt.module, got, tt.want)
		}
	}
}

func TestSelector_OverFSCatalog(t *testing.T) {
	fsys := fstest.MapFS{
		"WEB-INF/soffit/hello/view.jsp": {Data: []byte("v")},
	}
	s := mustSelector(t, NewFSCatalog(fsys))
	got, err := s.Resolve(context.Background(), ModulePath("/WEB-INF/soffit/", "hello"), "VIEW", "maximized")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != "/WEB-INF/soffit/hello/view.jsp" {
		t.Errorf("Resolve() = %q", got)
	}
}
