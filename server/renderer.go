package server

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"sync"

	"github.com/jonwraymond/soffit/view"
)

// ModelName is the key the payload is bound under in the view model.
const ModelName = "soffit"

// Renderer writes a view's output for model.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: a failed render may have written partial output to w.
type Renderer interface {
	Render(w io.Writer, viewPath string, model map[string]any) error
}

// TemplateRenderer renders html/template views read from a file system.
// Parsed templates are kept for the life of the renderer.
type TemplateRenderer struct {
	fsys  fs.FS
	funcs template.FuncMap

	mu        sync.RWMutex
	templates map[string]*template.Template
}

// NewTemplateRenderer returns a renderer reading views from fsys, resolving
// view paths the way view.FSCatalog does.
func NewTemplateRenderer(fsys fs.FS, funcs template.FuncMap) *TemplateRenderer {
	return &TemplateRenderer{
		fsys:      fsys,
		funcs:     funcs,
		templates: make(map[string]*template.Template),
	}
}

// Render executes the template at viewPath with model.
func (r *TemplateRenderer) Render(w io.Writer, viewPath string, model map[string]any) error {
	tmpl, err := r.template(viewPath)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(w, model); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRenderFailed, viewPath, err)
	}
	return nil
}

func (r *TemplateRenderer) template(viewPath string) (*template.Template, error) {
	r.mu.RLock()
	tmpl, ok := r.templates[viewPath]
	r.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	name := view.FSPath(viewPath)
	tmpl, err := template.New(path.Base(name)).Funcs(r.funcs).ParseFS(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrRenderFailed, viewPath, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.templates[viewPath]; ok {
		return existing, nil
	}
	r.templates[viewPath] = tmpl
	return tmpl, nil
}

var _ Renderer = (*TemplateRenderer)(nil)
