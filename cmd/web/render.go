package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/mokfembam/portfolio/internal/format"
	"github.com/mokfembam/portfolio/internal/i18n"
	mw "github.com/mokfembam/portfolio/internal/middleware"
	"github.com/mokfembam/portfolio/internal/observability"
	"github.com/mokfembam/portfolio/templates"
)

// renderer executes the template set. In dev mode templates are reparsed from
// disk on each request; otherwise the embedded set is parsed once.
type renderer struct {
	fsys   fs.FS
	dev    bool
	bundle *i18n.Bundle

	mu    sync.Mutex
	cache *template.Template
}

func newRenderer(devDir string, bundle *i18n.Bundle) (*renderer, error) {
	r := &renderer{fsys: templates.FS, bundle: bundle}
	if devDir != "" {
		r.fsys = os.DirFS(devDir)
		r.dev = true
	}
	// parse eagerly so broken templates fail start-up
	t, err := r.parse()
	if err != nil {
		return nil, err
	}
	r.cache = t
	return r, nil
}

func (r *renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"t":   r.bundle.T,
		"tf":  r.bundle.Tf,
		"pct": format.Percent,
	}
}

func (r *renderer) parse() (*template.Template, error) {
	t, err := template.New("_root").Funcs(r.funcs()).ParseFS(r.fsys, templates.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

func (r *renderer) set() (*template.Template, error) {
	if !r.dev {
		return r.cache, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := r.parse()
	if err != nil {
		return nil, err
	}
	r.cache = t
	return t, nil
}

// execute renders name into a buffer so template errors never leave a
// half-written response.
func (r *renderer) execute(name string, data any) ([]byte, error) {
	t, err := r.set()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("template exec %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// render writes template name with status 200.
func (r *renderer) render(w http.ResponseWriter, req *http.Request, name string, data any) {
	body, err := r.execute(name, data)
	if err != nil {
		observability.FromContext(req.Context()).Error("render failed", zap.String("template", name), zap.Error(err))
		mw.WriteError(w, req, http.StatusInternalServerError, "template error")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
