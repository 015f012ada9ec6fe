// Package web renders server-side pages from html/template layouts. Layouts
// are parsed once and cloned per view so each view can define its own
// content block. templ components are rendered per request with
// RenderComponent and passed in as template.HTML.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef describes one renderable view.
type ViewDef struct {
	Template string
	Title    string
	Bundle   string
}

// ViewData is passed to layouts. BasePath enables portable links via {{ .BasePath }}.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	Data     any
}

// ErrWrite marks a RenderStatus failure after the status line was sent.
// The response is already started, so callers can only log it.
var ErrWrite = errors.New("write response")

// TemplateSet holds one parsed template tree per view.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// Option configures NewTemplateSet.
type Option func(*template.Template)

// WithFuncs adds template functions to every layout before parsing.
func WithFuncs(funcs template.FuncMap) Option {
	return func(t *template.Template) {
		t.Funcs(funcs)
	}
}

// NewTemplateSet parses the layouts matched by layoutGlob and clones them for
// each view under viewSubdir. Parsing fails fast on any missing or invalid file.
func NewTemplateSet(
	layoutFS, viewFS fs.FS,
	layoutGlob, viewSubdir, basePath string,
	views []ViewDef,
	opts ...Option,
) (*TemplateSet, error) {
	root := template.New("")
	for _, opt := range opts {
		opt(root)
	}

	layouts, err := root.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, fmt.Errorf("view dir %s: %w", viewSubdir, err)
	}

	parsed := make(map[string]*template.Template, len(views))
	for _, v := range views {
		if _, ok := parsed[v.Template]; ok {
			continue
		}
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse view %s: %w", v.Template, err)
		}
		parsed[v.Template] = t
	}

	return &TemplateSet{
		views:    parsed,
		basePath: basePath,
	}, nil
}

// BasePath returns the base path injected into ViewData.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Data builds ViewData for a view with the set's base path.
func (ts *TemplateSet) Data(view ViewDef, data any) ViewData {
	return ViewData{
		Title:    view.Title,
		Bundle:   view.Bundle,
		BasePath: ts.basePath,
		Data:     data,
	}
}

// Render writes the view with status 200.
func (ts *TemplateSet) Render(w http.ResponseWriter, layout, view string, data ViewData) error {
	return ts.RenderStatus(w, http.StatusOK, layout, view, data)
}

// RenderStatus executes the layout into a buffer and writes it with status.
// Nothing is written when execution fails, so callers can still answer 500.
func (ts *TemplateSet) RenderStatus(w http.ResponseWriter, status int, layout, view string, data ViewData) error {
	t, ok := ts.views[view]
	if !ok {
		return fmt.Errorf("template not found: %s", view)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("execute %s: %w", view, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, view, err)
	}
	return nil
}
