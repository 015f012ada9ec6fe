package web_test

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/JaimeStill/storefront/pkg/web"
)

//go:embed testdata/layouts/*
var layoutFS embed.FS

//go:embed testdata/views/*
var viewFS embed.FS

var funcs = web.WithFuncs(template.FuncMap{
	"shout": strings.ToUpper,
})

var testViews = []web.ViewDef{
	{Template: "home.html", Title: "Home", Bundle: "app"},
	{Template: "about.html", Title: "About", Bundle: "app"},
	{Template: "404.html", Title: "Not Found", Bundle: "app"},
}

func newTestSet(t *testing.T, views ...web.ViewDef) *web.TemplateSet {
	t.Helper()
	if len(views) == 0 {
		views = testViews
	}
	ts, err := web.NewTemplateSet(layoutFS, viewFS, "testdata/layouts/*.html", "testdata/views", "/shop", views, funcs)
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}
	return ts
}

func TestNewTemplateSet_Errors(t *testing.T) {
	tests := []struct {
		name   string
		glob   string
		subdir string
		views  []web.ViewDef
	}{
		{"invalid layout glob", "nonexistent/*.html", "testdata/views", testViews},
		{"missing view", "testdata/layouts/*.html", "testdata/views", []web.ViewDef{{Template: "nonexistent.html"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := web.NewTemplateSet(layoutFS, viewFS, tt.glob, tt.subdir, "/", tt.views, funcs)
			if err == nil {
				t.Error("NewTemplateSet() expected error")
			}
		})
	}
}

func TestNewTemplateSet_MissingFuncFails(t *testing.T) {
	_, err := web.NewTemplateSet(layoutFS, viewFS, "testdata/layouts/*.html", "testdata/views", "/", testViews)
	if err == nil {
		t.Error("NewTemplateSet() should fail when a view uses an unregistered function")
	}
}

func TestRender(t *testing.T) {
	ts := newTestSet(t)
	w := httptest.NewRecorder()

	err := ts.Render(w, "test.html", "about.html", ts.Data(testViews[1], nil))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q, want text/html; charset=utf-8", ct)
	}

	body := w.Body.String()
	for _, want := range []string{"<title>About</title>", "About US", `data-basepath="/shop"`, `data-bundle="app"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestRenderStatus_WritesNothingOnError(t *testing.T) {
	ts := newTestSet(t, web.ViewDef{Template: "broken.html"})
	w := httptest.NewRecorder()

	err := ts.RenderStatus(w, http.StatusOK, "test.html", "broken.html", web.ViewData{Data: map[string]any{}})
	if err == nil {
		t.Fatal("RenderStatus() expected error")
	}
	if w.Body.Len() != 0 {
		t.Errorf("partial output written: %q", w.Body.String())
	}
}

func TestRender_UnknownView(t *testing.T) {
	ts := newTestSet(t)

	if err := ts.Render(httptest.NewRecorder(), "test.html", "nonexistent.html", web.ViewData{}); err == nil {
		t.Error("Render() with unknown view should return error")
	}
}

func TestRender_Component(t *testing.T) {
	ts := newTestSet(t)
	w := httptest.NewRecorder()

	nav := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<nav class="test">links</nav>`)
		return err
	})

	html, err := web.RenderComponent(context.Background(), nav)
	if err != nil {
		t.Fatalf("RenderComponent() error = %v", err)
	}

	if err := ts.Render(w, "test.html", "home.html", ts.Data(testViews[0], html)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(w.Body.String(), `<nav class="test">links</nav>`) {
		t.Errorf("component output not embedded unescaped:\n%s", w.Body.String())
	}
}

type userKey struct{}

func TestRenderComponent(t *testing.T) {
	html, err := web.RenderComponent(context.Background(), nil)
	if err != nil || html != "" {
		t.Errorf("RenderComponent(nil) = %q, %v; want empty", html, err)
	}

	failing := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return errors.New("boom")
	})
	if _, err := web.RenderComponent(context.Background(), failing); err == nil {
		t.Error("RenderComponent() should propagate component errors")
	}
}

func TestRenderComponent_UsesContext(t *testing.T) {
	greeting := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		name, _ := ctx.Value(userKey{}).(string)
		_, err := io.WriteString(w, "hello "+name)
		return err
	})

	ctx := context.WithValue(context.Background(), userKey{}, "ana")
	html, err := web.RenderComponent(ctx, greeting)
	if err != nil {
		t.Fatalf("RenderComponent() error = %v", err)
	}
	if html != "hello ana" {
		t.Errorf("RenderComponent() = %q, want %q", html, "hello ana")
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := web.RenderComponent(canceled, greeting); !errors.Is(err, context.Canceled) {
		t.Errorf("RenderComponent() error = %v, want %v", err, context.Canceled)
	}
}

// brokenWriter fails every body write after recording the status.
type brokenWriter struct {
	header http.Header
	status []int
}

func (w *brokenWriter) Header() http.Header {
	return w.header
}

func (w *brokenWriter) WriteHeader(status int) {
	w.status = append(w.status, status)
}

func (w *brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestRenderStatus_WriteFailure(t *testing.T) {
	ts := newTestSet(t)
	w := &brokenWriter{header: http.Header{}}

	err := ts.RenderStatus(w, http.StatusNotFound, "test.html", "404.html", ts.Data(testViews[2], nil))
	if !errors.Is(err, web.ErrWrite) {
		t.Errorf("RenderStatus() error = %v, want %v", err, web.ErrWrite)
	}
	if len(w.status) != 1 || w.status[0] != http.StatusNotFound {
		t.Errorf("statuses = %v, want [404]", w.status)
	}
}

func TestRenderStatus_ExecutionFailureIsNotWriteFailure(t *testing.T) {
	ts := newTestSet(t, web.ViewDef{Template: "broken.html"})

	err := ts.RenderStatus(httptest.NewRecorder(), http.StatusOK, "test.html", "broken.html", web.ViewData{Data: map[string]any{}})
	if err == nil || errors.Is(err, web.ErrWrite) {
		t.Errorf("RenderStatus() error = %v, want execution error", err)
	}
}
