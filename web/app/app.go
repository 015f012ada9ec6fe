// Package app is the storefront module: it selects a view from the request
// path using a fixed route table and renders it inside the shared layout,
// below the navigation bar.
package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/storefront/internal/config"
	"github.com/JaimeStill/storefront/pkg/module"
	"github.com/JaimeStill/storefront/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

var errorView = web.ViewDef{
	Template: "error.html",
	Title:    http.StatusText(http.StatusMethodNotAllowed),
	Bundle:   "error",
}

var publicFiles = []string{
	"site.webmanifest",
	"robots.txt",
}

// Page is the per-request data available to views as .Data. Nav and Price
// are rendered with the request context before the layout executes.
type Page struct {
	View  View
	Brand string
	Nav   template.HTML
	Price template.HTML
}

// App renders storefront views.
type App struct {
	templates *web.TemplateSet
	brand     string
	logger    *slog.Logger
}

// New parses every view template. It fails if any template is missing or invalid.
func New(cfg *config.AppConfig, logger *slog.Logger) (*App, error) {
	defs := make([]web.ViewDef, 0, len(viewTemplates)+1)
	for v := ViewNotFound; v <= ViewAdmin; v++ {
		defs = append(defs, viewDef(v))
	}
	defs = append(defs, errorView)

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		cfg.BasePath,
		defs,
		web.WithFuncs(template.FuncMap{"asset": assetBase}),
	)
	if err != nil {
		return nil, err
	}

	return &App{
		templates: ts,
		brand:     cfg.Brand,
		logger:    logger.With("module", "app"),
	}, nil
}

// NewModule creates the storefront module mounted at cfg.BasePath.
func NewModule(cfg *config.AppConfig, logger *slog.Logger) (*module.Module, error) {
	a, err := New(cfg, logger)
	if err != nil {
		return nil, err
	}
	return module.New(cfg.BasePath, a.Handler()), nil
}

// Handler routes static assets and dispatches every other GET to a view.
// Other methods render the error view with 405.
func (a *App) Handler() http.Handler {
	r := web.NewRouter()

	r.HandleFunc("GET /dist/", web.DistServer(distFS, "dist", "/dist/"))
	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	r.HandleFunc("GET /", a.Dispatch)
	r.SetFallback(a.methodNotAllowed)

	return r
}

// Dispatch renders the view matched by the request path. Unmatched paths
// render the not-found view with 404.
func (a *App) Dispatch(w http.ResponseWriter, r *http.Request) {
	view := Match(r.URL.Path)

	status := http.StatusOK
	if view == ViewNotFound {
		status = http.StatusNotFound
	}

	a.render(w, r, view, viewDef(view), status)
}

func (a *App) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, HEAD")
	a.render(w, r, ViewNotFound, errorView, http.StatusMethodNotAllowed)
}

func (a *App) render(w http.ResponseWriter, r *http.Request, view View, def web.ViewDef, status int) {
	page, err := a.page(r.Context(), view)
	if err != nil {
		a.fail(w, r, view, err)
		return
	}

	data := a.templates.Data(def, page)
	err = a.templates.RenderStatus(w, status, layout, def.Template, data)
	switch {
	case err == nil:
	case errors.Is(err, web.ErrWrite):
		a.logger.Warn("response write failed", "view", view, "path", r.URL.Path, "error", err)
	default:
		a.fail(w, r, view, err)
	}
}

func (a *App) page(ctx context.Context, view View) (Page, error) {
	nav, err := web.RenderComponent(ctx, NavBar(a.brand, a.templates.BasePath(), view))
	if err != nil {
		return Page{}, fmt.Errorf("render nav: %w", err)
	}
	price, err := web.RenderComponent(ctx, ProductPrice())
	if err != nil {
		return Page{}, fmt.Errorf("render price: %w", err)
	}

	return Page{
		View:  view,
		Brand: a.brand,
		Nav:   nav,
		Price: price,
	}, nil
}

// fail answers 500. It is only called before anything was written.
func (a *App) fail(w http.ResponseWriter, r *http.Request, view View, err error) {
	a.logger.Error("render failed", "view", view, "path", r.URL.Path, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func viewDef(v View) web.ViewDef {
	return web.ViewDef{
		Template: v.template(),
		Title:    v.Title(),
		Bundle:   v.String(),
	}
}

// assetBase returns basePath with exactly one trailing slash.
func assetBase(basePath string) string {
	return strings.TrimSuffix(basePath, "/") + "/"
}
