package app

import "strings"

// View identifies one of the storefront pages.
type View int

const (
	ViewNotFound View = iota
	ViewHome
	ViewCatalog
	ViewAdmin
)

var viewNames = [...]string{
	ViewNotFound: "not-found",
	ViewHome:     "home",
	ViewCatalog:  "catalog",
	ViewAdmin:    "admin",
}

var viewTitles = [...]string{
	ViewNotFound: "Not Found",
	ViewHome:     "Home",
	ViewCatalog:  "Catalog",
	ViewAdmin:    "Admin",
}

var viewTemplates = [...]string{
	ViewNotFound: "404.html",
	ViewHome:     "home.html",
	ViewCatalog:  "catalog.html",
	ViewAdmin:    "admin.html",
}

func (v View) valid() bool {
	return v >= ViewNotFound && v <= ViewAdmin
}

// String returns the view's stable identifier, used in logs and CSS hooks.
func (v View) String() string {
	if !v.valid() {
		return "unknown"
	}
	return viewNames[v]
}

// Title returns the human-readable page title.
func (v View) Title() string {
	if !v.valid() {
		return viewTitles[ViewNotFound]
	}
	return viewTitles[v]
}

func (v View) template() string {
	if !v.valid() {
		return viewTemplates[ViewNotFound]
	}
	return viewTemplates[v]
}

// Route maps a path pattern to a view. Exact routes match only the pattern
// itself; the rest match the pattern and any path below it.
type Route struct {
	Pattern string
	Exact   bool
	View    View
}

// Matches reports whether path selects this route. Prefix matching respects
// segment boundaries: "/products" matches "/products/1" but not "/productsx".
func (r Route) Matches(path string) bool {
	if path == r.Pattern {
		return true
	}
	if r.Exact {
		return false
	}
	return strings.HasPrefix(path, strings.TrimSuffix(r.Pattern, "/")+"/")
}

// routes is evaluated in order and never modified after init.
var routes = []Route{
	{Pattern: "/", Exact: true, View: ViewHome},
	{Pattern: "/products", View: ViewCatalog},
	{Pattern: "/admin", View: ViewAdmin},
}

// Routes returns a copy of the route table in evaluation order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Match returns the view of the first route matching path, or ViewNotFound.
// An empty path is treated as "/".
func Match(path string) View {
	if path == "" {
		path = "/"
	}
	for _, r := range routes {
		if r.Matches(path) {
			return r.View
		}
	}
	return ViewNotFound
}
