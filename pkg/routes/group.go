// Package routes declares API route groups and registers them on a ServeMux
// while collecting their OpenAPI operations.
package routes

import (
	"net/http"

	"github.com/JaimeStill/storefront/pkg/openapi"
)

// Route is a single endpoint. Pattern is relative to its group prefix.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// AddToSpec adds the group's operations under basePath. Operations without
// tags inherit the group tags.
func (g *Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.walk("", func(prefix string, tags []string, r Route) {
		if r.OpenAPI == nil {
			return
		}
		if len(r.OpenAPI.Tags) == 0 {
			r.OpenAPI.Tags = tags
		}
		spec.AddOperation(basePath+prefix+r.Pattern, r.Method, r.OpenAPI)
	})

	if len(g.Schemas) > 0 && spec.Components != nil {
		spec.Components.AddSchemas(g.Schemas)
	}
}

func (g *Group) walk(parent string, fn func(prefix string, tags []string, r Route)) {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		fn(prefix, g.Tags, r)
	}
	for i := range g.Children {
		g.Children[i].walk(prefix, fn)
	}
}

// Register mounts every route on mux as "METHOD prefix+pattern" and adds the
// operations to spec. Mux patterns exclude basePath because the owning module
// strips it before dispatch.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, g := range groups {
		g.walk("", func(prefix string, _ []string, r Route) {
			mux.HandleFunc(r.Method+" "+prefix+r.Pattern, r.Handler)
		})
		g.AddToSpec(basePath, spec)
	}
}
