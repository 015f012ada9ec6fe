// Package module groups an http.Handler under a single-level URL prefix with its
// own middleware chain. Modules are mounted on a Router alongside native routes.
package module

import (
	"fmt"
	"net/http"
	"strings"
)

// Module is an isolated handler mounted at a prefix such as "/api".
// The root prefix "/" mounts the module as the catch-all for unmatched paths.
type Module struct {
	prefix     string
	router     http.Handler
	middleware []func(http.Handler) http.Handler
	handler    http.Handler
}

// New creates a Module. It panics if prefix is not "/" or a single-level path.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix: prefix,
		router: router,
	}
}

// Prefix returns the mount prefix of the module.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware. The first registered middleware is the outermost.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware = append(m.middleware, mw)
	m.handler = nil
}

// Handler returns the module router wrapped in its middleware chain.
func (m *Module) Handler() http.Handler {
	if m.handler != nil {
		return m.handler
	}
	h := m.router
	for i := len(m.middleware) - 1; i >= 0; i-- {
		h = m.middleware[i](h)
	}
	m.handler = h
	return h
}

// Serve strips the module prefix from the request path and dispatches to Handler.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	if m.prefix == "/" {
		m.Handler().ServeHTTP(w, r)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	req := r.Clone(r.Context())
	req.URL.Path = path
	req.URL.RawPath = ""

	m.Handler().ServeHTTP(w, req)
}

func validatePrefix(prefix string) error {
	if prefix == "/" {
		return nil
	}
	if prefix == "" {
		return fmt.Errorf("module prefix required")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module prefix must be single-level: %s", prefix)
	}
	return nil
}
