// Package middleware provides composable HTTP middleware for the storefront
// modules: request logging, CORS, trailing-slash canonicalization, per-client
// rate limiting and request body size limits.
package middleware

import "net/http"

// System accumulates middleware and applies it around a handler.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type system struct {
	stack []func(http.Handler) http.Handler
}

// New creates an empty middleware System.
func New() System {
	return &system{}
}

func (s *system) Use(mw func(http.Handler) http.Handler) {
	s.stack = append(s.stack, mw)
}

// Apply wraps handler so the first registered middleware runs outermost.
func (s *system) Apply(handler http.Handler) http.Handler {
	for i := len(s.stack) - 1; i >= 0; i-- {
		handler = s.stack[i](handler)
	}
	return handler
}
