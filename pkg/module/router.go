package module

import "net/http"

// Router dispatches requests to native handlers and mounted modules.
type Router struct {
	mux *http.ServeMux
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// HandleNative registers a handler directly on the underlying mux,
// bypassing module prefixes and middleware.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// Mount registers the module at its prefix.
func (r *Router) Mount(m *Module) {
	if m.Prefix() == "/" {
		r.mux.HandleFunc("/", m.Serve)
		return
	}
	r.mux.HandleFunc(m.Prefix(), m.Serve)
	r.mux.HandleFunc(m.Prefix()+"/", m.Serve)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
