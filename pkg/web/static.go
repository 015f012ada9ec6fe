package web

import (
	"bytes"
	"io/fs"
	"net/http"
	"path"
	"time"
)

// Route is a static route for registration on a Router.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// DistServer serves files under dir in fsys at urlPrefix (e.g. "/dist/").
func DistServer(fsys fs.FS, dir, urlPrefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return http.NotFound
	}
	server := http.StripPrefix(urlPrefix, http.FileServer(http.FS(sub)))
	return server.ServeHTTP
}

// PublicFile serves a single file from dir in fsys, or 404 if it is missing.
func PublicFile(fsys fs.FS, dir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
	}
}

// PublicFileRoutes returns a GET route at "/<name>" for each file.
func PublicFileRoutes(fsys fs.FS, dir string, names ...string) []Route {
	routes := make([]Route, 0, len(names))
	for _, name := range names {
		routes = append(routes, Route{
			Method:  http.MethodGet,
			Pattern: "/" + name,
			Handler: PublicFile(fsys, dir, name),
		})
	}
	return routes
}
