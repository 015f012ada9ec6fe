// Package scalar serves the interactive API reference page backed by the
// Scalar UI, pointed at the API's OpenAPI document.
package scalar

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/JaimeStill/storefront/pkg/module"
)

// Prefix is the mount point of the reference page.
const Prefix = "/scalar"

//go:embed index.html
var indexHTML string

var index = template.Must(template.New("index").Parse(indexHTML))

type page struct {
	Title   string
	SpecURL string
}

// Handler renders the reference page once and serves the cached bytes.
func Handler(title, specURL string) (http.HandlerFunc, error) {
	var buf bytes.Buffer
	if err := index.Execute(&buf, page{Title: title, SpecURL: specURL}); err != nil {
		return nil, fmt.Errorf("render scalar index: %w", err)
	}
	body := buf.Bytes()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}, nil
}

// NewModule mounts the reference page at Prefix.
func NewModule(title, specURL string) (*module.Module, error) {
	h, err := Handler(title, specURL)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h)

	return module.New(Prefix, mux), nil
}
