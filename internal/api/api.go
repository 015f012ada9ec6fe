// Package api assembles the catalog JSON API module: domain systems, route
// registration, the OpenAPI document and the API middleware chain.
package api

import (
	"net/http"

	"github.com/JaimeStill/storefront/internal/config"
	"github.com/JaimeStill/storefront/internal/infrastructure"
	"github.com/JaimeStill/storefront/pkg/middleware"
	"github.com/JaimeStill/storefront/pkg/module"
	"github.com/JaimeStill/storefront/pkg/openapi"
)

// NewModule builds the API module mounted at cfg.API.BasePath.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	if out := cfg.API.OpenAPI.Output; out != "" {
		if err := openapi.WriteJSON(spec, out); err != nil {
			return nil, err
		}
		runtime.Logger.Info("openapi document written", "path", out)
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	if cfg.API.RateLimit.Enabled {
		m.Use(middleware.RateLimit(middleware.NewLimiter(cfg.API.RateLimit), runtime.Logger))
	}
	m.Use(middleware.MaxBytes(cfg.API.MaxBodySizeBytes()))

	return m, nil
}
