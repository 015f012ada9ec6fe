package main

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/storefront/internal/api"
	"github.com/JaimeStill/storefront/internal/config"
	"github.com/JaimeStill/storefront/internal/infrastructure"
	"github.com/JaimeStill/storefront/pkg/lifecycle"
	"github.com/JaimeStill/storefront/pkg/middleware"
	"github.com/JaimeStill/storefront/pkg/module"
	"github.com/JaimeStill/storefront/web/app"
	"github.com/JaimeStill/storefront/web/scalar"
)

// Modules holds every module mounted on the root router.
type Modules struct {
	API    *module.Module
	Scalar *module.Module
	App    *module.Module
}

// NewModules builds the API, the API reference page and the storefront.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	if cfg.App.BasePath == scalar.Prefix || cfg.API.BasePath == scalar.Prefix {
		return nil, fmt.Errorf("base path %s is reserved for the API reference", scalar.Prefix)
	}

	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, fmt.Errorf("api module: %w", err)
	}

	scalarModule, err := scalar.NewModule(cfg.API.OpenAPI.Title, cfg.API.BasePath+"/openapi.json")
	if err != nil {
		return nil, fmt.Errorf("scalar module: %w", err)
	}

	appModule, err := app.NewModule(&cfg.App, infra.Logger)
	if err != nil {
		return nil, fmt.Errorf("app module: %w", err)
	}
	appModule.Use(middleware.Logger(infra.Logger.With("module", "app")))

	return &Modules{
		API:    apiModule,
		Scalar: scalarModule,
		App:    appModule,
	}, nil
}

// Mount registers every module on router.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.Scalar)
	router.Mount(m.App)
}

func buildRouter(ready lifecycle.ReadinessChecker) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !ready.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}

// buildHandler applies the middleware that needs the full request path.
func buildHandler(router http.Handler) http.Handler {
	mw := middleware.New()
	mw.Use(middleware.TrimSlash())
	return mw.Apply(router)
}
