package api

import (
	"net/http"

	"github.com/JaimeStill/storefront/internal/categories"
	"github.com/JaimeStill/storefront/internal/config"
	"github.com/JaimeStill/storefront/internal/products"
	"github.com/JaimeStill/storefront/pkg/openapi"
	"github.com/JaimeStill/storefront/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) {
	categoriesHandler := categories.NewHandler(domain.Categories, runtime.Logger, runtime.Pagination)
	productsHandler := products.NewHandler(domain.Products, runtime.Logger, runtime.Pagination)

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		categoriesHandler.Routes(),
		productsHandler.Routes(),
	)
}
