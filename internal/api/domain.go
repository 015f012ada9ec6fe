package api

import (
	"github.com/JaimeStill/storefront/internal/categories"
	"github.com/JaimeStill/storefront/internal/products"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Categories categories.System
	Products   products.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Categories: categories.New(
			runtime.Database.Connection(),
			runtime.Logger,
			runtime.Pagination,
		),
		Products: products.New(
			runtime.Database.Connection(),
			runtime.Logger,
			runtime.Pagination,
		),
	}
}
