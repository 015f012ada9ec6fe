package products

import (
	"errors"
	"net/http"
)

// Domain errors for product operations.
var (
	ErrNotFound         = errors.New("product not found")
	ErrDuplicate        = errors.New("product name already exists")
	ErrInvalid          = errors.New("invalid product")
	ErrCategoryNotFound = errors.New("category not found")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalid):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
