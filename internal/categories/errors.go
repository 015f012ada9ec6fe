package categories

import (
	"errors"
	"net/http"
)

// Domain errors for category operations.
var (
	ErrNotFound  = errors.New("category not found")
	ErrDuplicate = errors.New("category name already exists")
	ErrInvalid   = errors.New("invalid category")
	ErrInUse     = errors.New("category is referenced by products")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrInUse) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalid) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
