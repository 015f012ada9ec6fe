package categories_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/JaimeStill/storefront/internal/categories"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found error", categories.ErrNotFound, http.StatusNotFound},
		{"wrapped not found error", fmt.Errorf("failed: %w", categories.ErrNotFound), http.StatusNotFound},
		{"duplicate error", categories.ErrDuplicate, http.StatusConflict},
		{"in use error", categories.ErrInUse, http.StatusConflict},
		{"invalid error", categories.ErrInvalid, http.StatusUnprocessableEntity},
		{"wrapped invalid error", fmt.Errorf("%w: name is required", categories.ErrInvalid), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("unknown error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := categories.MapHTTPStatus(tt.err); got != tt.wantStatus {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}
