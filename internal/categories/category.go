// Package categories provides the domain system for the product categories
// that group catalog items.
package categories

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxNameLength bounds category names.
const MaxNameLength = 60

// Category is a named grouping of products.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommand contains the data required to create a new category.
type CreateCommand struct {
	Name string `json:"name"`
}

// UpdateCommand contains the data required to rename an existing category.
type UpdateCommand struct {
	Name string `json:"name"`
}

// Validate trims the name and checks its length.
func (c *CreateCommand) Validate() error {
	return validateName(&c.Name)
}

// Validate trims the name and checks its length.
func (c *UpdateCommand) Validate() error {
	return validateName(&c.Name)
}

func validateName(name *string) error {
	*name = strings.TrimSpace(*name)
	if *name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if n := utf8.RuneCountInString(*name); n > MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters, got %d", ErrInvalid, MaxNameLength, n)
	}
	return nil
}
