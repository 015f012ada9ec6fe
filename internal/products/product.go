// Package products provides the domain system for catalog products and
// their category associations.
package products

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/JaimeStill/storefront/internal/categories"
)

// Name length bounds.
const (
	MinNameLength = 5
	MaxNameLength = 60
)

// Product is a catalog item with its categories.
type Product struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Price       float64               `json:"price"`
	ImgURL      string                `json:"img_url"`
	Date        time.Time             `json:"date"`
	Categories  []categories.Category `json:"categories"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// Command carries the writable product fields for create and update.
// CategoryIDs replaces the product's associations.
type Command struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	ImgURL      string      `json:"img_url"`
	Date        time.Time   `json:"date"`
	CategoryIDs []uuid.UUID `json:"category_ids"`
}

// CreateCommand contains the data required to create a new product.
type CreateCommand = Command

// UpdateCommand contains the data required to update an existing product.
type UpdateCommand = Command

// Validate normalizes the command and checks it against now. Duplicate
// category ids are collapsed.
func (c *Command) Validate(now time.Time) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	c.ImgURL = strings.TrimSpace(c.ImgURL)

	var problems []string

	if n := utf8.RuneCountInString(c.Name); n < MinNameLength || n > MaxNameLength {
		problems = append(problems, fmt.Sprintf("name must be between %d and %d characters", MinNameLength, MaxNameLength))
	}
	if !(c.Price > 0) {
		problems = append(problems, "price must be positive")
	}
	if c.Date.IsZero() {
		problems = append(problems, "date is required")
	} else if c.Date.After(now) {
		problems = append(problems, "date cannot be in the future")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	c.CategoryIDs = dedupe(c.CategoryIDs)
	return nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
