package categories

import (
	"net/url"

	"github.com/JaimeStill/storefront/pkg/query"
	"github.com/JaimeStill/storefront/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "categories", "c").
	Project("id", "ID").
	Project("name", "Name").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Name"}

// Scan reads a category row in projection order. The products system
// reuses it when loading associations.
func Scan(s repository.Scanner) (Category, error) {
	var c Category
	err := s.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// Filters contains optional filtering criteria for category queries.
type Filters struct {
	Name *string
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var name *string
	if n := values.Get("name"); n != "" {
		name = &n
	}

	return Filters{
		Name: name,
	}
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereContains("Name", f.Name)
}
