package products

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/JaimeStill/storefront/internal/categories"
	"github.com/JaimeStill/storefront/pkg/query"
	"github.com/JaimeStill/storefront/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "products", "p").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description").
	Project("price", "Price").
	Project("img_url", "ImgURL").
	Project("date", "Date").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Name"}

// categoryForeignKey names the constraint violated when an association
// references a missing category.
const categoryForeignKey = "product_categories_category_id_fkey"

const returning = "RETURNING id, name, description, price, img_url, date, created_at, updated_at"

func scanProduct(s repository.Scanner) (Product, error) {
	var p Product
	err := s.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImgURL, &p.Date, &p.CreatedAt, &p.UpdatedAt)
	p.Categories = []categories.Category{}
	return p, err
}

type association struct {
	productID uuid.UUID
	category  categories.Category
}

func scanAssociation(s repository.Scanner) (association, error) {
	var a association
	err := s.Scan(&a.productID, &a.category.ID, &a.category.Name, &a.category.CreatedAt, &a.category.UpdatedAt)
	return a, err
}

// Filters contains optional filtering criteria for product queries.
type Filters struct {
	Name     *string
	Category *uuid.UUID
}

// FiltersFromQuery extracts filter values from URL query parameters.
// A malformed category id is ignored.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if n := values.Get("name"); n != "" {
		f.Name = &n
	}
	if c := values.Get("category"); c != "" {
		if id, err := uuid.Parse(c); err == nil {
			f.Category = &id
		}
	}
	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Name", f.Name)
	if f.Category != nil {
		b.WhereRaw(
			"EXISTS (SELECT 1 FROM product_categories pc WHERE pc.product_id = "+projection.Column("ID")+" AND pc.category_id = $%d)",
			*f.Category,
		)
	}
	return b
}
