package products_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/storefront/internal/products"
	"github.com/JaimeStill/storefront/pkg/query"
)

func TestFiltersFromQuery(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name         string
		values       url.Values
		wantName     string
		wantCategory *uuid.UUID
	}{
		{"empty", url.Values{}, "", nil},
		{"name", url.Values{"name": {"gamer"}}, "gamer", nil},
		{"category", url.Values{"category": {id.String()}}, "", &id},
		{"malformed category", url.Values{"category": {"abc"}}, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := products.FiltersFromQuery(tt.values)

			gotName := ""
			if f.Name != nil {
				gotName = *f.Name
			}
			if gotName != tt.wantName {
				t.Errorf("Name = %q, want %q", gotName, tt.wantName)
			}

			switch {
			case tt.wantCategory == nil && f.Category != nil:
				t.Errorf("Category = %v, want nil", *f.Category)
			case tt.wantCategory != nil && (f.Category == nil || *f.Category != *tt.wantCategory):
				t.Errorf("Category = %v, want %v", f.Category, *tt.wantCategory)
			}
		})
	}
}

func TestFilters_Apply(t *testing.T) {
	id := uuid.New()
	name := "gamer"
	pm := query.NewProjectionMap("public", "products", "p").
		Project("id", "ID").
		Project("name", "Name")

	qb := query.NewBuilder(pm)
	products.Filters{Name: &name, Category: &id}.Apply(qb)

	sql, args := qb.BuildCount()

	if !strings.Contains(sql, "p.name ILIKE $1") {
		t.Errorf("sql %q missing name condition", sql)
	}
	if !strings.Contains(sql, "pc.category_id = $2") {
		t.Errorf("sql %q missing category condition", sql)
	}
	if len(args) != 2 {
		t.Fatalf("len(args) = %d, want 2", len(args))
	}
	if args[0] != "%gamer%" {
		t.Errorf("args[0] = %v, want %q", args[0], "%gamer%")
	}
	if args[1] != id {
		t.Errorf("args[1] = %v, want %v", args[1], id)
	}
}

func TestFilters_Apply_Empty(t *testing.T) {
	pm := query.NewProjectionMap("public", "products", "p").Project("name", "Name")
	qb := query.NewBuilder(pm)
	products.Filters{}.Apply(qb)

	sql, args := qb.BuildCount()
	if strings.Contains(sql, "WHERE") {
		t.Errorf("sql = %q, want no WHERE clause", sql)
	}
	if len(args) != 0 {
		t.Errorf("len(args) = %d, want 0", len(args))
	}
}
