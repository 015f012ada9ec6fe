package categories_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JaimeStill/storefront/internal/categories"
	"github.com/JaimeStill/storefront/pkg/logging"
	"github.com/JaimeStill/storefront/pkg/pagination"
	"github.com/JaimeStill/storefront/pkg/repository/repositorytest"
)

var stamp = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newRepo(t *testing.T, h repositorytest.Handler) (categories.System, *repositorytest.DB) {
	t.Helper()
	db := repositorytest.New(t, h)
	cfg := pagination.Config{DefaultPageSize: 12, MaxPageSize: 50}
	return categories.New(db.DB, logging.Discard(), cfg), db
}

func rows(values ...[]driver.Value) repositorytest.Result {
	return repositorytest.Result{
		Columns: []string{"id", "name", "created_at", "updated_at"},
		Rows:    values,
	}
}

func failWith(err error) repositorytest.Handler {
	return func(string, []any) repositorytest.Result {
		return repositorytest.Result{Err: err}
	}
}

func TestRepo_Find(t *testing.T) {
	id := uuid.New()
	sys, _ := newRepo(t, func(string, []any) repositorytest.Result {
		return rows([]driver.Value{id.String(), "Livros", stamp, stamp})
	})

	c, err := sys.Find(context.Background(), id)
	if err != nil {
		t.Fatalf("Find() failed: %v", err)
	}
	if c.ID != id || c.Name != "Livros" {
		t.Errorf("Find() = %+v, want %s Livros", c, id)
	}
}

func TestRepo_FindNotFound(t *testing.T) {
	sys, _ := newRepo(t, func(string, []any) repositorytest.Result {
		return rows()
	})

	_, err := sys.Find(context.Background(), uuid.New())
	if !errors.Is(err, categories.ErrNotFound) {
		t.Errorf("Find() error = %v, want %v", err, categories.ErrNotFound)
	}
}

func TestRepo_Create(t *testing.T) {
	var inserted string
	sys, db := newRepo(t, func(query string, args []any) repositorytest.Result {
		inserted = args[1].(string)
		return rows([]driver.Value{args[0], inserted, stamp, stamp})
	})

	c, err := sys.Create(context.Background(), categories.CreateCommand{Name: "  Eletrônicos "})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if inserted != "Eletrônicos" || c.Name != "Eletrônicos" {
		t.Errorf("inserted %q, returned %q, want trimmed name", inserted, c.Name)
	}
	calls := db.Calls()
	if got := calls[len(calls)-1].Query; got != repositorytest.Commit {
		t.Errorf("last call = %q, want %q", got, repositorytest.Commit)
	}
}

func TestRepo_CreateDuplicate(t *testing.T) {
	sys, _ := newRepo(t, failWith(&pgconn.PgError{Code: "23505", ConstraintName: "categories_name_key"}))

	_, err := sys.Create(context.Background(), categories.CreateCommand{Name: "Livros"})
	if !errors.Is(err, categories.ErrDuplicate) {
		t.Errorf("Create() error = %v, want %v", err, categories.ErrDuplicate)
	}
}

func TestRepo_UpdateNotFound(t *testing.T) {
	sys, _ := newRepo(t, func(string, []any) repositorytest.Result {
		return rows()
	})

	_, err := sys.Update(context.Background(), uuid.New(), categories.UpdateCommand{Name: "Livros"})
	if !errors.Is(err, categories.ErrNotFound) {
		t.Errorf("Update() error = %v, want %v", err, categories.ErrNotFound)
	}
}

func TestRepo_Delete(t *testing.T) {
	tests := []struct {
		name   string
		result repositorytest.Result
		want   error
	}{
		{"unused category", repositorytest.Result{RowsAffected: 1}, nil},
		{"missing category", repositorytest.Result{}, categories.ErrNotFound},
		{
			"category in use",
			repositorytest.Result{Err: &pgconn.PgError{Code: "23503", ConstraintName: "product_categories_category_id_fkey"}},
			categories.ErrInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, db := newRepo(t, func(query string, _ []any) repositorytest.Result {
				if !strings.HasPrefix(query, "DELETE FROM categories") {
					t.Errorf("unexpected statement %q", query)
				}
				return tt.result
			})

			err := sys.Delete(context.Background(), uuid.New())
			if !errors.Is(err, tt.want) {
				t.Errorf("Delete() error = %v, want %v", err, tt.want)
			}

			want := repositorytest.Commit
			if tt.want != nil {
				want = repositorytest.Rollback
			}
			calls := db.Calls()
			if got := calls[len(calls)-1].Query; got != want {
				t.Errorf("last call = %q, want %q", got, want)
			}
		})
	}
}

func TestRepo_List(t *testing.T) {
	sys, _ := newRepo(t, func(query string, _ []any) repositorytest.Result {
		if strings.Contains(query, "COUNT(*)") {
			return repositorytest.Result{Rows: [][]driver.Value{{int64(2)}}}
		}
		return rows(
			[]driver.Value{uuid.NewString(), "Computadores", stamp, stamp},
			[]driver.Value{uuid.NewString(), "Livros", stamp, stamp},
		)
	})

	result, err := sys.List(context.Background(), pagination.PageRequest{}, categories.Filters{})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}

	if result.Total != 2 || len(result.Data) != 2 {
		t.Fatalf("List() = %d of %d items, want 2 of 2", len(result.Data), result.Total)
	}
	if result.PageSize != 12 || result.Data[1].Name != "Livros" {
		t.Errorf("List() = %+v, want default page size and Livros second", result)
	}
}
