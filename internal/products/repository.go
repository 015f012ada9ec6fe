package products

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/storefront/pkg/pagination"
	"github.com/JaimeStill/storefront/pkg/query"
	"github.com/JaimeStill/storefront/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	now        func() time.Time
}

// New creates a products repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "product"),
		pagination: pagination,
		now:        time.Now,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Product], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Description")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	if err := attachCategories(ctx, r.db, items); err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Product, error) {
	p, err := find(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Product, error) {
	if err := cmd.Validate(r.now()); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO products (id, name, description, price, img_url, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		` + returning

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Product, error) {
		args := []any{uuid.New(), cmd.Name, cmd.Description, cmd.Price, cmd.ImgURL, cmd.Date}
		p, err := repository.QueryOne(ctx, tx, q, args, scanProduct)
		if err != nil {
			return p, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}
		if err := replaceCategories(ctx, tx, p.ID, cmd.CategoryIDs); err != nil {
			return p, err
		}
		return withCategories(ctx, tx, p)
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("product created", "id", p.ID, "name", p.Name)
	return &p, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Product, error) {
	if err := cmd.Validate(r.now()); err != nil {
		return nil, err
	}

	q := `
		UPDATE products
		SET name = $1, description = $2, price = $3, img_url = $4, date = $5, updated_at = NOW()
		WHERE id = $6
		` + returning

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Product, error) {
		args := []any{cmd.Name, cmd.Description, cmd.Price, cmd.ImgURL, cmd.Date, id}
		p, err := repository.QueryOne(ctx, tx, q, args, scanProduct)
		if err != nil {
			return p, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}
		if err := replaceCategories(ctx, tx, p.ID, cmd.CategoryIDs); err != nil {
			return p, err
		}
		return withCategories(ctx, tx, p)
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("product updated", "id", p.ID, "name", p.Name)
	return &p, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		err := repository.ExecExpectOne(ctx, tx, "DELETE FROM products WHERE id = $1", id)
		return struct{}{}, err
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("product deleted", "id", id)
	return nil
}

func find(ctx context.Context, q repository.Querier, id uuid.UUID) (Product, error) {
	sqlText, args := query.NewBuilder(projection).BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, q, sqlText, args, scanProduct)
	if err != nil {
		return p, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return withCategories(ctx, q, p)
}

// withCategories returns p with its stored categories attached.
func withCategories(ctx context.Context, q repository.Querier, p Product) (Product, error) {
	items := []Product{p}
	if err := attachCategories(ctx, q, items); err != nil {
		return p, err
	}
	return items[0], nil
}

// replaceCategories swaps the product's associations for ids. A foreign key
// violation means one of ids does not exist.
func replaceCategories(ctx context.Context, tx *sql.Tx, productID uuid.UUID, ids []uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM product_categories WHERE product_id = $1", productID); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	values := make([]string, len(ids))
	args := make([]any, 0, len(ids)+1)
	args = append(args, productID)
	for i, id := range ids {
		values[i] = fmt.Sprintf("($1, $%d)", i+2)
		args = append(args, id)
	}

	q := "INSERT INTO product_categories (product_id, category_id) VALUES " + strings.Join(values, ", ")
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		if repository.IsForeignKeyViolation(err) {
			if repository.ConstraintName(err) == categoryForeignKey {
				return ErrCategoryNotFound
			}
			return ErrNotFound
		}
		return fmt.Errorf("insert categories: %w", err)
	}
	return nil
}

// attachCategories loads the categories of items in one query and assigns
// them in name order.
func attachCategories(ctx context.Context, q repository.Querier, items []Product) error {
	if len(items) == 0 {
		return nil
	}

	index := make(map[uuid.UUID]int, len(items))
	placeholders := make([]string, len(items))
	args := make([]any, len(items))
	for i, p := range items {
		index[p.ID] = i
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = p.ID
	}

	sqlText := `
		SELECT pc.product_id, c.id, c.name, c.created_at, c.updated_at
		FROM product_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.product_id IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY c.name`

	assocs, err := repository.QueryMany(ctx, q, sqlText, args, scanAssociation)
	if err != nil {
		return fmt.Errorf("query product categories: %w", err)
	}

	for _, a := range assocs {
		i := index[a.productID]
		items[i].Categories = append(items[i].Categories, a.category)
	}
	return nil
}
