package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrUnknownCategory reports a product that references a category missing
// from both the document and the database.
var ErrUnknownCategory = errors.New("unknown category")

// SaveCategories inserts or touches each category and returns the ids
// keyed by name.
func SaveCategories(ctx context.Context, tx *sql.Tx, items []Category) (map[string]uuid.UUID, error) {
	const query = `
		INSERT INTO categories (id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (name) DO UPDATE SET
			updated_at = NOW()
		RETURNING id`

	ids := make(map[string]uuid.UUID, len(items))
	for _, c := range items {
		var id uuid.UUID
		if err := tx.QueryRowContext(ctx, query, uuid.New(), c.Name).Scan(&id); err != nil {
			return nil, fmt.Errorf("save category %s: %w", c.Name, err)
		}
		ids[c.Name] = id
	}
	return ids, nil
}

// SaveProducts upserts each product and replaces its category
// associations. Category names are resolved against the database.
func SaveProducts(ctx context.Context, tx *sql.Tx, items []Product) error {
	const query = `
		INSERT INTO products (id, name, description, price, img_url, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (name) DO UPDATE SET
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			img_url = EXCLUDED.img_url,
			date = EXCLUDED.date,
			updated_at = NOW()
		RETURNING id`

	ids, err := categoryIDs(ctx, tx)
	if err != nil {
		return err
	}

	for _, p := range items {
		var id uuid.UUID
		err := tx.QueryRowContext(ctx, query, uuid.New(), p.Name, p.Description, p.Price, p.ImgURL, p.Date).Scan(&id)
		if err != nil {
			return fmt.Errorf("save product %s: %w", p.Name, err)
		}

		if err := linkCategories(ctx, tx, id, p, ids); err != nil {
			return err
		}
	}
	return nil
}

func categoryIDs(ctx context.Context, tx *sql.Tx) (map[string]uuid.UUID, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, name FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]uuid.UUID)
	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		ids[name] = id
	}
	return ids, rows.Err()
}

func linkCategories(ctx context.Context, tx *sql.Tx, productID uuid.UUID, p Product, ids map[string]uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM product_categories WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear categories for %s: %w", p.Name, err)
	}

	if len(p.Categories) == 0 {
		return nil
	}

	args := []any{productID}
	values := make([]string, 0, len(p.Categories))
	linked := make(map[uuid.UUID]struct{}, len(p.Categories))

	for _, name := range p.Categories {
		id, ok := ids[name]
		if !ok {
			return fmt.Errorf("%w: %s references %q", ErrUnknownCategory, p.Name, name)
		}
		if _, dup := linked[id]; dup {
			continue
		}
		linked[id] = struct{}{}
		args = append(args, id)
		values = append(values, fmt.Sprintf("($1, $%d)", len(args)))
	}

	query := `INSERT INTO product_categories (product_id, category_id) VALUES ` + strings.Join(values, ", ")
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("link categories for %s: %w", p.Name, err)
	}
	return nil
}
