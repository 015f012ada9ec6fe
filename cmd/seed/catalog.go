package main

import (
	"context"
	"database/sql"

	"github.com/JaimeStill/storefront/internal/seed"
)

// catalogSource loads seed data once and shares it between seeders.
type catalogSource struct {
	file string
	data *seed.Data
}

func (s *catalogSource) load() (*seed.Data, error) {
	if s.data != nil {
		return s.data, nil
	}
	data, err := seed.Load(s.file)
	if err != nil {
		return nil, err
	}
	s.data = data
	return data, nil
}

// CategorySeeder saves the catalog categories.
type CategorySeeder struct {
	source *catalogSource
}

func (s *CategorySeeder) Name() string { return "categories" }

func (s *CategorySeeder) Description() string {
	return "Seeds product categories"
}

func (s *CategorySeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.source.load()
	if err != nil {
		return err
	}
	_, err = seed.SaveCategories(ctx, tx, data.Categories)
	return err
}

// ProductSeeder saves the catalog products and their category links.
// Referenced categories must already exist or be seeded in the same run.
type ProductSeeder struct {
	source *catalogSource
}

func (s *ProductSeeder) Name() string { return "products" }

func (s *ProductSeeder) Description() string {
	return "Seeds products and their category associations"
}

func (s *ProductSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.source.load()
	if err != nil {
		return err
	}
	return seed.SaveProducts(ctx, tx, data.Products)
}
