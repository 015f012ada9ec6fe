// Package main provides the seed command for populating the catalog. Seeders
// run individually or together within a single transaction.
package main

import (
	"context"
	"database/sql"
	"fmt"
)

// Seeder populates one slice of the catalog inside a transaction.
type Seeder interface {
	Name() string
	Description() string
	Seed(ctx context.Context, tx *sql.Tx) error
}

// Seeders run in registration order so categories exist before products.
type registry struct {
	order   []string
	seeders map[string]Seeder
}

func newRegistry(seeders ...Seeder) *registry {
	r := &registry{seeders: make(map[string]Seeder, len(seeders))}
	for _, s := range seeders {
		r.order = append(r.order, s.Name())
		r.seeders[s.Name()] = s
	}
	return r
}

func (r *registry) get(name string) (Seeder, bool) {
	s, ok := r.seeders[name]
	return s, ok
}

func (r *registry) list() []Seeder {
	result := make([]Seeder, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.seeders[name])
	}
	return result
}

func (r *registry) names() []string {
	return append([]string(nil), r.order...)
}

// run executes the named seeders in registration order within one
// transaction. If any seeder fails, the whole transaction is rolled back.
func (r *registry) run(ctx context.Context, db *sql.DB, names ...string) error {
	selected := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := r.get(name); !ok {
			return fmt.Errorf("seeder not found: %s", name)
		}
		selected[name] = true
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	for _, s := range r.list() {
		if !selected[s.Name()] {
			continue
		}
		if err := s.Seed(ctx, tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
