package products

import (
	"context"

	"github.com/JaimeStill/storefront/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the interface for product storage and retrieval operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Product], error)
	Find(ctx context.Context, id uuid.UUID) (*Product, error)
	Create(ctx context.Context, cmd CreateCommand) (*Product, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
