package categories

import (
	"context"

	"github.com/JaimeStill/storefront/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the interface for category storage and retrieval operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Category], error)
	Find(ctx context.Context, id uuid.UUID) (*Category, error)
	Create(ctx context.Context, cmd CreateCommand) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
