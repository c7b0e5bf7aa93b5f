package category

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for categories.
type Repository interface {
	Create(ctx context.Context, c *Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CountBooks reports how many books reference the category.
	CountBooks(ctx context.Context, id uuid.UUID) (int, error)
}
