package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for the catalog.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	FindByID(ctx context.Context, id uuid.UUID) (*Book, error)
	FindAll(ctx context.Context, q *ListBooksQuery) ([]BookWithCategory, error)
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)

	// ExistsByID is the cheap referential check used by comment
	// submission.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// FindTitle returns only the book's title.
	FindTitle(ctx context.Context, id uuid.UUID) (string, error)
}
