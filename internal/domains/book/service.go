package book

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for the catalog.
type Service interface {
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	List(ctx context.Context, q *ListBooksQuery) ([]BookWithCategory, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateBookRequest) (*Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}
