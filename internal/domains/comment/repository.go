package comment

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for reader comments.
type Repository interface {
	Create(ctx context.Context, c *Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*Comment, error)

	// FindByStatus returns comments in the given state, newest first,
	// each annotated with its book's title. limit <= 0 means no limit.
	FindByStatus(ctx context.Context, status Status, limit int) ([]CommentWithBook, error)

	CountByStatus(ctx context.Context, status Status) (int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}
