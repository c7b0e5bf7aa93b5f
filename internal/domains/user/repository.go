package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for staff accounts.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindElevated returns every account whose role is elevated.
	// An empty slice is a valid, non-error result.
	FindElevated(ctx context.Context) ([]User, error)

	// UpdateRefreshToken stores the current refresh token; nil clears it.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token *string) error
}
