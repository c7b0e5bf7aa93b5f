package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for accounts and sessions.
type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*UserInfo, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	Me(ctx context.Context, userID uuid.UUID) (*UserInfo, error)
}
