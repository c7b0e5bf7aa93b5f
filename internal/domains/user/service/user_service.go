package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"authorsite-backend/internal/domains/user"
	"authorsite-backend/pkg/jwt"
	"authorsite-backend/pkg/logger"
)

type userServiceImpl struct {
	repository user.Repository
	tokens     *jwt.Manager
}

func NewUserService(repo user.Repository, tokens *jwt.Manager) user.Service {
	return &userServiceImpl{
		repository: repo,
		tokens:     tokens,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, req *user.RegisterRequest) (*user.UserInfo, error) {
	if req == nil || req.Username == "" || req.Password == "" || req.Role == "" {
		return nil, user.ErrMissingFields
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrMissingFields, err)
	}

	role := user.Role(req.Role)
	if !role.IsValid() {
		return nil, user.ErrInvalidRole
	}

	if _, err := s.repository.FindByUsername(ctx, req.Username); err == nil {
		return nil, user.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.repository.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id": u.ID.String(),
		"role":    string(u.Role),
	})

	info := u.Info()
	return &info, nil
}

func (s *userServiceImpl) Login(ctx context.Context, req *user.LoginRequest) (*user.AuthResponse, error) {
	if req == nil || req.Username == "" || req.Password == "" {
		return nil, user.ErrMissingFields
	}

	u, err := s.repository.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrWrongPassword
	}

	return s.issueTokens(ctx, u)
}

func (s *userServiceImpl) Refresh(ctx context.Context, refreshToken string) (*user.AuthResponse, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, user.ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidRefreshToken
	}

	u, err := s.repository.FindByID(ctx, userID)
	if err != nil {
		return nil, user.ErrInvalidRefreshToken
	}

	// The token must match the one stored at login; logout clears it.
	if u.RefreshToken == nil || *u.RefreshToken != refreshToken {
		return nil, user.ErrInvalidRefreshToken
	}

	return s.issueTokens(ctx, u)
}

func (s *userServiceImpl) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.repository.UpdateRefreshToken(ctx, userID, nil)
}

func (s *userServiceImpl) Me(ctx context.Context, userID uuid.UUID) (*user.UserInfo, error) {
	u, err := s.repository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	info := u.Info()
	return &info, nil
}

func (s *userServiceImpl) issueTokens(ctx context.Context, u *user.User) (*user.AuthResponse, error) {
	access, err := s.tokens.GenerateAccessToken(u.ID.String(), u.Username, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refresh, err := s.tokens.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.repository.UpdateRefreshToken(ctx, u.ID, &refresh); err != nil {
		return nil, err
	}

	return &user.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         u.Info(),
	}, nil
}
