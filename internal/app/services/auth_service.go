package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/andresq/gradebook/internal/app/models"
	"github.com/andresq/gradebook/internal/app/models/dto"
	"github.com/andresq/gradebook/internal/app/repositories"
	"github.com/andresq/gradebook/internal/pkg/apperrors"
	"github.com/andresq/gradebook/internal/pkg/auth"
)

// UserStore is the persistence surface the user-facing services need.
// *repositories.UserRepository satisfies it; tests inject fakes.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// AuthService defines the interface for credential verification
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserProfile, error)
}

type authServiceImpl struct {
	userStore UserStore
}

// NewAuthService creates a new auth service instance
func NewAuthService(userStore UserStore) AuthService {
	return &authServiceImpl{userStore: userStore}
}

// Login verifies the identifier/secret pair and returns the public profile.
// No token or session is issued; the caller holds the profile client-side.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserProfile, error) {
	if strings.TrimSpace(req.Identifier) == "" {
		return nil, fmt.Errorf("%w: identifier is required", apperrors.ErrValidationFailed)
	}
	if req.Secret == "" {
		return nil, fmt.Errorf("%w: secret is required", apperrors.ErrValidationFailed)
	}

	user, err := s.userStore.GetUserByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Secret) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &dto.UserProfile{
		ID:         user.ID,
		Identifier: user.Identifier,
		Name:       user.Name,
		Role:       string(user.Role),
	}, nil
}
