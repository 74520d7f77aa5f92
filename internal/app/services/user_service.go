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

// UserService defines the interface for user-related operations
type UserService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) error
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userServiceImpl struct {
	userStore UserStore
}

// NewUserService creates a new user service instance
func NewUserService(userStore UserStore) UserService {
	return &userServiceImpl{userStore: userStore}
}

// Register hashes the secret and inserts a user with the default role.
// Registration never grants admin.
func (s *userServiceImpl) Register(ctx context.Context, req *dto.CreateUserRequest) error {
	if strings.TrimSpace(req.Identifier) == "" {
		return fmt.Errorf("%w: identifier is required", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidationFailed)
	}
	if req.Secret == "" {
		return fmt.Errorf("%w: secret is required", apperrors.ErrValidationFailed)
	}

	hash, err := auth.HashPassword(req.Secret)
	if err != nil {
		return fmt.Errorf("error hashing secret: %w", err)
	}

	user := &models.User{
		Identifier: req.Identifier,
		Name:       req.Name,
		Password:   hash,
		Role:       models.RoleUser,
	}

	if _, err := s.userStore.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return apperrors.ErrIdentifierExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetAllUsers retrieves all users without their credential hashes
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userStore.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user by id; a nonexistent id is a no-op success
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userStore.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
