package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresq/gradebook/internal/app/models"
	"github.com/andresq/gradebook/internal/app/models/dto"
	"github.com/andresq/gradebook/internal/app/services"
	"github.com/andresq/gradebook/internal/pkg/apperrors"
	"github.com/andresq/gradebook/internal/pkg/auth"
)

func TestRegisterHashesSecretAndDefaultsRole(t *testing.T) {
	store := newFakeUserStore()
	svc := services.NewUserService(store)

	err := svc.Register(context.Background(), &dto.CreateUserRequest{
		Identifier: "42",
		Name:       "Ana",
		Secret:     "s3cret",
	})
	require.NoError(t, err)

	user := store.users["42"]
	require.NotNil(t, user)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "s3cret", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "s3cret"))
}

func TestRegisterDuplicateIdentifier(t *testing.T) {
	store := newFakeUserStore()
	svc := services.NewUserService(store)

	req := dto.CreateUserRequest{Identifier: "42", Name: "Ana", Secret: "s3cret"}
	require.NoError(t, svc.Register(context.Background(), &req))

	// Other field values must not matter
	req.Name = "Other"
	req.Secret = "different"
	err := svc.Register(context.Background(), &req)
	assert.ErrorIs(t, err, apperrors.ErrIdentifierExists)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := services.NewUserService(newFakeUserStore())

	tests := []struct {
		name string
		req  dto.CreateUserRequest
	}{
		{"missing identifier", dto.CreateUserRequest{Name: "Ana", Secret: "x"}},
		{"missing name", dto.CreateUserRequest{Identifier: "42", Secret: "x"}},
		{"missing secret", dto.CreateUserRequest{Identifier: "42", Name: "Ana"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestDeleteUserNonexistentIsNoop(t *testing.T) {
	svc := services.NewUserService(newFakeUserStore())
	assert.NoError(t, svc.DeleteUser(context.Background(), 12345))
}
