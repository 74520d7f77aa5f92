package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/andresq/gradebook/internal/app/models"
	appRepos "github.com/andresq/gradebook/internal/app/repositories"
	"github.com/andresq/gradebook/internal/pkg/auth"
)

// Default admin account created on first startup.
const (
	defaultAdminIdentifier = "123456789"
	defaultAdminName       = "Andres"
	defaultAdminSecret     = "1234"
)

// CreateDefaultAdmin inserts the well-known admin account if it does not
// exist yet. Safe to run on every startup.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.IdentifierExists(ctx, defaultAdminIdentifier)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if default admin exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Default admin already exists, skipping creation")
		return nil
	}

	lgr.Info().Msg("Creating default admin user...")

	hash, err := auth.HashPassword(defaultAdminSecret)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin secret")
		return err
	}

	admin := &models.User{
		Identifier: defaultAdminIdentifier,
		Name:       defaultAdminName,
		Password:   hash,
		Role:       models.RoleAdmin,
	}

	adminID, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		// A concurrent startup may have won the race; the unique constraint
		// makes that a benign outcome.
		if errors.Is(err, appRepos.ErrDuplicate) {
			lgr.Info().Msg("Default admin created concurrently, skipping")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return err
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin user created successfully")
	return nil
}
