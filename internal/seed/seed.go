package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/edufeedback/backend/internal/app/models"
	"github.com/edufeedback/backend/internal/app/repositories"
	"github.com/edufeedback/backend/internal/pkg/apperrors"
)

const defaultAdminEmail = "admin@edufeedback.local"

// CreateDefaultData creates the default admin account if it does not exist.
// Admins cannot self-register through the signup endpoint, so the seed is the
// only way an installation gets its first admin.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	_, err := userRepo.GetByEmail(ctx, defaultAdminEmail)
	if err == nil {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Error().Err(err).Msg("Error checking for admin user")
		return err
	}

	lgr.Info().Msg("Creating default admin user...")

	admin := &models.User{
		Email:    defaultAdminEmail,
		Password: "Admin123!", // hashed by the repository; change after first login
		Name:     "System Administrator",
		Role:     models.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		// A concurrent instance may have seeded it first
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Info().Msg("Admin user already exists, skipping creation")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created")
	return nil
}
