package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	appRepos "github.com/yigit/learnify/internal/app/repositories"
	appServices "github.com/yigit/learnify/internal/app/services"
	"github.com/yigit/learnify/internal/pkg/apperrors"
)

// AdminAccount describes the default administrator
type AdminAccount struct {
	Name     string
	Email    string
	Password string
}

// EnsureAdmin creates the default admin unless a user with that email already exists.
// An empty email disables seeding.
func EnsureAdmin(ctx context.Context, userRepo appRepos.IUserRepository, authService appServices.AuthService, admin AdminAccount, lgr zerolog.Logger) error {
	if admin.Email == "" {
		lgr.Info().Msg("No default admin configured, skipping admin seed")
		return nil
	}

	exists, err := userRepo.EmailExists(ctx, admin.Email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if exists {
		lgr.Info().Str("email", admin.Email).Msg("Admin user already exists, skipping creation")
		return nil
	}

	user, err := authService.CreateAdmin(ctx, admin.Name, admin.Email, admin.Password)
	if err != nil {
		// another instance seeded it first
		if apperrors.Is(err, apperrors.ErrConflict) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating admin user")
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	lgr.Info().Int64("adminID", user.ID).Str("email", user.Email).Msg("Default admin user created")
	return nil
}
