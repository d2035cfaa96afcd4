// Package seed creates default data on startup.
package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/skhostel/hostelpay/internal/app/models"
	appRepos "github.com/skhostel/hostelpay/internal/app/repositories"
	"github.com/skhostel/hostelpay/internal/pkg/auth"
)

// CreateDefaultData creates the default office admin account if it doesn't
// exist. The bootstrap shortcut works without it, but seeding a real row lets
// the office log in through the regular credential path too.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, username, password string, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)

	exists, err := adminRepo.NameExists(ctx, username)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking default admin account")
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.AdminUser{AdminName: username, Password: hashed}
	if _, err := adminRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("adminname", username).Msg("Default admin account created")
	return nil
}
