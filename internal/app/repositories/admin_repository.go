package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skhostel/hostelpay/internal/app/models"
	"github.com/skhostel/hostelpay/internal/pkg/apperrors"
	"github.com/skhostel/hostelpay/internal/pkg/dberrors"
	"github.com/skhostel/hostelpay/internal/pkg/logger"
)

// AdminRepository handles admin_users database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new admin user and returns its id
func (r *AdminRepository) Create(ctx context.Context, admin *models.AdminUser) (int64, error) {
	sql, args, err := r.sb.Insert("admin_users").
		Columns("adminname", "password").
		Values(admin.AdminName, admin.Password).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create admin query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "admin_users_adminname_key") {
			logger.Warn().Str("adminname", admin.AdminName).Msg("Attempted to create duplicate admin username")
			return 0, apperrors.ErrAdminNameExists
		}
		logger.Error().Err(err).Str("adminname", admin.AdminName).Msg("Error executing create admin query")
		return 0, fmt.Errorf("error creating admin: %w", err)
	}

	logger.Info().Int64("adminID", admin.ID).Str("adminname", admin.AdminName).Msg("Admin created")
	return admin.ID, nil
}

// GetByName retrieves an admin by username
func (r *AdminRepository) GetByName(ctx context.Context, adminName string) (*models.AdminUser, error) {
	sql, args, err := r.sb.Select("id", "adminname", "password", "created_at", "last_login").
		From("admin_users").
		Where(squirrel.Eq{"adminname": adminName}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	var admin models.AdminUser
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&admin.ID, &admin.AdminName, &admin.Password, &admin.CreatedAt, &admin.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	return &admin, nil
}

// NameExists checks if an admin username is taken
func (r *AdminRepository) NameExists(ctx context.Context, adminName string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("admin_users").
		Where(squirrel.Eq{"adminname": adminName}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build admin exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking admin existence: %w", err)
	}
	return exists, nil
}

// UpdateLastLogin stamps the admin's last successful login time
func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("admin_users").
		Set("last_login", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update last login query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("adminID", id).Msg("Error updating admin last login")
		return fmt.Errorf("error updating admin last login: %w", err)
	}
	return nil
}
