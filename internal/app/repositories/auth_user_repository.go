package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/careerhub/internal/app/models"
	"github.com/yigit/careerhub/internal/pkg/dberrors"
	"github.com/yigit/careerhub/internal/pkg/logger"
)

// ErrAuthEmailTaken is returned when a credential already exists for the email
var ErrAuthEmailTaken = errors.New("email already registered")

// AuthUserRepository stores credentials for the built-in auth provider
type AuthUserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAuthUserRepository creates a new AuthUserRepository
func NewAuthUserRepository(db *pgxpool.Pool) *AuthUserRepository {
	return &AuthUserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a credential and fills in the generated ID
func (r *AuthUserRepository) Create(ctx context.Context, user *models.AuthUser) error {
	sql, args, err := r.sb.Insert("auth_users").
		Columns("email", "password_hash", "metadata").
		Values(user.Email, user.PasswordHash, user.Metadata).
		Suffix("RETURNING id::text, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create auth user query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "auth_users_email_key") {
			logger.Warn().Str("email", user.Email).Msg("Attempted to register an existing email")
			return ErrAuthEmailTaken
		}
		logger.Error().Err(err).Msg("Error executing create auth user query")
		return fmt.Errorf("error creating auth user: %w", err)
	}
	return nil
}
