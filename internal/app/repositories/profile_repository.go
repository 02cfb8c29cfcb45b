package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/careerhub/internal/app/models"
	"github.com/yigit/careerhub/internal/pkg/dberrors"
	"github.com/yigit/careerhub/internal/pkg/logger"
)

// ProfileRepository handles the 'users' profile table
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ProfileRepository) insertQuery(profile *models.Profile) (string, []interface{}, error) {
	return r.sb.Insert("users").
		Columns("id", "fname", "lname", "email", "role_id", "student_id", "password").
		Values(profile.ID, profile.FirstName, profile.LastName, profile.Email, int16(profile.RoleID), profile.StudentID, profile.Password).
		Suffix("RETURNING created_at").
		ToSql()
}

// InsertProfile writes the profile row for an account the auth service has
// already created. Database failures are returned as *apperrors.ServiceError
// carrying the server's message.
func (r *ProfileRepository) InsertProfile(ctx context.Context, profile *models.Profile) error {
	sql, args, err := r.insertQuery(profile)
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert profile SQL")
		return fmt.Errorf("failed to build insert profile query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&profile.CreatedAt); err != nil {
		logger.Error().Err(err).Str("userID", profile.ID).Msg("Error executing insert profile query")
		return dberrors.AsServiceError(err)
	}

	return nil
}
