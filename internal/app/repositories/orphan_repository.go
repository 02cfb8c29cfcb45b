package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/careerhub/internal/app/models"
	"github.com/yigit/careerhub/internal/pkg/apperrors"
	"github.com/yigit/careerhub/internal/pkg/logger"
)

// OrphanRepository records accounts left without a profile row
type OrphanRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOrphanRepository creates a new OrphanRepository
func NewOrphanRepository(db *pgxpool.Pool) *OrphanRepository {
	return &OrphanRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Record stores an orphaned signup and fills in its ID and creation time
func (r *OrphanRepository) Record(ctx context.Context, orphan *models.OrphanedSignup) error {
	sql, args, err := r.sb.Insert("orphaned_signups").
		Columns("account_id", "email", "message").
		Values(orphan.AccountID, orphan.Email, orphan.Message).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build record orphan query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&orphan.ID, &orphan.CreatedAt); err != nil {
		logger.Error().Err(err).Str("accountID", orphan.AccountID).Msg("Error recording orphaned signup")
		return fmt.Errorf("error recording orphaned signup: %w", err)
	}
	return nil
}

// ListUnresolved returns one page of orphaned signups nobody has cleaned up yet, oldest first
func (r *OrphanRepository) ListUnresolved(ctx context.Context, offset, limit uint64) ([]models.OrphanedSignup, error) {
	sql, args, err := r.sb.Select("id", "account_id", "email", "message", "created_at").
		From("orphaned_signups").
		Where(squirrel.Eq{"resolved_at": nil}).
		OrderBy("created_at ASC", "id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list orphans query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing orphaned signups: %w", err)
	}
	defer rows.Close()

	orphans := []models.OrphanedSignup{}
	for rows.Next() {
		var o models.OrphanedSignup
		if err := rows.Scan(&o.ID, &o.AccountID, &o.Email, &o.Message, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning orphaned signup: %w", err)
		}
		orphans = append(orphans, o)
	}
	return orphans, rows.Err()
}

// CountUnresolved returns how many orphaned signups are still open
func (r *OrphanRepository) CountUnresolved(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("orphaned_signups").
		Where(squirrel.Eq{"resolved_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count orphans query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting orphaned signups: %w", err)
	}
	return total, nil
}

// Resolve marks an open orphaned signup as handled
func (r *OrphanRepository) Resolve(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("orphaned_signups").
		Set("resolved_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "resolved_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build resolve orphan query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error resolving orphaned signup: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("no open orphaned signup with id %d", id))
	}
	return nil
}
