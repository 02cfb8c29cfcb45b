package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/careerhub/internal/app/models"
)

// OrphanStore reads and closes orphaned signup records
type OrphanStore interface {
	ListUnresolved(ctx context.Context, offset, limit uint64) ([]models.OrphanedSignup, error)
	CountUnresolved(ctx context.Context) (int64, error)
	Resolve(ctx context.Context, id int64) error
}

// OrphanService lets operators review accounts that were created without a profile row
type OrphanService struct {
	store  OrphanStore
	logger zerolog.Logger
}

// NewOrphanService creates a new OrphanService
func NewOrphanService(store OrphanStore, logger zerolog.Logger) *OrphanService {
	return &OrphanService{store: store, logger: logger}
}

// ListUnresolved returns a page of open records and the total number open
func (s *OrphanService) ListUnresolved(ctx context.Context, offset, limit uint64) ([]models.OrphanedSignup, int64, error) {
	total, err := s.store.CountUnresolved(ctx)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []models.OrphanedSignup{}, 0, nil
	}

	orphans, err := s.store.ListUnresolved(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return orphans, total, nil
}

// Resolve closes a record once the account has been repaired or removed by hand
func (s *OrphanService) Resolve(ctx context.Context, id int64, operator string) error {
	if err := s.store.Resolve(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("orphanID", id).Str("operator", operator).Msg("Orphaned signup resolved")
	return nil
}
