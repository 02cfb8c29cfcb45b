package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/careerhub/internal/app/models"
	"github.com/yigit/careerhub/internal/config"
	"github.com/yigit/careerhub/internal/domain/registration"
	"github.com/yigit/careerhub/internal/pkg/apperrors"
	"github.com/yigit/careerhub/internal/pkg/cachemanager"
	"github.com/yigit/careerhub/internal/pkg/helpers"
	"github.com/yigit/careerhub/internal/pkg/validation"
)

// DraftID identifies a server-held registration draft
type DraftID string

// orphanRecordTimeout bounds the best-effort write of an orphaned signup.
const orphanRecordTimeout = 5 * time.Second

// OrphanRecorder stores accounts that were created without a profile row
type OrphanRecorder interface {
	Record(ctx context.Context, orphan *models.OrphanedSignup) error
}

// RegistrationSettings are the configurable parts of the registration flow
type RegistrationSettings struct {
	Rules        registration.Rules
	Destinations registration.Destinations
	DraftTTL     time.Duration
	// Scheduler drives delayed navigation of drafts; nil uses real timers.
	Scheduler registration.Scheduler
}

// SettingsFromConfig builds RegistrationSettings from the registration config section
func SettingsFromConfig(cfg *config.RegistrationConfig) RegistrationSettings {
	policy := validation.DefaultPasswordPolicy()
	policy.MinLength = cfg.PasswordMinLength

	return RegistrationSettings{
		Rules: registration.Rules{
			AllowedDomains: cfg.AllowedEmailDomains,
			PasswordPolicy: policy,
		},
		Destinations: registration.Destinations{
			Student: cfg.StudentDestination,
			Staff:   cfg.StaffDestination,
			Delay:   helpers.ParseDuration(cfg.NavigationDelay, registration.DefaultNavigationDelay),
		},
		DraftTTL: helpers.ParseDuration(cfg.DraftTTL, cachemanager.DefaultExpiration),
	}
}

// RegistrationService manages registration drafts and submits them through the pipeline
type RegistrationService struct {
	settings RegistrationSettings
	pipeline *registration.Pipeline
	orphans  OrphanRecorder
	drafts   *cachemanager.InMemoryCacheManager[DraftID, *registration.Controller]
	logger   zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService. orphans may be nil.
func NewRegistrationService(
	settings RegistrationSettings,
	pipeline *registration.Pipeline,
	orphans OrphanRecorder,
	logger zerolog.Logger,
) *RegistrationService {
	if settings.DraftTTL <= 0 {
		settings.DraftTTL = cachemanager.DefaultExpiration
	}
	if settings.Scheduler == nil {
		settings.Scheduler = registration.TimeScheduler()
	}
	return &RegistrationService{
		settings: settings,
		pipeline: pipeline,
		orphans:  orphans,
		drafts: cachemanager.NewInMemoryCacheManager[DraftID, *registration.Controller](
			"registration-drafts", settings.DraftTTL, cachemanager.DefaultCleanupInterval),
		logger: logger,
	}
}

// CreateDraft opens an empty draft session
func (s *RegistrationService) CreateDraft(ctx context.Context) (DraftID, registration.Snapshot) {
	id := DraftID(uuid.NewString())
	ctrl := registration.NewController(s.settings.Rules, s.pipeline,
		registration.WithDestinations(s.settings.Destinations),
		registration.WithScheduler(s.settings.Scheduler),
		registration.WithNavigator(s.navigator(id)),
	)
	s.drafts.Set(ctx, id, ctrl, s.settings.DraftTTL)

	s.logger.Debug().Str("draftID", string(id)).Int("openDrafts", s.drafts.Count()).Msg("Registration draft created")
	return id, ctrl.Snapshot()
}

// navigator completes a draft: once the delay has passed the draft is discarded.
func (s *RegistrationService) navigator(id DraftID) registration.Navigator {
	return registration.NavigatorFunc(func(destination string) {
		s.drafts.Delete(context.Background(), id)
		s.logger.Info().Str("draftID", string(id)).Str("destination", destination).Msg("Registration complete, navigating")
	})
}

func (s *RegistrationService) draft(ctx context.Context, id DraftID) (*registration.Controller, error) {
	ctrl, ok := s.drafts.GetWithRefresh(ctx, id, s.settings.DraftTTL)
	if !ok {
		return nil, apperrors.ErrDraftNotFound
	}
	return ctrl, nil
}

// GetDraft returns the current view of a draft
func (s *RegistrationService) GetDraft(ctx context.Context, id DraftID) (registration.Snapshot, error) {
	ctrl, err := s.draft(ctx, id)
	if err != nil {
		return registration.Snapshot{}, err
	}
	return ctrl.Snapshot(), nil
}

// UpdateField sets one field of a draft
func (s *RegistrationService) UpdateField(ctx context.Context, id DraftID, name, value string) (registration.Snapshot, error) {
	ctrl, err := s.draft(ctx, id)
	if err != nil {
		return registration.Snapshot{}, err
	}
	if err := ctrl.UpdateField(name, value); err != nil {
		return registration.Snapshot{}, err
	}
	return ctrl.Snapshot(), nil
}

// PasswordStrength scores the draft's current password
func (s *RegistrationService) PasswordStrength(ctx context.Context, id DraftID) (validation.Strength, error) {
	ctrl, err := s.draft(ctx, id)
	if err != nil {
		return validation.Strength{}, err
	}
	return ctrl.PasswordStrength(), nil
}

// ValidateDraft runs the submission checks on a draft without submitting it
func (s *RegistrationService) ValidateDraft(ctx context.Context, id DraftID) (registration.Snapshot, error) {
	ctrl, err := s.draft(ctx, id)
	if err != nil {
		return registration.Snapshot{}, err
	}
	err = ctrl.Validate()
	return ctrl.Snapshot(), err
}

// SubmitDraft submits a draft. On success navigation is scheduled on the draft.
func (s *RegistrationService) SubmitDraft(ctx context.Context, id DraftID) (registration.Result, error) {
	ctrl, err := s.draft(ctx, id)
	if err != nil {
		return registration.Result{}, err
	}

	email := ctrl.Snapshot().Email
	result, err := ctrl.Submit(ctx)
	if err != nil {
		s.handleSubmitError(ctx, email, err)
		return registration.Result{}, err
	}

	s.logSuccess(result)
	return result, nil
}

// AbandonDraft discards a draft, cancelling pending navigation
func (s *RegistrationService) AbandonDraft(ctx context.Context, id DraftID) error {
	ctrl, err := s.draft(ctx, id)
	if err != nil {
		return err
	}
	ctrl.Abandon()
	s.drafts.Delete(ctx, id)

	s.logger.Debug().Str("draftID", string(id)).Msg("Registration draft abandoned")
	return nil
}

// Register validates and submits a complete draft in one call. Navigation is
// left to the caller, which receives the destination and delay.
func (s *RegistrationService) Register(ctx context.Context, d registration.Draft) (registration.Result, error) {
	if d.Role == "" {
		d.Role = models.RoleStudent
	}
	if !d.Role.RequiresStudentID() {
		d.StudentID = ""
	}

	ctrl := registration.NewController(s.settings.Rules, s.pipeline,
		registration.WithDraft(d),
		registration.WithDestinations(s.settings.Destinations),
		registration.WithScheduler(nil),
	)

	result, err := ctrl.Submit(ctx)
	if err != nil {
		s.handleSubmitError(ctx, d.Email, err)
		return registration.Result{}, err
	}

	s.logSuccess(result)
	return result, nil
}

func (s *RegistrationService) logSuccess(result registration.Result) {
	s.logger.Info().
		Str("accountID", result.AccountID).
		Str("role", string(result.Role)).
		Str("destination", result.Destination).
		Msg("Registration succeeded")
}

func (s *RegistrationService) handleSubmitError(ctx context.Context, email string, err error) {
	var subErr *registration.SubmissionError
	if !errors.As(err, &subErr) {
		return
	}

	if !subErr.Orphaned() {
		s.logger.Warn().Str("stage", string(subErr.Stage)).Str("message", subErr.Message).Msg("Registration rejected")
		return
	}

	// The auth service account stays; nothing rolls it back.
	s.logger.Error().
		Err(subErr.Err).
		Str("accountID", subErr.AccountID).
		Str("email", email).
		Msg("Account created without a profile row")

	if s.orphans == nil {
		return
	}

	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), orphanRecordTimeout)
	defer cancel()

	orphan := &models.OrphanedSignup{AccountID: subErr.AccountID, Email: email, Message: subErr.Message}
	if err := s.orphans.Record(recordCtx, orphan); err != nil {
		s.logger.Error().Err(err).Str("accountID", subErr.AccountID).Msg("Failed to record orphaned signup")
	}
}
