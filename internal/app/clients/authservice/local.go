package authservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/yigit/careerhub/internal/app/models"
	"github.com/yigit/careerhub/internal/app/repositories"
	"github.com/yigit/careerhub/internal/domain/registration"
	"github.com/yigit/careerhub/internal/pkg/apperrors"
	"github.com/yigit/careerhub/internal/pkg/auth"
	"github.com/yigit/careerhub/internal/pkg/logger"
)

// AuthUserStore persists credentials for the local provider
type AuthUserStore interface {
	Create(ctx context.Context, user *models.AuthUser) error
}

// LocalProvider creates accounts in the auth_users table and signs their
// access tokens itself, for deployments without a hosted auth service.
type LocalProvider struct {
	store AuthUserStore
	jwt   *auth.JWTService
}

// NewLocalProvider creates a new LocalProvider
func NewLocalProvider(store AuthUserStore, jwtService *auth.JWTService) *LocalProvider {
	return &LocalProvider{store: store, jwt: jwtService}
}

// CreateAccount implements registration.AccountCreator.
func (p *LocalProvider) CreateAccount(ctx context.Context, req registration.AccountRequest) (registration.Account, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return registration.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.AuthUser{
		Email:        req.Email,
		PasswordHash: hash,
		Metadata:     req.Metadata.AsMap(),
	}
	if err := p.store.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrAuthEmailTaken) {
			return registration.Account{}, &apperrors.ServiceError{
				Service: serviceName,
				Status:  http.StatusUnprocessableEntity,
				Code:    "user_already_exists",
				Message: "User already registered",
				Err:     err,
			}
		}
		return registration.Account{}, &apperrors.ServiceError{Service: serviceName, Message: err.Error(), Err: err}
	}

	token, _, err := p.jwt.GenerateAccessToken(user.ID, user.Email, user.Metadata)
	if err != nil {
		// The credential exists; the caller still gets the account.
		logger.Error().Err(err).Str("accountID", user.ID).Msg("Failed to issue access token")
		return registration.Account{ID: user.ID}, nil
	}

	return registration.Account{ID: user.ID, AccessToken: token}, nil
}
