// Package authservice talks to the authentication backend that owns the
// credentials of registered users. Two providers are available: a client for
// a hosted GoTrue-style auth service and an in-process one backed by Postgres.
package authservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yigit/careerhub/internal/domain/registration"
	"github.com/yigit/careerhub/internal/pkg/apperrors"
	"github.com/yigit/careerhub/internal/pkg/auth"
	"github.com/yigit/careerhub/internal/pkg/logger"
)

const (
	serviceName = "auth"
	signupPath  = "/auth/v1/signup"
	// maxErrorBody bounds how much of an error response is read.
	maxErrorBody = 64 << 10
)

// RemoteConfig configures the hosted auth service client
type RemoteConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// JWTSecret, when set, is used to verify access tokens returned at signup.
	JWTSecret string
}

// RemoteClient creates accounts through the hosted auth service's signup endpoint
type RemoteClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	verifier   *auth.JWTService
}

// NewRemoteClient creates a new RemoteClient. A nil httpClient uses one with cfg.Timeout.
func NewRemoteClient(cfg RemoteConfig, httpClient *http.Client) *RemoteClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	c := &RemoteClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}
	if cfg.JWTSecret != "" {
		c.verifier = auth.NewJWTService(auth.JWTConfig{SecretKey: cfg.JWTSecret})
	}
	return c
}

type signupRequest struct {
	Email    string                       `json:"email"`
	Password string                       `json:"password"`
	Data     registration.AccountMetadata `json:"data"`
}

type remoteUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// signupResponse covers both shapes the endpoint returns: a session wrapping
// the user when sign-in is immediate, or the bare user when email
// confirmation is pending.
type signupResponse struct {
	AccessToken string      `json:"access_token"`
	User        *remoteUser `json:"user"`
	ID          string      `json:"id"`
}

// errorResponse lists the fields the service has used for error text over its versions
type errorResponse struct {
	Code             json.RawMessage `json:"code"`
	ErrorCode        string          `json:"error_code"`
	Msg              string          `json:"msg"`
	Message          string          `json:"message"`
	ErrorDescription string          `json:"error_description"`
	Error            string          `json:"error"`
}

func (e errorResponse) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// CreateAccount implements registration.AccountCreator.
func (c *RemoteClient) CreateAccount(ctx context.Context, req registration.AccountRequest) (registration.Account, error) {
	body, err := json.Marshal(signupRequest{Email: req.Email, Password: req.Password, Data: req.Metadata})
	if err != nil {
		return registration.Account{}, fmt.Errorf("failed to encode signup request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+signupPath, bytes.NewReader(body))
	if err != nil {
		return registration.Account{}, fmt.Errorf("failed to build signup request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("apikey", c.apiKey)
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Error().Err(err).Str("url", c.baseURL+signupPath).Msg("Auth service unreachable")
		return registration.Account{}, &apperrors.ServiceError{Service: serviceName, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return registration.Account{}, decodeError(resp)
	}

	var out signupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return registration.Account{}, &apperrors.ServiceError{
			Service: serviceName,
			Status:  resp.StatusCode,
			Message: "auth service returned an unreadable response",
			Err:     err,
		}
	}

	account := registration.Account{ID: out.ID, AccessToken: out.AccessToken}
	if out.User != nil {
		account.ID = out.User.ID
	}
	if account.ID == "" {
		return registration.Account{}, &apperrors.ServiceError{
			Service: serviceName,
			Status:  resp.StatusCode,
			Message: "auth service response did not include a user id",
		}
	}

	if c.verifier != nil && account.AccessToken != "" {
		if _, err := c.verifier.VerifySubject(account.AccessToken, account.ID); err != nil {
			logger.Error().Err(err).Str("accountID", account.ID).Msg("Auth service returned an unverifiable access token")
			return registration.Account{}, &apperrors.ServiceError{
				Service: serviceName,
				Status:  resp.StatusCode,
				Message: "auth service returned an invalid session token",
				Err:     err,
			}
		}
	}

	return account, nil
}

func decodeError(resp *http.Response) error {
	serviceErr := &apperrors.ServiceError{Service: serviceName, Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && len(raw) > 0 {
		var body errorResponse
		if json.Unmarshal(raw, &body) == nil {
			serviceErr.Message = body.text()
			serviceErr.Code = body.ErrorCode
		}
	}
	if serviceErr.Message == "" {
		serviceErr.Message = fmt.Sprintf("auth service returned status %d", resp.StatusCode)
	}

	logger.Warn().Int("status", resp.StatusCode).Str("message", serviceErr.Message).Msg("Auth service rejected signup")
	return serviceErr
}
