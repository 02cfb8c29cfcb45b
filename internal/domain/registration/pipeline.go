package registration

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/yigit/careerhub/internal/app/models"
	"github.com/yigit/careerhub/internal/pkg/apperrors"
)

// DefaultPasswordPlaceholder goes into the profile row's password column.
const DefaultPasswordPlaceholder = "[managed by auth service]"

// AccountMetadata is stored by the auth service alongside the credential.
type AccountMetadata struct {
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	StudentID *string       `json:"student_id"`
	RoleID    models.RoleID `json:"role_id"`
}

// AsMap returns the metadata in the shape used for token claims.
func (m AccountMetadata) AsMap() map[string]interface{} {
	out := map[string]interface{}{
		"first_name": m.FirstName,
		"last_name":  m.LastName,
		"student_id": nil,
		"role_id":    int(m.RoleID),
	}
	if m.StudentID != nil {
		out["student_id"] = *m.StudentID
	}
	return out
}

// AccountRequest asks the auth service for a new account.
type AccountRequest struct {
	Email    string
	Password string
	Metadata AccountMetadata
}

// Account is what the auth service returns for a created account.
type Account struct {
	ID          string
	AccessToken string
}

// AccountCreator is the auth service.
type AccountCreator interface {
	CreateAccount(ctx context.Context, req AccountRequest) (Account, error)
}

// ProfileWriter is the data store holding profile rows.
type ProfileWriter interface {
	InsertProfile(ctx context.Context, profile *models.Profile) error
}

// Pipeline creates the account, then the profile row. The second stage only
// runs after the first succeeds, and a failure there is not compensated.
type Pipeline struct {
	accounts    AccountCreator
	profiles    ProfileWriter
	placeholder string
	tracer      trace.Tracer
}

// NewPipeline builds a pipeline. An empty placeholder uses DefaultPasswordPlaceholder,
// a nil tracer records nothing.
func NewPipeline(accounts AccountCreator, profiles ProfileWriter, placeholder string, tracer trace.Tracer) *Pipeline {
	if placeholder == "" {
		placeholder = DefaultPasswordPlaceholder
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("registration")
	}
	return &Pipeline{
		accounts:    accounts,
		profiles:    profiles,
		placeholder: placeholder,
		tracer:      tracer,
	}
}

// Outcome is the result of a pipeline run that got through both stages.
type Outcome struct {
	Account Account
	Profile *models.Profile
}

// Run executes both stages for d. Errors are *SubmissionError.
func (p *Pipeline) Run(ctx context.Context, d Draft) (Outcome, error) {
	account, err := p.createAccount(ctx, d)
	if err != nil {
		return Outcome{}, err
	}

	profile, err := p.insertProfile(ctx, d, account)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Account: account, Profile: profile}, nil
}

func (p *Pipeline) createAccount(ctx context.Context, d Draft) (Account, error) {
	ctx, span := p.tracer.Start(ctx, "registration.create_account",
		trace.WithAttributes(attribute.String("registration.role", string(d.Role))))
	defer span.End()

	account, err := p.accounts.CreateAccount(ctx, AccountRequest{
		Email:    d.Email,
		Password: d.Password,
		Metadata: AccountMetadata{
			FirstName: d.FirstName,
			LastName:  d.LastName,
			StudentID: d.studentID(),
			RoleID:    d.Role.ID(),
		},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create account failed")
		return Account{}, &SubmissionError{
			Stage:   StageCreateAccount,
			Message: apperrors.ServiceMessage(err),
			Err:     err,
		}
	}

	span.SetAttributes(attribute.String("registration.account_id", account.ID))
	return account, nil
}

func (p *Pipeline) insertProfile(ctx context.Context, d Draft, account Account) (*models.Profile, error) {
	ctx, span := p.tracer.Start(ctx, "registration.insert_profile",
		trace.WithAttributes(attribute.String("registration.account_id", account.ID)))
	defer span.End()

	profile := &models.Profile{
		ID:        account.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		RoleID:    d.Role.ID(),
		StudentID: d.studentID(),
		Password:  p.placeholder,
	}

	if err := p.profiles.InsertProfile(ctx, profile); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert profile failed")
		return nil, &SubmissionError{
			Stage:     StageInsertProfile,
			Message:   apperrors.ServiceMessage(err),
			AccountID: account.ID,
			Err:       err,
		}
	}

	return profile, nil
}
