package registration

import (
	"github.com/yigit/careerhub/internal/pkg/apperrors"
)

// ValidationCode identifies which rule a draft broke.
type ValidationCode string

const (
	CodeWeakPassword     ValidationCode = "weak_password"
	CodePasswordMismatch ValidationCode = "password_mismatch"
	CodeEmailDomain      ValidationCode = "email_domain"
	CodeStudentIDMissing ValidationCode = "student_id_missing"
	CodeStudentIDFormat  ValidationCode = "student_id_format"
)

// ValidationError is a local, pre-network failure. The user edits the draft and resubmits.
type ValidationError struct {
	Field   string
	Code    ValidationCode
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return apperrors.ErrValidationFailed
}

// Stage names a step of the submission pipeline.
type Stage string

const (
	StageCreateAccount Stage = "create_account"
	StageInsertProfile Stage = "insert_profile"
)

// SubmissionError is a failure reported by the auth service or the data store.
// Message is the backend's message, unchanged.
type SubmissionError struct {
	Stage   Stage
	Message string
	// AccountID is set when the account was created before the failure.
	AccountID string
	Err       error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// Orphaned reports whether the auth service holds an account that has no profile row.
// Nothing rolls that account back.
func (e *SubmissionError) Orphaned() bool {
	return e.Stage == StageInsertProfile && e.AccountID != ""
}
