package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// External service errors
	ErrExternalService = errors.New("external service error")
)

// Registration draft errors
var (
	ErrDraftNotFound        = errors.New("registration draft not found")
	ErrSubmissionInProgress = errors.New("a submission is already in progress")
	ErrAlreadySubmitted     = errors.New("registration already completed")
	ErrDraftAbandoned       = errors.New("registration draft was abandoned")
	ErrUnknownField         = errors.New("unknown registration field")
	ErrInvalidRole          = errors.New("role must be student or staff")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError attaches a user-facing message to a sentinel error
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// ServiceError is an error reported by an external backend (auth service or data store).
// Message is the backend's own wording and is shown to the user unchanged.
type ServiceError struct {
	Service string
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements error interface
func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s returned status %d", e.Service, e.Status)
}

// Unwrap lets errors.Is match ErrExternalService as well as the wrapped cause.
func (e *ServiceError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrExternalService, e.Err}
	}
	return []error{ErrExternalService}
}

// ServiceMessage returns the backend-reported message for err, falling back to err.Error().
func ServiceMessage(err error) string {
	if err == nil {
		return ""
	}
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) && serviceErr.Message != "" {
		return serviceErr.Message
	}
	return err.Error()
}
