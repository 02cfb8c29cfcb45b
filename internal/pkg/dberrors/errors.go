package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yigit/careerhub/internal/pkg/apperrors"
)

// UniqueViolation is the PostgreSQL error code for unique constraint violations.
const UniqueViolation = "23505"

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation && pgErr.ConstraintName == constraintName
}

// IsUniqueViolation reports whether err is any unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation
}

// AsServiceError wraps a database error so the server's own message reaches the caller.
// Errors that did not come from the server keep their Go error text.
func AsServiceError(err error) error {
	if err == nil {
		return nil
	}
	serviceErr := &apperrors.ServiceError{
		Service: "datastore",
		Message: err.Error(),
		Err:     err,
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		serviceErr.Code = pgErr.Code
		serviceErr.Message = pgErr.Message
	}
	return serviceErr
}
