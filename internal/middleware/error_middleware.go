package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/careerhub/internal/app/models/dto"
	"github.com/yigit/careerhub/internal/domain/registration"
	"github.com/yigit/careerhub/internal/pkg/apperrors"
)

// fieldCodes maps the draft field that failed validation to its error code.
var fieldCodes = map[string]dto.ErrorCode{
	registration.FieldEmail:           dto.ErrorCodeInvalidEmail,
	registration.FieldPassword:        dto.ErrorCodeInvalidPassword,
	registration.FieldConfirmPassword: dto.ErrorCodeInvalidPassword,
	registration.FieldStudentID:       dto.ErrorCodeInvalidStudentID,
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)
	c.JSON(status, dto.NewErrorResponse(detail))
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	var validationErr *registration.ValidationError
	if errors.As(err, &validationErr) {
		code, ok := fieldCodes[validationErr.Field]
		if !ok {
			code = dto.ErrorCodeValidationFailed
		}
		return http.StatusBadRequest, dto.NewErrorDetail(code, validationErr.Message).
			WithField(validationErr.Field).
			WithDetails(gin.H{"rule": validationErr.Code})
	}

	var submissionErr *registration.SubmissionError
	if errors.As(err, &submissionErr) {
		return submissionErrorDetail(submissionErr)
	}

	switch {
	case errors.Is(err, apperrors.ErrDraftNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Registration draft not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
	case apperrors.Is(err, apperrors.ErrSubmissionInProgress, apperrors.ErrAlreadySubmitted, apperrors.ErrDraftAbandoned):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, err.Error()).
			WithSeverity(dto.ErrorSeverityWarning)
	case apperrors.Is(err, apperrors.ErrUnknownField, apperrors.ErrInvalidRole, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	case errors.Is(err, apperrors.ErrExternalService):
		return http.StatusBadGateway, dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, apperrors.ServiceMessage(err))
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// submissionErrorDetail reports a backend failure with the backend's own message.
// A rejection by the auth service (4xx) is the caller's to fix; anything else
// is an upstream failure.
func submissionErrorDetail(err *registration.SubmissionError) (int, *dto.ErrorDetail) {
	status := http.StatusBadGateway
	var serviceErr *apperrors.ServiceError
	if errors.As(err, &serviceErr) && serviceErr.Status >= 400 && serviceErr.Status < 500 {
		status = http.StatusUnprocessableEntity
	}

	details := gin.H{"stage": err.Stage}
	detail := dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, err.Message)
	if err.Orphaned() {
		details["orphaned"] = true
		details["accountId"] = err.AccountID
		detail.WithSeverity(dto.ErrorSeverityCritical)
	}
	return status, detail.WithDetails(details)
}
