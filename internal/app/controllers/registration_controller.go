// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/careerhub/internal/app/models/dto"
	"github.com/yigit/careerhub/internal/app/services"
	"github.com/yigit/careerhub/internal/middleware"
)

// RegistrationController handles account registration
type RegistrationController struct {
	registrationService *services.RegistrationService
	logger              zerolog.Logger
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService *services.RegistrationService, logger zerolog.Logger) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		logger:              logger,
	}
}

// Register handles one-shot registration
// @Summary Register a new account
// @Description Validates the form, creates the account in the auth service, then writes the profile row. The client should navigate to redirectTo after redirectAfterSeconds.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration form"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse} "Registration successful"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 422 {object} dto.ErrorResponse "Rejected by the auth service"
// @Failure 502 {object} dto.ErrorResponse "Auth service or data store failure"
// @Router /auth/register [post]
func (c *RegistrationController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.registrationService.Register(ctx.Request.Context(), req.ToDraft())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewRegisterResponse(result), "Registration successful"))
}

// CreateDraft opens a registration draft
// @Summary Start a registration draft
// @Description Creates an empty server-held draft. The role defaults to student.
// @Tags registration
// @Produce json
// @Success 201 {object} dto.APIResponse{data=dto.DraftResponse}
// @Router /registration/drafts [post]
func (c *RegistrationController) CreateDraft(ctx *gin.Context) {
	id, snapshot := c.registrationService.CreateDraft(ctx.Request.Context())
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewDraftResponse(string(id), snapshot), "Draft created"))
}

// GetDraft returns a draft
// @Summary Get a registration draft
// @Tags registration
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse}
// @Failure 404 {object} dto.ErrorResponse "Draft not found"
// @Router /registration/drafts/{id} [get]
func (c *RegistrationController) GetDraft(ctx *gin.Context) {
	id := draftID(ctx)
	snapshot, err := c.registrationService.GetDraft(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewDraftResponse(string(id), snapshot), ""))
}

// UpdateField sets one field of a draft
// @Summary Update a draft field
// @Description Sets one field. No validation runs until validate or submit. Switching the role to staff clears the student ID.
// @Tags registration
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.UpdateFieldRequest true "Field and value"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown field or role"
// @Failure 404 {object} dto.ErrorResponse "Draft not found"
// @Failure 409 {object} dto.ErrorResponse "Draft already submitted or abandoned"
// @Router /registration/drafts/{id} [patch]
func (c *RegistrationController) UpdateField(ctx *gin.Context) {
	var req dto.UpdateFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	id := draftID(ctx)
	snapshot, err := c.registrationService.UpdateField(ctx.Request.Context(), id, req.Field, req.Value)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewDraftResponse(string(id), snapshot), ""))
}

// PasswordStrength reports the strength of the draft's password
// @Summary Password strength
// @Tags registration
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.APIResponse{data=dto.PasswordStrengthResponse}
// @Failure 404 {object} dto.ErrorResponse "Draft not found"
// @Router /registration/drafts/{id}/password-strength [get]
func (c *RegistrationController) PasswordStrength(ctx *gin.Context) {
	strength, err := c.registrationService.PasswordStrength(ctx.Request.Context(), draftID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewPasswordStrengthResponse(strength), ""))
}

// ValidateDraft checks a draft without submitting it
// @Summary Validate a draft
// @Description Runs the submission checks in order and reports the first failure.
// @Tags registration
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Draft not found"
// @Router /registration/drafts/{id}/validate [post]
func (c *RegistrationController) ValidateDraft(ctx *gin.Context) {
	id := draftID(ctx)
	snapshot, err := c.registrationService.ValidateDraft(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewDraftResponse(string(id), snapshot), "Draft is valid"))
}

// SubmitDraft submits a draft
// @Summary Submit a draft
// @Description Creates the account and the profile row. On success the draft navigates to redirectTo after redirectAfterSeconds and is then discarded.
// @Tags registration
// @Produce json
// @Param id path string true "Draft ID"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse} "Registration successful"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Draft not found"
// @Failure 409 {object} dto.ErrorResponse "A submission is already in progress"
// @Failure 422 {object} dto.ErrorResponse "Rejected by the auth service"
// @Failure 502 {object} dto.ErrorResponse "Auth service or data store failure"
// @Router /registration/drafts/{id}/submit [post]
func (c *RegistrationController) SubmitDraft(ctx *gin.Context) {
	result, err := c.registrationService.SubmitDraft(ctx.Request.Context(), draftID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewRegisterResponse(result), "Registration successful"))
}

// AbandonDraft discards a draft
// @Summary Abandon a draft
// @Description Discards the draft. A pending navigation is cancelled and an in-flight submission's response is ignored.
// @Tags registration
// @Param id path string true "Draft ID"
// @Success 204 "Draft discarded"
// @Failure 404 {object} dto.ErrorResponse "Draft not found"
// @Router /registration/drafts/{id} [delete]
func (c *RegistrationController) AbandonDraft(ctx *gin.Context) {
	if err := c.registrationService.AbandonDraft(ctx.Request.Context(), draftID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func draftID(ctx *gin.Context) services.DraftID {
	return services.DraftID(ctx.Param("id"))
}
