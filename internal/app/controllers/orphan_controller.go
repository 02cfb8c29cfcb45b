package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/careerhub/internal/app/models/dto"
	"github.com/yigit/careerhub/internal/app/services"
	"github.com/yigit/careerhub/internal/middleware"
	"github.com/yigit/careerhub/internal/pkg/apperrors"
	"github.com/yigit/careerhub/internal/pkg/helpers"
)

// OrphanController exposes orphaned signups to operators
type OrphanController struct {
	orphanService *services.OrphanService
	logger        zerolog.Logger
}

// NewOrphanController creates a new OrphanController
func NewOrphanController(orphanService *services.OrphanService, logger zerolog.Logger) *OrphanController {
	return &OrphanController{
		orphanService: orphanService,
		logger:        logger,
	}
}

// ListOrphanedSignups lists open orphaned signups
// @Summary List orphaned signups
// @Description Accounts that exist in the auth service but have no profile row, oldest first.
// @Tags admin
// @Produce json
// @Security ServiceRoleAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.OrphanedSignupListResponse}
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Token is not a service role token"
// @Router /admin/orphaned-signups [get]
func (c *OrphanController) ListOrphanedSignups(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	orphans, total, err := c.orphanService.ListUnresolved(ctx.Request.Context(), offset, limit)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list orphaned signups")
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.NewOrphanedSignupListResponse(orphans, helpers.NewPaginationInfo(total, page, size))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response, "Orphaned signups retrieved"))
}

// ResolveOrphanedSignup closes an orphaned signup
// @Summary Resolve an orphaned signup
// @Description Marks the record as handled once the account has been repaired or removed.
// @Tags admin
// @Produce json
// @Security ServiceRoleAuth
// @Param id path int true "Orphaned signup ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "No open record with this ID"
// @Router /admin/orphaned-signups/{id}/resolve [post]
func (c *OrphanController) ResolveOrphanedSignup(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("orphaned signup id must be a positive integer"))
		return
	}

	if err := c.orphanService.Resolve(ctx.Request.Context(), id, ctx.GetString(middleware.ContextKeySubject)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Orphaned signup resolved"))
}
