package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/careerhub/internal/app/controllers"
	"github.com/yigit/careerhub/internal/middleware"
)

// SetupRouter configures all application routes. The operator routes are
// only registered when authMiddleware is non-nil.
func SetupRouter(
	router *gin.Engine,
	registrationController *controllers.RegistrationController,
	orphanController *controllers.OrphanController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", registrationController.Register)
	}

	drafts := v1.Group("/registration/drafts")
	{
		drafts.POST("", registrationController.CreateDraft)
		drafts.GET("/:id", registrationController.GetDraft)
		drafts.PATCH("/:id", registrationController.UpdateField)
		drafts.DELETE("/:id", registrationController.AbandonDraft)
		drafts.GET("/:id/password-strength", registrationController.PasswordStrength)
		drafts.POST("/:id/validate", registrationController.ValidateDraft)
		drafts.POST("/:id/submit", registrationController.SubmitDraft)
	}

	if authMiddleware == nil || orphanController == nil {
		return
	}

	admin := v1.Group("/admin", authMiddleware.ServiceRoleAuth())
	{
		admin.GET("/orphaned-signups", orphanController.ListOrphanedSignups)
		admin.POST("/orphaned-signups/:id/resolve", orphanController.ResolveOrphanedSignup)
	}
}
