package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/careerhub/internal/app/models/dto"
	"github.com/yigit/careerhub/internal/pkg/auth"
)

// Context keys set by ServiceRoleAuth
const (
	ContextKeySubject = "tokenSubject"
	ContextKeyRole    = "tokenRole"
)

// AuthMiddleware guards operator endpoints with tokens signed by the auth service
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func abortWith(c *gin.Context, status int, code dto.ErrorCode, message, details string) {
	errorDetail := dto.NewErrorDetail(code, message).WithDetails(details)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(errorDetail))
}

// ServiceRoleAuth accepts only valid tokens whose role claim is the service role.
func (m *AuthMiddleware) ServiceRoleAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required", "Authorization header missing")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortWith(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required", "Invalid token format")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortWith(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Authentication failed", "Token has expired")
				return
			}
			abortWith(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Authentication failed", "Invalid token")
			return
		}

		if claims.Role != auth.ServiceRole {
			abortWith(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Access denied", "You don't have sufficient permissions for this operation")
			return
		}

		c.Set(ContextKeySubject, claims.Subject)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}
