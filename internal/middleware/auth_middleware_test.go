package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/careerhub/internal/app/models/dto"
	"github.com/yigit/careerhub/internal/pkg/auth"
)

func newGuardedRouter(svc *auth.JWTService) *gin.Engine {
	router := gin.New()
	router.GET("/admin", NewAuthMiddleware(svc).ServiceRoleAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString(ContextKeySubject)})
	})
	return router
}

func TestServiceRoleAuth(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: time.Hour})
	router := newGuardedRouter(svc)

	serviceToken, _, err := svc.GenerateServiceToken("ops")
	require.NoError(t, err)
	userToken, _, err := svc.GenerateAccessToken("acc-1", "ama@ashesi.edu.gh", nil)
	require.NoError(t, err)
	foreign, _, err := auth.NewJWTService(auth.JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour}).GenerateServiceToken("ops")
	require.NoError(t, err)
	expired, _, err := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: -time.Minute}).GenerateServiceToken("ops")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		code   dto.ErrorCode
	}{
		{name: "service token", header: "Bearer " + serviceToken, status: http.StatusOK},
		{name: "raw service token", header: serviceToken, status: http.StatusOK},
		{name: "missing header", status: http.StatusUnauthorized, code: dto.ErrorCodeUnauthorized},
		{name: "malformed header", header: "Basic dXNlcjpwYXNz", status: http.StatusUnauthorized, code: dto.ErrorCodeUnauthorized},
		{name: "wrong secret", header: "Bearer " + foreign, status: http.StatusUnauthorized, code: dto.ErrorCodeInvalidToken},
		{name: "expired", header: "Bearer " + expired, status: http.StatusUnauthorized, code: dto.ErrorCodeExpiredToken},
		{name: "registrant token", header: "Bearer " + userToken, status: http.StatusForbidden, code: dto.ErrorCodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"subject":"ops"}`, w.Body.String())
				return
			}

			var body struct {
				Success bool `json:"success"`
				Error   struct {
					Code dto.ErrorCode `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}
