package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "careerhub.test",
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, expiresIn, err := svc.GenerateAccessToken("user-1", "ama@ashesi.edu.gh", map[string]interface{}{"role_id": 3})
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.VerifySubject(token, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "ama@ashesi.edu.gh", claims.Email)
	assert.Equal(t, "authenticated", claims.Role)
	assert.Equal(t, "careerhub.test", claims.Issuer)
	// JSON numbers decode as float64
	assert.Equal(t, float64(3), claims.UserMetadata["role_id"])
}

func TestJWTService_VerifySubjectMismatch(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	token, _, err := svc.GenerateAccessToken("user-1", "ama@ashesi.edu.gh", nil)
	require.NoError(t, err)

	_, err = svc.VerifySubject(token, "user-2")
	assert.ErrorIs(t, err, ErrSubjectMismatch)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	_, err := svc.ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour})
	token, _, err := other.GenerateAccessToken("user-1", "ama@ashesi.edu.gh", nil)
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)

	expired := newTestJWTService(-time.Minute)
	token, _, err = expired.GenerateAccessToken("user-1", "ama@ashesi.edu.gh", nil)
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Abc123!@")
	require.NoError(t, err)
	assert.NotEqual(t, "Abc123!@", hash)
	assert.True(t, CheckPassword(hash, "Abc123!@"))
	assert.False(t, CheckPassword(hash, "Abc123!#"))
}

func TestJWTService_ServiceToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, _, err := svc.GenerateServiceToken("ops")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, ServiceRole, claims.Role)
	assert.Equal(t, "ops", claims.Subject)
	assert.Empty(t, claims.Email)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", token)

	token, err = ExtractBearerToken("a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", token)

	for _, header := range []string{"", "Bearer ", "Basic dXNlcjpwYXNz", "Bearer abc"} {
		_, err := ExtractBearerToken(header)
		assert.ErrorIs(t, err, ErrInvalidFormat, header)
	}
}
