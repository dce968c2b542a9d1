package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/careerhub/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
}

func TestJWT_RoundTrip(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWT_RejectsWrongSecret(t *testing.T) {
	token, err := testJWTService().GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_RejectsGarbage(t *testing.T) {
	svc := testJWTService()

	_, err := svc.ValidateToken("")
	assert.Error(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWT_RejectsTampering(t *testing.T) {
	svc := testJWTService()

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}
