package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/careerhub_test")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("RAPIDAPI_KEY", "rapid-key")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://localhost/careerhub_test", cfg.DatabaseURL)
	assert.Equal(t, 24, cfg.JWT.ExpirationHours)
	assert.Equal(t, 12, cfg.Password.BcryptCost)
	assert.Empty(t, cfg.DefaultLocation)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DEFAULT_JOB_LOCATION", "Remote")
	t.Setenv("JWT_EXPIRATION_HOURS", "72")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "Remote", cfg.DefaultLocation)
	assert.Equal(t, 72, cfg.JWT.ExpirationHours)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{"missing database url", "DATABASE_URL"},
		{"missing gemini key", "GEMINI_API_KEY"},
		{"missing rapidapi key", "RAPIDAPI_KEY"},
		{"missing jwt secret", "JWT_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.unset)
		})
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}
