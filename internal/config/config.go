// Package config provides environment-based configuration for the server,
// plus authentication primitives (JWT and password hashing).
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the server configuration read from the environment.
type Config struct {
	Port            int
	DatabaseURL     string
	GeminiAPIKey    string
	RapidAPIKey     string
	DefaultLocation string

	JWT      *JWTConfig
	Password *PasswordConfig
}

// Load reads the configuration from environment variables. DATABASE_URL,
// GEMINI_API_KEY, RAPIDAPI_KEY and JWT_SECRET are required.
func Load() (*Config, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", portStr)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required but not set")
	}

	rapidKey := os.Getenv("RAPIDAPI_KEY")
	if rapidKey == "" {
		return nil, fmt.Errorf("RAPIDAPI_KEY is required but not set")
	}

	jwtConfig, err := NewJWTConfig()
	if err != nil {
		return nil, err
	}

	passwordConfig, err := NewPasswordConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:            port,
		DatabaseURL:     databaseURL,
		GeminiAPIKey:    geminiKey,
		RapidAPIKey:     rapidKey,
		DefaultLocation: os.Getenv("DEFAULT_JOB_LOCATION"), // empty is fine
		JWT:             jwtConfig,
		Password:        passwordConfig,
	}, nil
}
