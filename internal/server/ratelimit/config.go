package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific
// endpoint. A Limit of 0 means unlimited.
type EndpointConfig struct {
	Path   string        // endpoint path pattern, trailing "/" enables prefix matching
	Method string        // HTTP method
	Limit  int           // maximum requests per window
	Window time.Duration // time window
	Burst  int           // burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(getEnvString("RATE_LIMIT_WHITELIST", "")),
		Blacklist:       parseIPList(getEnvString("RATE_LIMIT_BLACKLIST", "")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific
// configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: model and upstream-API backed operations (strictest)
		{Path: "/v1/analyzer", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
		{Path: "/v1/jobs/search", Method: "POST", Limit: 60, Window: time.Hour, Burst: 10},
		{Path: "/v1/chat/messages", Method: "POST", Limit: 120, Window: time.Hour, Burst: 10},

		// Tier 2: auth endpoints (brute-force protection)
		{Path: "/v1/auth/", Method: "POST", Limit: 30, Window: time.Minute, Burst: 10},

		// Tier 3: write operations
		{Path: "/v1/resume", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 20},
		{Path: "/v1/resume", Method: "PATCH", Limit: 100, Window: time.Minute, Burst: 20},

		// Reads fall through to the global default.
	}
}

func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
