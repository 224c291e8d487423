// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RateLimitConfig provides settings for the per-IP rate limiter.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// AutomationConfig provides the tunable policy constants of the lead
// automation engine. Zero values mean "use the engine default".
type AutomationConfig interface {
	GetFirstContactSLA() time.Duration
	GetFollowUpSLA() time.Duration
	GetDuplicateWindow() time.Duration
	GetNameSimilarityThreshold() float64
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                     string
	HTTPAddr                string
	CORSAllowAll            bool
	CORSOrigins             []string
	CORSAllowCreds          bool
	RateLimitRPS            float64
	RateLimitBurst          int
	FirstContactSLA         time.Duration
	FollowUpSLA             time.Duration
	DuplicateWindow         time.Duration
	NameSimilarityThreshold float64
}

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RateLimitConfig implementation
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// AutomationConfig implementation
func (c *Config) GetFirstContactSLA() time.Duration    { return c.FirstContactSLA }
func (c *Config) GetFollowUpSLA() time.Duration        { return c.FollowUpSLA }
func (c *Config) GetDuplicateWindow() time.Duration    { return c.DuplicateWindow }
func (c *Config) GetNameSimilarityThreshold() float64  { return c.NameSimilarityThreshold }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                     getEnv("APP_ENV", "development"),
		HTTPAddr:                getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:            corsAllowAll,
		CORSOrigins:             corsOrigins,
		CORSAllowCreds:          strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RateLimitRPS:            mustFloat(getEnv("RATE_LIMIT_RPS", "50")),
		RateLimitBurst:          mustInt(getEnv("RATE_LIMIT_BURST", "100")),
		FirstContactSLA:         mustDuration(getEnv("FIRST_CONTACT_SLA", "")),
		FollowUpSLA:             mustDuration(getEnv("FOLLOW_UP_SLA", "")),
		DuplicateWindow:         mustDuration(getEnv("DUPLICATE_WINDOW", "")),
		NameSimilarityThreshold: mustFloat(getEnv("NAME_SIMILARITY_THRESHOLD", "0")),
	}

	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.NameSimilarityThreshold < 0 || cfg.NameSimilarityThreshold > 1 {
		return nil, fmt.Errorf("NAME_SIMILARITY_THRESHOLD must be between 0 and 1")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
