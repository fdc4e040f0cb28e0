// Package config provides centralized configuration loaded from environment
// variables. Shared by cmd/api, cmd/chat, and cmd/cli.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// League constants — api-sports basketball uses numeric league ids
// --------------------------------------------------------------------------

// NBALeagueID is the api-sports league id for the NBA.
const NBALeagueID = 12

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Stats API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// Chat (mediator) server
	ChatHost string
	ChatPort int

	// CORS
	CORSAllowOrigins []string

	// Rate limiting (stats API only)
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Sports data provider (api-sports basketball)
	APISportsKey     string
	APISportsBaseURL string
	APISportsRPM     int // requests per minute budget

	// Mediator -> stats API
	BackendBaseURL string
	BackendTimeout time.Duration

	// Oracle (language model)
	OracleProvider  string // "anthropic" or "openai"
	AnthropicAPIKey string
	AnthropicModel  string
	OpenAIAPIKey    string
	OpenAIModel     string
	OracleTimeout   time.Duration

	// Season fallback when neither the user nor the caller supplies one.
	CurrentSeason string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	return &Config{
		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		ChatHost: envOr("CHAT_HOST", "0.0.0.0"),
		ChatPort: envInt("CHAT_PORT", 8080),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{"*"}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		APISportsKey:     envOr("APISPORTS_KEY", envOr("RAPIDAPI_KEY", "")),
		APISportsBaseURL: envOr("APISPORTS_BASE_URL", "https://v1.basketball.api-sports.io"),
		APISportsRPM:     envInt("APISPORTS_RPM", 300),

		BackendBaseURL: strings.TrimRight(envOr("BACKEND_BASE_URL", "http://localhost:8000"), "/"),
		BackendTimeout: envDuration("BACKEND_TIMEOUT", 15*time.Second),

		OracleProvider:  strings.ToLower(envOr("ORACLE_PROVIDER", "anthropic")),
		AnthropicAPIKey: envOr("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  envOr("ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
		OpenAIAPIKey:    envOr("OPENAI_API_KEY", ""),
		OpenAIModel:     envOr("OPENAI_MODEL", "gpt-4o-mini"),
		OracleTimeout:   envDuration("ORACLE_TIMEOUT", 30*time.Second),

		CurrentSeason: envOr("CURRENT_SEASON", "2023-2024"),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
