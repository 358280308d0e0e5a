// ABOUTME: Centralized configuration for the eventscout service
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the recommendation service
type Config struct {
	// Catalog settings
	CatalogPath string

	// HTTP settings
	Host           string
	Port           int
	AllowedOrigins []string

	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		CatalogPath:    getEnv("EVENTSCOUT_CATALOG", "events.xlsx"),
		Host:           getEnv("EVENTSCOUT_HOST", "localhost"),
		Port:           getEnvInt("EVENTSCOUT_PORT", 8080),
		AllowedOrigins: getEnvList("EVENTSCOUT_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		ChatModel:      getEnv("EVENTSCOUT_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel: getEnv("EVENTSCOUT_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:        getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:     getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.CatalogPath == "" {
		return fmt.Errorf("EVENTSCOUT_CATALOG must not be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("EVENTSCOUT_PORT must be 1-65535, got %d", c.Port)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("EVENTSCOUT_ALLOWED_ORIGINS must list at least one origin")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

// getEnvList splits a comma-separated env var, dropping empty entries
func getEnvList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
