package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the HomeBrain service.
// Environment variables are parsed from the HOMEBRAIN_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Storage: sqlite (local) or postgres. Empty driver with no DSN
	// runs the service with an unavailable store (reads degrade to
	// empty collections, writes fail).
	DBDriver    string `envconfig:"DB_DRIVER" default:"auto"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:""`

	// LLM / speech-to-text models
	ChatModel       string `envconfig:"CHAT_MODEL" default:"gpt-4o-mini"`
	TranscribeModel string `envconfig:"TRANSCRIBE_MODEL" default:"whisper-1"`

	// Timeout applied around every LLM and transcription call.
	LLMTimeoutSeconds int `envconfig:"LLM_TIMEOUT_SECONDS" default:"30"`

	// Chat history windows: live context vs. history display.
	ChatContextLimit int `envconfig:"CHAT_CONTEXT_LIMIT" default:"10"`
	ChatHistoryLimit int `envconfig:"CHAT_HISTORY_LIMIT" default:"50"`

	// Scheduled summaries (cron specs); empty disables a job.
	DailyBriefSpec  string `envconfig:"DAILY_BRIEF_SPEC" default:"0 7 * * *"`
	WeeklyRecapSpec string `envconfig:"WEEKLY_RECAP_SPEC" default:"0 18 * * 0"`
}

// ResolveDefaults validates DBDriver and derives it when set to "auto":
// postgres when a DSN is present, sqlite when a path is present,
// otherwise the unavailable store.
func (c *Config) ResolveDefaults() error {
	if c.DBDriver == "" || c.DBDriver == "auto" {
		switch {
		case c.PostgresDSN != "":
			c.DBDriver = "postgres"
		case c.SQLitePath != "":
			c.DBDriver = "sqlite"
		default:
			c.DBDriver = "none"
		}
	}

	allowed := map[string]bool{"postgres": true, "sqlite": true, "none": true}
	if !allowed[c.DBDriver] {
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.DBDriver == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("HOMEBRAIN_POSTGRES_DSN is required when DB_DRIVER=postgres")
	}
	if c.DBDriver == "sqlite" && c.SQLitePath == "" {
		return fmt.Errorf("HOMEBRAIN_SQLITE_PATH is required when DB_DRIVER=sqlite")
	}
	if c.ChatContextLimit <= 0 || c.ChatHistoryLimit <= 0 {
		return fmt.Errorf("chat history limits must be positive")
	}
	return nil
}

// New creates a new Config by parsing HOMEBRAIN_-prefixed environment
// variables and resolving defaults.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("HOMEBRAIN", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
