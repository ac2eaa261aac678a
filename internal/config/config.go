// Package config builds the process-wide configuration once at startup. The
// API key is read here and nowhere else; business logic never touches the
// environment.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Credential for the OpenAI API. Checked before any other work.
	APIKey string `envconfig:"OPENAI_API_KEY"`

	// Override the API endpoint, e.g. for a proxy or a test server.
	BaseURL string `envconfig:"OPENAI_BASE_URL" default:""`

	// Model used by the chat command when none is given on the command line.
	ChatModel string `envconfig:"OPENAI_CHAT_MODEL" default:"gpt-3.5-turbo"`

	// Per-run deadline for a whole command. Zero means none.
	Timeout time.Duration `envconfig:"OPENAI_TIMEOUT" default:"0"`

	// Diagnostics logging.
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty bool   `envconfig:"LOG_PRETTY" default:"true"`
}

// Load reads configuration from a .env file (when present) and the
// environment. A missing API key is fatal here, before any command runs.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	return &cfg, nil
}
