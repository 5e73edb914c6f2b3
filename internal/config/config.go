package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	// Token authenticates against the Bot API.
	Token string `envconfig:"BOT_TOKEN" required:"true"`

	// AdminChatID is the one chat granted elevated command access.
	// Required in default mode.
	AdminChatID int64 `envconfig:"ADMIN_CHAT_ID"`

	// UsersFile is the durable user store document.
	UsersFile string `envconfig:"USERS_FILE" default:"users.json"`

	// MaintenanceMode answers every update with a fixed reply and leaves
	// the store untouched.
	MaintenanceMode bool `envconfig:"MAINTENANCE_MODE" default:"false"`

	// PollTimeoutSeconds is the server-side long-poll window.
	PollTimeoutSeconds int `envconfig:"POLL_TIMEOUT_SECONDS" default:"30"`

	// MaxConcurrentUpdates caps in-flight units of work.
	MaxConcurrentUpdates int64 `envconfig:"MAX_CONCURRENT_UPDATES" default:"64"`

	// HealthAddr is the listen address of the health endpoint; empty
	// disables it.
	HealthAddr string `envconfig:"HEALTH_ADDR" default:":8080"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if !cfg.MaintenanceMode && cfg.AdminChatID == 0 {
		return nil, fmt.Errorf("ADMIN_CHAT_ID is required outside maintenance mode")
	}
	if cfg.PollTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("POLL_TIMEOUT_SECONDS must be > 0")
	}

	return &cfg, nil
}
