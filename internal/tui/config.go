package tui

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config controls where the terminal client connects.
type Config struct {
	BaseURL string        `env:"HACKATHON_TUI_BASE_URL" envDefault:"http://localhost:9080"`
	Timeout time.Duration `env:"HACKATHON_TUI_TIMEOUT"  envDefault:"10s"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("parse env: HACKATHON_TUI_TIMEOUT must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}
