// Package config reads mnfnss settings from the environment. The command
// line is reserved for the emulator pass-through contract, so every
// orchestrator knob lives in an MNFNSS_* variable instead of a flag.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds all orchestrator settings.
type Config struct {
	// Emulator is the console binary to launch.
	Emulator string `env:"MNFNSS_MN" envDefault:"mn"`

	// RuntimeDir overrides where launch descriptors are written.
	RuntimeDir string `env:"MNFNSS_RUNTIME_DIR"`

	// PTY bridges the console through a pseudo-terminal instead of
	// handing it the orchestrator's own stdio.
	PTY bool `env:"MNFNSS_PTY" envDefault:"false"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"MNFNSS_LOG" envDefault:"warn"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Emulator == "" {
		return fmt.Errorf("MNFNSS_MN names no emulator binary")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid MNFNSS_LOG level %q (must be debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}
