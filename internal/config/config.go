package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the process settings read from the environment. Command
// flags override these values when set.
type Config struct {
	Addr        string        `env:"TURING_ADDR" envDefault:":8080"`
	RedisAddr   string        `env:"TURING_REDIS_ADDR"`
	RedisPrefix string        `env:"TURING_REDIS_PREFIX" envDefault:"turing:run:"`
	StoreDir    string        `env:"TURING_STORE_DIR"`
	ResultTTL   time.Duration `env:"TURING_RESULT_TTL" envDefault:"0s"`
	StepLimit   int           `env:"TURING_STEP_LIMIT" envDefault:"1000000"`
	RunTimeout  time.Duration `env:"TURING_RUN_TIMEOUT" envDefault:"30s"`
	LogLevel    string        `env:"TURING_LOG_LEVEL" envDefault:"info"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the server cannot run with. A server never runs
// without a step cap, so StepLimit must be positive.
func (c Config) Validate() error {
	if c.StepLimit <= 0 {
		return fmt.Errorf("TURING_STEP_LIMIT must be positive, got %d", c.StepLimit)
	}
	if c.RunTimeout < 0 {
		return fmt.Errorf("TURING_RUN_TIMEOUT must not be negative, got %s", c.RunTimeout)
	}
	if c.ResultTTL < 0 {
		return fmt.Errorf("TURING_RESULT_TTL must not be negative, got %s", c.ResultTTL)
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
