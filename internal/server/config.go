package server

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config validation errors
var (
	ErrInvalidListenAddr      = errors.New("listen_addr cannot be empty")
	ErrInvalidReadTimeout     = errors.New("read_timeout must be positive")
	ErrInvalidWriteTimeout    = errors.New("write_timeout must be positive")
	ErrInvalidShutdownTimeout = errors.New("shutdown_timeout must be positive")
)

// Config holds the HTTP server settings, sourced from REDISCALC_*
// environment variables.
type Config struct {
	ListenAddr      string        `envconfig:"LISTEN_ADDR" default:":8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// Load reads the server configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("rediscalc", &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration and returns an error if invalid.
func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return ErrInvalidListenAddr
	}
	if c.ReadTimeout <= 0 {
		return ErrInvalidReadTimeout
	}
	if c.WriteTimeout <= 0 {
		return ErrInvalidWriteTimeout
	}
	if c.ShutdownTimeout <= 0 {
		return ErrInvalidShutdownTimeout
	}
	return nil
}
