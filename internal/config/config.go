package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/kapu/character-lookup-go/internal/constants"
	"github.com/kapu/character-lookup-go/internal/util"
)

type Config struct {
	API     APIConfig     `envPrefix:"LOOKUP_API_"`
	Server  ServerConfig  `envPrefix:"LOOKUP_SERVER_"`
	Logging LoggingConfig `envPrefix:"LOG_"`
}

type APIConfig struct {
	BaseURL   string        `env:"BASE_URL"`
	Timeout   time.Duration `env:"TIMEOUT"`
	UserAgent string        `env:"USER_AGENT"`
}

type ServerConfig struct {
	Addr            string        `env:"ADDR"`
	SessionTTL      time.Duration `env:"SESSION_TTL"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

type LoggingConfig struct {
	Level string `env:"LEVEL"`
	File  string `env:"FILE"`
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   constants.APIConfig.DefaultBaseURL,
			Timeout:   constants.APIConfig.DefaultTimeout,
			UserAgent: constants.APIConfig.DefaultUserAgent,
		},
		Server: ServerConfig{
			Addr:            constants.ServerConfig.DefaultAddr,
			SessionTTL:      constants.ServerConfig.SessionTTL,
			ShutdownTimeout: constants.ServerConfig.ShutdownTimeout,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads .env (if present) and the process environment over the defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return fmt.Errorf("LOOKUP_API_BASE_URL is required")
	}
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("LOOKUP_API_BASE_URL is invalid: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("LOOKUP_API_BASE_URL must be an absolute http(s) URL")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("LOOKUP_API_TIMEOUT must not be negative")
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("LOOKUP_SERVER_ADDR is required")
	}
	if c.Server.SessionTTL <= 0 {
		return fmt.Errorf("LOOKUP_SERVER_SESSION_TTL must be positive")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("LOOKUP_SERVER_SHUTDOWN_TIMEOUT must not be negative")
	}
	if !util.IsKnownLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}
