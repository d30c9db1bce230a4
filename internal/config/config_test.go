package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://super-mario-bros-character-api.onrender.com/api/", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30*time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOOKUP_API_BASE_URL", "http://localhost:9000/api")
	t.Setenv("LOOKUP_API_TIMEOUT", "0s")
	t.Setenv("LOOKUP_SERVER_ADDR", "127.0.0.1:0")
	t.Setenv("LOOKUP_SERVER_SESSION_TTL", "5m")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "logs/test.log")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/api", cfg.API.BaseURL)
	assert.Zero(t, cfg.API.Timeout)
	assert.Equal(t, "127.0.0.1:0", cfg.Server.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "logs/test.log", cfg.Logging.File)
}

func TestLoadRejectsInvalidDuration(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOOKUP_API_TIMEOUT", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "parse env")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty base url":    func(c *Config) { c.API.BaseURL = "" },
		"relative base url": func(c *Config) { c.API.BaseURL = "/api" },
		"ftp base url":      func(c *Config) { c.API.BaseURL = "ftp://example.com/api" },
		"negative timeout":  func(c *Config) { c.API.Timeout = -time.Second },
		"empty addr":        func(c *Config) { c.Server.Addr = " " },
		"zero session ttl":  func(c *Config) { c.Server.SessionTTL = 0 },
		"unknown log level": func(c *Config) { c.Logging.Level = "verbose" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
