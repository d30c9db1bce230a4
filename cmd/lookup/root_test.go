package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kapu/character-lookup-go/internal/config"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := NewRootCmd("test")

	for _, name := range []string{"search", "tui", "serve"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	assert.NotNil(t, root.PersistentFlags().Lookup("base-url"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
}

func TestApplyFlagOverrides(t *testing.T) {
	root := NewRootCmd("test")
	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)

	require.NoError(t, serve.ParseFlags([]string{
		"--base-url", "http://localhost:9999/api/",
		"--log-level", "debug",
		"--addr", ":9090",
	}))

	cfg := config.Default()
	require.NoError(t, applyFlagOverrides(serve, cfg))

	assert.Equal(t, "http://localhost:9999/api/", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ":9090", cfg.Server.Addr)
}

func TestApplyFlagOverridesRejectsInvalidValues(t *testing.T) {
	root := NewRootCmd("test")
	search, _, err := root.Find([]string{"search"})
	require.NoError(t, err)

	require.NoError(t, search.ParseFlags([]string{"--base-url", "ftp://example.com"}))

	err = applyFlagOverrides(search, config.Default())
	assert.Error(t, err)
}
