package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"lincloud/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, "", cfg.Server.ApiKey)
	assert.True(t, cfg.Server.Browse)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT_SECONDS", "7")
	t.Setenv("SERVER_BROWSE", "false")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 7, cfg.Server.ShutdownTimeoutSeconds)
	assert.False(t, cfg.Server.Browse)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_API_KEY=secret\nLOG_FORMAT=json\n"), 0o600))
	// Overload writes into the process environment; restore it afterwards.
	t.Setenv("SERVER_API_KEY", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Server.ApiKey)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_UnreadableDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, config.EnvFile), 0o755))

	cfg, err := config.LoadConfig(dir)
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "failed to read")
}
