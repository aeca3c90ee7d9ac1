package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/booldag/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.True(t, cfg.ParserStrict)
	require.Equal(t, "disabled", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "booldag.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parser:\n  strict: false\nlog:\n  level: debug\n  format: console\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.False(t, cfg.ParserStrict)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "booldag.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: xml\n"), 0o644))

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidLogFormat)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BOOLDAG_LOG_LEVEL", "warn")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestConfig_Logger(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	_, err = cfg.Logger()
	require.NoError(t, err)

	cfg.LogLevel = "info"
	logger, err := cfg.Logger()
	require.NoError(t, err)
	require.Equal(t, "info", logger.GetLevel().String())
}
