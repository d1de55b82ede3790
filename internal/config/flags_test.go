package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"--address", "http://localhost:5000",
		"--request-timeout", "15s",
		"--user-agent", "custom/1.0",
		"--log-level", "warn",
		"--log-file", "/tmp/client.log",
		"--config", "/etc/client.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "custom/1.0", cfg.App.UserAgent)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/client.log", cfg.Log.File)
	assert.Equal(t, "/etc/client.yaml", cfg.ConfigFilePath)
}

func TestParseFlags_ShortFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{"-a", "game.local:8080", "-c", "cfg.json"})
	require.NoError(t, err)

	assert.Equal(t, "game.local:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "cfg.json", cfg.ConfigFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := ParseFlags([]string{"--request-timeout", "soon"})
	require.Error(t, err)
}
