package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempFile(t, "client.json", `{
		"app": {"user_agent": "json-agent"},
		"adapter": {"http_address": "http://json:8080", "request_timeout": "20s"},
		"log": {"level": "info", "file": "/var/log/guesser.log"}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "json-agent", cfg.App.UserAgent)
	assert.Equal(t, "http://json:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/var/log/guesser.log", cfg.Log.File)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempFile(t, "client.yml", `
app:
  user_agent: yaml-agent
adapter:
  http_address: http://yaml:8080
  request_timeout: 1m
log:
  level: error
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml-agent", cfg.App.UserAgent)
	assert.Equal(t, "http://yaml:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestParseFile_YAMLNumericTimeout(t *testing.T) {
	path := writeTempFile(t, "client.yaml", "adapter:\n  request_timeout: 1000\n")

	cfg, err := parseFile(path)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(1000), cfg.Adapter.RequestTimeout)
}

func TestParseFile_UnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, "client.toml", "address = 1")

	_, err := parseFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedConfigFile)
}

func TestParseFile_InvalidJSON(t *testing.T) {
	path := writeTempFile(t, "client.json", "{not json")

	_, err := parseFile(path)
	assert.Error(t, err)
}

func TestParseFile_InvalidYAMLDuration(t *testing.T) {
	path := writeTempFile(t, "client.yaml", "adapter:\n  request_timeout: later\n")

	_, err := parseFile(path)
	assert.Error(t, err)
}

func TestDuration_JSONRoundTrip(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"1h30m0s"`, string(out))
}

func TestDuration_JSONNumber(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`5000000000`), &d))
	assert.Equal(t, 5*time.Second, time.Duration(d))
}
