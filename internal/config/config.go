// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Default values applied before any other source is read.
const (
	DefaultHTTPAddress = "http://localhost:80"
	DefaultLogLevel    = "debug"
	DefaultDotEnvPath  = ".env"
)

// StructuredConfig is the top-level configuration container for the client.
// It is populated by merging values from defaults, environment variables,
// command-line flags, and an optional JSON/YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. The format is chosen by the file extension.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// UserAgent overrides the User-Agent header sent to the backend.
	// When empty the build-derived value is used.
	// Env: APP_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Adapter holds configuration for the backend HTTP adapter.
type Adapter struct {
	// HTTPAddress is the base URL of the game backend
	// (e.g. "http://localhost:80", "game.example.com:8080").
	// A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout limits a single request. Zero means no client-imposed
	// timeout; the transport defaults apply.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the path of the log file. Empty means "logs" next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources using the process arguments. Returns the merged *StructuredConfig
// or an error if any source fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(DefaultDotEnvPath).
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		build()
}
