package config

import "errors"

// Errors returned while building or validating the configuration.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (missing backend address or negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrUnsupportedConfigFile indicates a config file extension other than
	// .json, .yaml or .yml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
