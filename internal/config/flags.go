package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ParseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-a, --address          backend base URL (e.g. http://localhost:80)
//	    --request-timeout  per-request timeout (e.g. "10s"); 0 disables it
//	    --user-agent       User-Agent override
//	    --log-level        zerolog level name
//	    --log-file         log file path
//	-c, --config           JSON or YAML config file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		address        string
		requestTimeout time.Duration
		userAgent      string
		logLevel       string
		logFile        string
		configPath     string
	)

	fs := pflag.NewFlagSet("artist-guesser", pflag.ContinueOnError)
	fs.StringVarP(&address, "address", "a", "", "Backend base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.StringVar(&userAgent, "user-agent", "", "User-Agent header override")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVarP(&configPath, "config", "c", "", "JSON or YAML config file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			UserAgent: userAgent,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		ConfigFilePath: configPath,
	}, nil
}
