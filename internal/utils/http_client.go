// Package utils provides general-purpose helpers shared by the client
// packages: the HTTP client wrapper and request identifier generation.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient.
//
// The backend keeps the game session in a cookie; resty gives every client
// its own cookie jar, so requests made through one client share that
// session. Each call returns an independent client with its own jar,
// connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
