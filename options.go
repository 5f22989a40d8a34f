package hunter

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     zerolog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. Useful for testing against a local
// server; the default is the public Hunter v2 endpoint.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. Timeout and transport
// configuration belong to the HTTP client, not to this library.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout on the default HTTP client.
// Ignored when WithHTTPClient is also given.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets a logger for debug output. The client never logs
// failures; errors are returned to the caller.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
