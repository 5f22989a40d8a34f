package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the Hunter v2 API base URL.
	DefaultBaseURL = "https://api.hunter.io/v2"
	// UserAgent identifies this client on every request.
	UserAgent = "hunter-go-client/1.0"

	defaultTimeout = 30 * time.Second
)

// Result is a decoded Hunter API response. The response shape is not
// validated by this layer; it is relayed to the caller as-is.
type Result map[string]any

// Client is the HTTP transport for the Hunter API. It serializes query
// parameters, appends the API key, and normalizes the outcome of each call
// into a Result or one of the error types in this package.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Get issues a GET request against the given endpoint. Absent parameters
// are dropped from the query string and the api_key parameter is set last,
// so caller input can never shadow the configured key.
func (c *Client) Get(ctx context.Context, endpoint string, params []Param) (Result, error) {
	query := compactQuery(params)
	query.Set("api_key", c.apiKey)

	requestURL := c.baseURL + "/" + endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("endpoint", endpoint).Msg("GET request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseErrorBody(resp.StatusCode, body)
		c.logger.Debug().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("request failed")
		return nil, apiErr
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return result, nil
}
