package hunter

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/obaidrock78/hunter-io-client/internal/api"
)

// EnvAPIKey is the environment variable consulted when New is called
// without an explicit API key.
const EnvAPIKey = "HUNTER_API_KEY"

// Result is a decoded Hunter API response, relayed verbatim.
type Result = api.Result

// Client is the Hunter.io API client. It holds the resolved API key and is
// immutable after construction; it is safe for concurrent use.
type Client struct {
	apiClient *api.Client
}

// New creates a new Hunter client. If apiKey is empty, the HUNTER_API_KEY
// environment variable is used; if neither yields a key, New returns
// ErrMissingAPIKey. No network call is made at construction.
func New(apiKey string, opts ...Option) (*Client, error) {
	key, err := resolveAPIKey(apiKey)
	if err != nil {
		return nil, err
	}

	cfg := &clientConfig{
		baseURL: api.DefaultBaseURL,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithLogger(cfg.logger),
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}

	apiClient, err := api.New(key, apiOpts...)
	if err != nil {
		return nil, err
	}

	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return &Client{apiClient: apiClient}, nil
}

// resolveAPIKey resolves the key from the explicit argument, then the
// environment. Construction fails when neither source yields a value.
func resolveAPIKey(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}
	return "", ErrMissingAPIKey
}

// DomainSearchParams are the parameters for DomainSearch. At least one of
// Domain or Company is required; everything else is optional, with the Go
// zero value meaning "not set".
type DomainSearchParams struct {
	Domain     string
	Company    string
	Limit      int
	Offset     int
	Type       string // "personal" or "generic"
	Seniority  string
	Department string
}

// FindEmailParams are the parameters for FindEmail. At least one of Domain
// or Company is required, plus either FullName or both FirstName and
// LastName.
type FindEmailParams struct {
	Domain      string
	Company     string
	FirstName   string
	LastName    string
	FullName    string
	MaxDuration int // seconds the API may spend searching
}

// EmailCountParams are the parameters for EmailCount. At least one of
// Domain or Company is required.
type EmailCountParams struct {
	Domain  string
	Company string
	Type    string // "personal" or "generic"
}

// DomainSearch lists the email addresses Hunter has found for a domain or
// company.
func (c *Client) DomainSearch(ctx context.Context, params DomainSearchParams) (Result, error) {
	if err := requireDomainOrCompany(params.Domain, params.Company); err != nil {
		return nil, err
	}
	result, err := c.apiClient.Get(ctx, "domain-search", []api.Param{
		api.String("domain", params.Domain),
		api.String("company", params.Company),
		api.Int("limit", params.Limit),
		api.Int("offset", params.Offset),
		api.String("type", params.Type),
		api.String("seniority", params.Seniority),
		api.String("department", params.Department),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// FindEmail returns the most likely email address for a person at a domain
// or company.
func (c *Client) FindEmail(ctx context.Context, params FindEmailParams) (Result, error) {
	if err := requireDomainOrCompany(params.Domain, params.Company); err != nil {
		return nil, err
	}
	if err := requireFullOrSplitName(params.FullName, params.FirstName, params.LastName); err != nil {
		return nil, err
	}
	result, err := c.apiClient.Get(ctx, "email-finder", []api.Param{
		api.String("domain", params.Domain),
		api.String("company", params.Company),
		api.String("first_name", params.FirstName),
		api.String("last_name", params.LastName),
		api.String("full_name", params.FullName),
		api.Int("max_duration", params.MaxDuration),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// VerifyEmail checks the deliverability of an email address.
func (c *Client) VerifyEmail(ctx context.Context, email string) (Result, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	result, err := c.apiClient.Get(ctx, "email-verifier", []api.Param{
		api.String("email", email),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// EmailCount returns how many email addresses Hunter has for a domain or
// company. This endpoint does not consume requests from the account quota.
func (c *Client) EmailCount(ctx context.Context, params EmailCountParams) (Result, error) {
	if err := requireDomainOrCompany(params.Domain, params.Company); err != nil {
		return nil, err
	}
	result, err := c.apiClient.Get(ctx, "email-count", []api.Param{
		api.String("domain", params.Domain),
		api.String("company", params.Company),
		api.String("type", params.Type),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Account returns information about the account tied to the API key. It
// doubles as a key check: an invalid key fails with ErrUnauthorized.
func (c *Client) Account(ctx context.Context) (Result, error) {
	result, err := c.apiClient.Get(ctx, "account", nil)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

func requireDomainOrCompany(domain, company string) error {
	if domain == "" && company == "" {
		return ErrMissingDomainOrCompany
	}
	return nil
}

func requireFullOrSplitName(fullName, firstName, lastName string) error {
	if fullName != "" {
		return nil
	}
	if firstName != "" && lastName != "" {
		return nil
	}
	return ErrMissingPersonName
}
