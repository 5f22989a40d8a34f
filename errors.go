package hunter

import (
	"errors"
	"fmt"

	"github.com/obaidrock78/hunter-io-client/internal/api"
)

// Sentinel errors for errors.Is() checks. The ErrMissing* values are
// precondition failures: they are returned before any network activity.
var (
	// ErrMissingAPIKey is returned when no API key is provided and none is
	// found in the environment.
	ErrMissingAPIKey = errors.New("API key is required (set HUNTER_API_KEY)")

	// ErrMissingDomainOrCompany is returned when an operation needs a target
	// organization and neither domain nor company is provided.
	ErrMissingDomainOrCompany = errors.New("either domain or company must be provided")

	// ErrMissingPersonName is returned when FindEmail is called without a
	// full name and without both a first and a last name.
	ErrMissingPersonName = errors.New("either full name or both first and last name must be provided")

	// ErrMissingEmail is returned when VerifyEmail is called with an empty address.
	ErrMissingEmail = errors.New("email address is required")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents a failure reported after a request was attempted:
// an HTTP error response, a transport failure, or a malformed success body.
// StatusCode is 0 when no HTTP response was received.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 && e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Unwrap returns the underlying cause, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// IsInvalidArgument reports whether err is a precondition failure: a
// missing or empty required parameter, detected before any network call.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrMissingAPIKey) ||
		errors.Is(err, ErrMissingDomainOrCompany) ||
		errors.Is(err, ErrMissingPersonName) ||
		errors.Is(err, ErrMissingEmail)
}

// wrapError converts internal transport errors to the public APIError
// shape. Validation errors never pass through here.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &APIError{
			Message: "Network error: " + netErr.Reason(),
			Err:     netErr.Unwrap(),
		}
	}

	var decErr *api.DecodeError
	if errors.As(err, &decErr) {
		return &APIError{
			Message: "Invalid JSON response",
			Err:     decErr.Unwrap(),
		}
	}

	return err
}
