package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const unknownError = "Unknown error"

// APIError represents an HTTP error response from the Hunter API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// NetworkError represents a transport-level failure: the request never
// produced an HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Reason returns the underlying failure reason, unwrapping the url.Error
// envelope net/http puts around transport failures.
func (e *NetworkError) Reason() string {
	var urlErr *url.Error
	if errors.As(e.Err, &urlErr) {
		return urlErr.Err.Error()
	}
	return e.Err.Error()
}

// DecodeError represents a 2xx response whose body was not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON response: %v", e.Err)
}

// Unwrap returns the underlying decode error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// parseErrorBody normalizes a non-2xx response body into an APIError.
//
// Hunter error payloads look like {"errors":[{"id":...,"code":...,"details":...}]}.
// The message joins each entry's details with "; "; entries that are not
// objects, or whose details is missing or not a string, contribute the
// literal "Unknown error". Anything that is not such a payload falls back
// to "HTTP <code> error".
func parseErrorBody(statusCode int, body []byte) *APIError {
	fallback := &APIError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d error", statusCode),
	}

	var payload struct {
		Errors []any `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}
	if payload.Errors == nil {
		return fallback
	}

	details := make([]string, 0, len(payload.Errors))
	for _, entry := range payload.Errors {
		obj, ok := entry.(map[string]any)
		if !ok {
			details = append(details, unknownError)
			continue
		}
		msg, ok := obj["details"].(string)
		if !ok {
			details = append(details, unknownError)
			continue
		}
		details = append(details, msg)
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    strings.Join(details, "; "),
	}
}
