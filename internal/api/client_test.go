package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("requires API key", func(t *testing.T) {
		_, err := New("")
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		client, err := New("test-key")
		require.NoError(t, err)

		assert.Equal(t, DefaultBaseURL, client.baseURL)
		assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
	})

	t.Run("options", func(t *testing.T) {
		client, err := New("test-key", WithBaseURL("http://localhost:1234"))
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:1234", client.baseURL)
	})
}

func TestGet_RequestShape(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := New("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "domain-search", []Param{
		String("domain", "example.com"),
		String("company", ""),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/domain-search", captured.URL.Path)
	assert.Equal(t, UserAgent, captured.Header.Get("User-Agent"))
	assert.Equal(t, "application/json", captured.Header.Get("Accept"))

	query := captured.URL.Query()
	assert.Equal(t, "example.com", query.Get("domain"))
	assert.Equal(t, "test-key", query.Get("api_key"))
	assert.NotContains(t, query, "company")
}

func TestGet_APIKeyCannotBeShadowed(t *testing.T) {
	var sentKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sentKey = r.URL.Query().Get("api_key")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := New("real-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "account", []Param{
		String("api_key", "spoofed-key"),
	})
	require.NoError(t, err)

	assert.Equal(t, "real-key", sentKey)
}

func TestGet_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"email":"john@example.com","score":85}}`))
	}))
	defer server.Close()

	client, err := New("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	result, err := client.Get(context.Background(), "email-finder", nil)
	require.NoError(t, err)

	data, ok := result["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "john@example.com", data["email"])
	assert.Equal(t, float64(85), data["score"])
}

func TestGet_HTTPError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "errors array",
			status:      401,
			body:        `{"errors":[{"details":"Invalid API key"}]}`,
			wantMessage: "Invalid API key",
		},
		{
			name:        "multiple entries",
			status:      400,
			body:        `{"errors":[{"details":"Bad domain"},{"details":"Bad type"}]}`,
			wantMessage: "Bad domain; Bad type",
		},
		{
			name:        "non-JSON body",
			status:      502,
			body:        `<html>bad gateway</html>`,
			wantMessage: "HTTP 502 error",
		},
		{
			name:        "JSON without errors list",
			status:      404,
			body:        `{"message":"gone"}`,
			wantMessage: "HTTP 404 error",
		},
		{
			name:        "errors is not a list",
			status:      422,
			body:        `{"errors":"nope"}`,
			wantMessage: "HTTP 422 error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := New("test-key", WithBaseURL(server.URL))
			require.NoError(t, err)

			_, err = client.Get(context.Background(), "domain-search", nil)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestParseErrorBody_UnknownErrorSubstitution(t *testing.T) {
	body := []byte(`{"errors":[42,{"code":7},{"details":null},{"details":["x"]},{"details":"Real message"}]}`)

	apiErr := parseErrorBody(400, body)

	assert.Equal(t, "Unknown error; Unknown error; Unknown error; Unknown error; Real message", apiErr.Message)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestGet_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client, err := New("test-key", WithBaseURL(serverURL))
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "account", nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotEmpty(t, netErr.Reason())
}

func TestNetworkError_Reason(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := &NetworkError{Err: &url.Error{Op: "Get", URL: "http://example.com", Err: cause}}

	// The url.Error envelope is stripped so the reason reads like the
	// underlying failure, not the full request description.
	assert.Equal(t, "connection refused", wrapped.Reason())

	bare := &NetworkError{Err: cause}
	assert.Equal(t, "connection refused", bare.Reason())
}

func TestGet_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":`))
	}))
	defer server.Close()

	client, err := New("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "account", nil)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Error(t, decErr.Unwrap())
}

func TestGet_DebugLogging(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	client, err := New("secret-key", WithBaseURL(server.URL), WithLogger(logger))
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "email-verifier", nil)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "email-verifier")
	assert.NotContains(t, buf.String(), "secret-key", "debug output must not leak the API key")
}
