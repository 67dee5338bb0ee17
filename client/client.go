// Package client provides the HTTP client for the Meeting Summarizer backend API.
// It handles request construction, authentication headers, and normalizing
// backend failures into a single error type.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/otherjamesbrown/meetsum-cli/config"
	mserrors "github.com/otherjamesbrown/meetsum-cli/pkg/errors"
)

// Default client settings.
const (
	DefaultTimeout   = 2 * time.Minute
	DefaultUserAgent = "meetsum-cli"
)

// APIError is the normalized error for any non-success backend response.
// Message prefers the server-supplied "message" or "error" JSON field and
// falls back to the HTTP status text, so callers see one error shape
// regardless of the backend's error format.
type APIError struct {
	// Status is the HTTP status code of the failed response.
	Status int

	// Message is the normalized human-readable failure message.
	Message string
}

// Error returns the normalized failure message.
func (e *APIError) Error() string {
	return e.Message
}

// Is supports errors.Is checks against the domain's ErrNotFound sentinel.
func (e *APIError) Is(target error) bool {
	return target == mserrors.ErrNotFound && e.Status == http.StatusNotFound
}

// Options configures the APIClient behavior.
type Options struct {
	// Timeout is the per-request timeout. Zero means DefaultTimeout.
	Timeout time.Duration

	// Token is an optional bearer token sent as the Authorization header.
	Token string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPClient overrides the underlying transport. Mainly for tests.
	HTTPClient *http.Client
}

// APIClient issues REST calls against the summarizer backend.
// All methods translate one workflow operation into exactly one HTTP
// request and normalize failures into *APIError.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
	userAgent  string
}

// New creates a new APIClient for the given base URL (including the API
// prefix, e.g. http://localhost:5000/api).
func New(baseURL string, opts *Options) *APIClient {
	if opts == nil {
		opts = &Options{}
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		token:      opts.Token,
		userAgent:  userAgent,
	}
}

// NewFromConfig creates an APIClient from CLI configuration.
// This is the canonical way to create a client from CLI commands.
func NewFromConfig(cfg *config.CLIConfig, token string) *APIClient {
	return New(cfg.APIURL, &Options{
		Timeout: cfg.Timeout,
		Token:   token,
	})
}

// BaseURL returns the configured base URL.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out (which may be nil for empty responses).
func (c *APIClient) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send applies common headers, executes the request, and decodes the result.
func (c *APIClient) send(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}

	return nil
}

// decodeAPIError builds the normalized *APIError from a failure response.
// The body is tried as JSON with a "message" or "error" field; if neither
// is present or the body is not JSON, the HTTP status text is used.
func decodeAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			message = payload.Message
		case payload.Error != "":
			message = payload.Error
		}
	}
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}

	return &APIError{Status: status, Message: message}
}

// pathEscape escapes a path segment such as a meeting ID.
func pathEscape(segment string) string {
	return url.PathEscape(segment)
}
