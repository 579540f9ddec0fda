// Package llm provides a client for the deployed language-model endpoint
// with centralized auth, error handling, and debug logging.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kashyap-bhatt15/eval-demo/logger"
)

// Sentinel errors so callers can classify endpoint failures with errors.Is.
var (
	// ErrStatus indicates the endpoint responded with a non-success status.
	ErrStatus = errors.New("LLM API error")
	// ErrMissingResponse indicates the body lacked the 'response' key.
	ErrMissingResponse = errors.New("LLM API response missing 'response' key")
	// ErrMalformedResponse indicates the body was not parseable as JSON.
	ErrMalformedResponse = errors.New("LLM API response is not valid JSON")
)

const defaultTimeout = 30 * time.Second

// Client calls the language-model endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets a bearer token sent with every request.
// The demo endpoint does not require one; deployed endpoints may.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithLogger sets a custom logger for the client.
// If not provided, no logging will occur.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		c.logger = log
	}
}

// WithHTTPClient replaces the underlying HTTP client.
// Useful for tests or custom transport configuration.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the endpoint at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is required")
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// generateResponse is the endpoint's success body. Status and Model are
// informational; only Response is required.
type generateResponse struct {
	Response *string `json:"response"`
	Status   string  `json:"status"`
	Model    string  `json:"model"`
}

// Generate sends the prompt to the endpoint's /llm path and returns the
// model's text output. Failures are distinguishable with errors.Is against
// the package sentinels; anything else is a transport fault.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	params := url.Values{}
	params.Set("prompt", prompt)
	fullURL := c.baseURL + "/llm?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	c.logger.Debug("llm request", "url", c.baseURL+"/llm", "prompt_len", len(prompt))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("llm request failed",
			"error", err,
			"duration", time.Since(start))
		return "", fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	c.logger.Debug("llm response",
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	var body generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if body.Response == nil {
		return "", ErrMissingResponse
	}

	return *body.Response, nil
}
