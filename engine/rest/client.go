package rest

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/credential"
	"github.com/patchline/patchline/pkg/config"
	"github.com/patchline/patchline/pkg/logger"
)

// Config configures a client for one upstream API.
type Config struct {
	BaseURL      string
	AuthHeader   string
	AuthValue    string
	Timeout      time.Duration
	RetryCount   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	Debug        bool
}

// Client wraps a resty client pointed at a single upstream API.
type Client struct {
	client  *resty.Client
	baseURL string
}

// NewClient validates the configuration and builds the HTTP client.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if err := validateBaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	return &Client{
		client:  buildHTTPClient(cfg),
		baseURL: cfg.BaseURL,
	}, nil
}

// ForCredential builds a client for the given credential, taking timeout and
// retry settings from the configuration attached to the context. apiPath is
// appended to the credential's base URL unless already present.
func ForCredential(ctx context.Context, cred *credential.Credential, apiPath string) (*Client, error) {
	if cred == nil {
		return nil, fmt.Errorf("credential is required")
	}
	cfg := config.FromContext(ctx)
	header, value := cred.HeaderValue()
	logger.FromContext(ctx).Debug("building upstream client",
		"base_url", cred.JoinBaseURL(apiPath),
		"headers", core.RedactHeaders(map[string]string{header: value}),
	)
	return NewClient(&Config{
		BaseURL:      cred.JoinBaseURL(apiPath),
		AuthHeader:   header,
		AuthValue:    value,
		Timeout:      cfg.HTTP.Timeout,
		RetryCount:   cfg.HTTP.RetryCount,
		RetryWaitMin: cfg.HTTP.RetryWaitMin,
		RetryWaitMax: cfg.HTTP.RetryWaitMax,
		Debug:        cfg.Log.Level == "debug",
	})
}

// validateBaseURL ensures the base URL is absolute with an http(s) scheme.
func validateBaseURL(baseURL string) error {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if !parsedURL.IsAbs() {
		return fmt.Errorf("base URL must be absolute, got: %s", baseURL)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("base URL must have a host, got: %s", baseURL)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("base URL scheme must be http or https, got: %s", parsedURL.Scheme)
	}
	return nil
}

// buildHTTPClient creates and configures the HTTP client
func buildHTTPClient(cfg *Config) *resty.Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWaitMin).
		SetRetryMaxWaitTime(cfg.RetryWaitMax)

	if cfg.AuthHeader != "" {
		client.SetHeader(cfg.AuthHeader, cfg.AuthValue)
	}

	client.AddRetryCondition(retryCondition)

	if cfg.Debug {
		client.SetDebug(true)
	}

	return client
}

// retryCondition determines if a request should be retried
func retryCondition(r *resty.Response, err error) bool {
	// Retry on network errors
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	// Retry on server errors (5xx) and specific client errors
	code := r.StatusCode()
	return code >= 500 || code == 429 || code == 408
}

// Do performs a request and unmarshals a successful response into result.
func (c *Client) Do(ctx context.Context, method, path string, query map[string]string, body, result any) error {
	log := logger.FromContext(ctx)

	req := c.prepareRequest(ctx, query, body, result)

	resp, err := executeRequest(req, method, path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if err := handleResponse(resp); err != nil {
		return err
	}

	log.Debug("upstream request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode(),
		"request_id", req.Header.Get(requestIDHeader),
	)
	return nil
}

// Object performs a request expecting a single JSON object in response. An
// empty body yields a nil map.
func (c *Client) Object(ctx context.Context, method, path string, query map[string]string, body any) (map[string]any, error) {
	var result map[string]any
	if err := c.Do(ctx, method, path, query, body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// List performs a request expecting a JSON array in response.
func (c *Client) List(ctx context.Context, method, path string, query map[string]string, body any) ([]map[string]any, error) {
	var result []map[string]any
	if err := c.Do(ctx, method, path, query, body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

const requestIDHeader = "X-Request-ID"

// prepareRequest sets up the request with query, body and result
func (c *Client) prepareRequest(ctx context.Context, query map[string]string, body, result any) *resty.Request {
	req := c.client.R().SetContext(ctx)
	req.SetHeader(requestIDHeader, uuid.NewString())

	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	req.SetError(&APIError{})
	return req
}

// executeRequest performs the HTTP request
func executeRequest(req *resty.Request, method, path string) (*resty.Response, error) {
	switch method {
	case "GET":
		return req.Get(path)
	case "POST":
		return req.Post(path)
	case "PUT":
		return req.Put(path)
	case "PATCH":
		return req.Patch(path)
	case "DELETE":
		return req.Delete(path)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}
}
