// Package client talks to the password generator backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vaultpass/passgen-go/internal/model"
)

const (
	generatePath = "/generate_password"
	strengthPath = "/check_strength"

	DefaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

// ErrMalformedResponse is returned when the backend answers with a body that
// is not JSON or lacks the fields of a successful response.
var ErrMalformedResponse = errors.New("malformed response from server")

// APIError is an error reported by the backend, either through the error
// field of the body or through a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is a JSON client for the generate and strength endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GeneratePassword requests a new password.
func (c *Client) GeneratePassword(ctx context.Context, req model.GenerateRequest) (string, error) {
	var resp struct {
		Password *string `json:"password"`
		model.ErrorResponse
	}
	if err := c.post(ctx, generatePath, req, &resp, &resp.ErrorResponse); err != nil {
		return "", err
	}
	switch {
	case resp.Password == nil:
		return "", fmt.Errorf("%w: missing password", ErrMalformedResponse)
	case *resp.Password == "":
		return "", fmt.Errorf("%w: empty password", ErrMalformedResponse)
	}
	return *resp.Password, nil
}

// CheckStrength requests a strength evaluation of password.
func (c *Client) CheckStrength(ctx context.Context, password string) (model.StrengthResponse, error) {
	var resp struct {
		model.StrengthResponse
		model.ErrorResponse
	}
	if err := c.post(ctx, strengthPath, model.StrengthRequest{Password: password}, &resp, &resp.ErrorResponse); err != nil {
		return model.StrengthResponse{}, err
	}
	return resp.StrengthResponse, nil
}

// post sends body as JSON and decodes the answer into out. apiErr must point
// into out so the error field is captured from the same decode.
func (c *Client) post(ctx context.Context, path string, body, out any, apiErr *model.ErrorResponse) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading %s response: %w", path, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &APIError{Status: resp.StatusCode, Message: statusMessage(resp)}
		}
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if apiErr.Error != "" {
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: statusMessage(resp)}
	}
	return nil
}

func statusMessage(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
