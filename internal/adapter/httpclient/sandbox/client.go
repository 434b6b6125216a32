package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gitlab.com/elp-2025.net/internal/config"
	"gitlab.com/elp-2025.net/internal/core/ports/primary"
	"gitlab.com/elp-2025.net/internal/core/ports/secondary"
	"gitlab.com/elp-2025.net/internal/static/errs"
)

var _ secondary.SandboxClient = (*Client)(nil)

// Client implements the SandboxClient interface against the code-sandbox
// REST API.
type Client struct {
	cfg        *config.SandboxConfig
	httpClient *http.Client
	logger     primary.Logger
}

// NewClient creates a new sandbox client
func NewClient(cfg *config.SandboxConfig, logger primary.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		logger:     logger,
	}
}

// Submit posts a submission and returns its polling token.
func (c *Client) Submit(ctx context.Context, submission *secondary.SandboxSubmission) (string, error) {
	body, err := json.Marshal(submission)
	if err != nil {
		return "", fmt.Errorf("failed to marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/submissions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build submission request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sandbox unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errs.NewHTTPError("sandbox", resp.StatusCode, string(respBody))
	}

	var parsed struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("malformed submission response: %w", err)
	}
	if parsed.Token == "" {
		return "", fmt.Errorf("submission response: %w: missing token", errs.ErrUnparsableResponse)
	}

	return parsed.Token, nil
}

// GetSubmission polls a submission by token.
func (c *Client) GetSubmission(ctx context.Context, token string) (*secondary.SandboxResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/submissions/"+token, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build poll request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sandbox unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errs.NewHTTPError("sandbox", resp.StatusCode, string(respBody))
	}

	var result secondary.SandboxResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("malformed poll response: %w", err)
	}

	return &result, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("X-Auth-Token", c.cfg.APIKey)
	}
}
