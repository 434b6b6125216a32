package generative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gitlab.com/elp-2025.net/internal/config"
	"gitlab.com/elp-2025.net/internal/core/ports/primary"
	"gitlab.com/elp-2025.net/internal/core/ports/secondary"
	"gitlab.com/elp-2025.net/internal/static/errs"
)

var _ secondary.GenerativeModel = (*Client)(nil)

// placeholderKeys are values that indicate a credential was never
// configured. Calls are refused before any network traffic.
var placeholderKeys = map[string]bool{
	"":             true,
	"YOUR_API_KEY": true,
	"changeme":     true,
	"REPLACE_ME":   true,
}

// Client implements the GenerativeModel interface against a Gemini-style
// text generation API.
type Client struct {
	cfg        *config.GenerativeConfig
	httpClient *http.Client
	logger     primary.Logger
}

// NewClient creates a new generative model client. The per-capability
// timeout is carried by the caller's context, not the transport.
func NewClient(cfg *config.GenerativeConfig, logger primary.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends one prompt and returns the model's free-text reply.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if placeholderKeys[strings.TrimSpace(c.cfg.APIKey)] {
		return "", fmt.Errorf("generative service: %w", errs.ErrInvalidAPIKey)
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal prompt: %w", err)
	}

	url := c.cfg.BaseURL + "/v1beta/models/gemini-1.5-flash:generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generative service unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errs.NewHTTPError("generative service", resp.StatusCode, string(respBody))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("malformed generation response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generation response: %w: no candidates", errs.ErrUnparsableResponse)
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
