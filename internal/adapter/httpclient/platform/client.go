package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"gitlab.com/elp-2025.net/internal/config"
	"gitlab.com/elp-2025.net/internal/core/ports/primary"
	"gitlab.com/elp-2025.net/internal/core/ports/secondary"
	"gitlab.com/elp-2025.net/internal/core/services/fallback"
	"gitlab.com/elp-2025.net/internal/domain"
	"gitlab.com/elp-2025.net/internal/static/errs"
)

var _ secondary.PlatformClient = (*Client)(nil)

// Client implements the PlatformClient interface against the sibling
// platform microservices. Every capability goes through the same
// validate/fallback contract, so dependency outages degrade to
// mock-provenance envelopes instead of errors.
type Client struct {
	cfg        *config.PlatformConfig
	httpClient *http.Client
	// studioClient authenticates against the content studio with OAuth2
	// client credentials when a token URL is configured.
	studioClient *http.Client
	logger       primary.Logger
}

// NewClient creates a new platform client
func NewClient(cfg *config.PlatformConfig, logger primary.Logger) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.DefaultTimeout},
		logger:     logger,
	}
	c.studioClient = c.httpClient
	if cfg.OAuthTokenURL != "" {
		oauthCfg := &clientcredentials.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			TokenURL:     cfg.OAuthTokenURL,
		}
		c.studioClient = oauthCfg.Client(context.Background())
		c.studioClient.Timeout = cfg.DefaultTimeout
	}
	return c
}

// SendAnalyticsEvent forwards a learning event to the analytics service.
func (c *Client) SendAnalyticsEvent(ctx context.Context, event map[string]interface{}) (*domain.FallbackEnvelope, error) {
	body, err := c.post(ctx, c.httpClient, c.cfg.AnalyticsURL+"/api/v1/events", event, []string{"eventId"})
	if err != nil {
		if fallback.ShouldFallback(err) {
			c.logger.Warn("Analytics service degraded, using fallback", "error", err)
			return fallback.MockAnalyticsAck(), nil
		}
		return nil, err
	}

	var ack domain.AnalyticsAck
	if err := decodeInto(body, &ack); err != nil {
		return nil, err
	}
	return domain.RealEnvelope(ack), nil
}

// RecordCourseCompletion records a completion with the course service.
func (c *Client) RecordCourseCompletion(ctx context.Context, userID, courseID string) (*domain.FallbackEnvelope, error) {
	payload := map[string]interface{}{"userId": userID, "courseId": courseID, "completedAt": time.Now()}
	body, err := c.post(ctx, c.httpClient, c.cfg.CatalogURL+"/api/v1/completions", payload, []string{"certificateId"})
	if err != nil {
		if fallback.ShouldFallback(err) {
			c.logger.Warn("Course service degraded, using fallback", "userId", userID, "courseId", courseID, "error", err)
			return fallback.MockCompletionAck(userID, courseID), nil
		}
		return nil, err
	}

	var ack domain.CompletionAck
	if err := decodeInto(body, &ack); err != nil {
		return nil, err
	}
	return domain.RealEnvelope(ack), nil
}

// LookupCourse fetches a course entry from the catalog service.
func (c *Client) LookupCourse(ctx context.Context, courseID string) (*domain.FallbackEnvelope, error) {
	payload := map[string]interface{}{"courseId": courseID}
	body, err := c.post(ctx, c.httpClient, c.cfg.CatalogURL+"/api/v1/courses/lookup", payload, []string{"courseId", "title"})
	if err != nil {
		if fallback.ShouldFallback(err) {
			c.logger.Warn("Catalog service degraded, using fallback", "courseId", courseID, "error", err)
			return fallback.MockCatalogEntry(courseID), nil
		}
		return nil, err
	}

	var entry domain.CatalogEntry
	if err := decodeInto(body, &entry); err != nil {
		return nil, err
	}
	return domain.RealEnvelope(entry), nil
}

// SyncAssessment pushes an assessment record to the assessment service.
func (c *Client) SyncAssessment(ctx context.Context, assessment map[string]interface{}) (*domain.FallbackEnvelope, error) {
	body, err := c.post(ctx, c.httpClient, c.cfg.AssessmentURL+"/api/v1/assessments", assessment, []string{"eventId"})
	if err != nil {
		if fallback.ShouldFallback(err) {
			c.logger.Warn("Assessment service degraded, using fallback", "error", err)
			return fallback.MockAssessmentAck(), nil
		}
		return nil, err
	}

	var ack domain.AnalyticsAck
	if err := decodeInto(body, &ack); err != nil {
		return nil, err
	}
	return domain.RealEnvelope(ack), nil
}

// AskChat queries the RAG chat service.
func (c *Client) AskChat(ctx context.Context, question string) (*domain.FallbackEnvelope, error) {
	payload := map[string]interface{}{"question": question}
	body, err := c.post(ctx, c.httpClient, c.cfg.ChatURL+"/api/v1/chat", payload, []string{"answer"})
	if err != nil {
		if fallback.ShouldFallback(err) {
			c.logger.Warn("Chat service degraded, using fallback", "error", err)
			return fallback.MockChatAnswer(question), nil
		}
		return nil, err
	}

	var answer domain.ChatAnswer
	if err := decodeInto(body, &answer); err != nil {
		return nil, err
	}
	return domain.RealEnvelope(answer), nil
}

// ValidateContent asks the content studio to validate authored content.
func (c *Client) ValidateContent(ctx context.Context, content map[string]interface{}) (*domain.FallbackEnvelope, error) {
	body, err := c.post(ctx, c.studioClient, c.cfg.ContentStudioURL+"/api/v1/validate", content, []string{"valid"})
	if err != nil {
		if fallback.ShouldFallback(err) {
			c.logger.Warn("Content studio degraded, using fallback", "error", err)
			return fallback.MockValidationVerdict(), nil
		}
		return nil, err
	}

	var verdict domain.ValidationVerdict
	if err := decodeInto(body, &verdict); err != nil {
		return nil, err
	}
	return domain.RealEnvelope(verdict), nil
}

// RequestContentGeneration queues a generation job with the content studio.
func (c *Client) RequestContentGeneration(ctx context.Context, request map[string]interface{}) (*domain.FallbackEnvelope, error) {
	body, err := c.post(ctx, c.studioClient, c.cfg.ContentStudioURL+"/api/v1/generate", request, []string{"jobId"})
	if err != nil {
		if fallback.ShouldFallback(err) {
			c.logger.Warn("Content studio degraded, using fallback", "error", err)
			return fallback.MockGenerationNotice(), nil
		}
		return nil, err
	}

	var notice domain.GenerationNotice
	if err := decodeInto(body, &notice); err != nil {
		return nil, err
	}
	return domain.RealEnvelope(notice), nil
}

// post issues one JSON call with the service credential header and returns
// the decoded body after structural validation.
func (c *Client) post(ctx context.Context, client *http.Client, url string, payload interface{}, expectedKeys []string) (map[string]interface{}, error) {
	token, err := c.serviceToken()
	if err != nil {
		return nil, fmt.Errorf("failed to mint service token: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Service-Token", token)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("service unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errs.NewHTTPError(url, resp.StatusCode, string(respBody))
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}

	if !fallback.IsValidResponse(&fallback.ServiceResponse{StatusCode: resp.StatusCode, Body: decoded}, expectedKeys) {
		return nil, fmt.Errorf("%w: response missing expected keys", errs.ErrUnparsableResponse)
	}

	return decoded, nil
}

func decodeInto(body map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to re-encode response: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
