package sandbox

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitlab.com/elp-2025.net/internal/config"
	"gitlab.com/elp-2025.net/internal/core/ports/secondary"
	"gitlab.com/elp-2025.net/internal/static/errs"
)

type noopLogger struct{}

func (noopLogger) Info(msg string, args ...interface{})  {}
func (noopLogger) Error(msg string, args ...interface{}) {}
func (noopLogger) Debug(msg string, args ...interface{}) {}
func (noopLogger) Warn(msg string, args ...interface{})  {}

func clientFor(serverURL, apiKey string) *Client {
	return NewClient(&config.SandboxConfig{
		BaseURL:        serverURL,
		APIKey:         apiKey,
		RequestTimeout: time.Second,
	}, noopLogger{})
}

func submission() *secondary.SandboxSubmission {
	return &secondary.SandboxSubmission{
		SourceCode:    "print(1)",
		LanguageID:    92,
		CPUTimeLimit:  5,
		MemoryLimit:   256000,
		WallTimeLimit: 5,
	}
}

func TestSubmitSendsPayloadAndParsesToken(t *testing.T) {
	var received secondary.SandboxSubmission
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/submissions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("X-Auth-Token")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"token": "abc-123"})
	}))
	defer server.Close()

	token, err := clientFor(server.URL, "secret-key").Submit(context.Background(), submission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "abc-123" {
		t.Errorf("token = %q", token)
	}
	if gotAuth != "secret-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if received.LanguageID != 92 || received.CPUTimeLimit != 5 || received.MemoryLimit != 256000 {
		t.Errorf("payload lost fields: %+v", received)
	}
}

func TestSubmitOmitsAuthHeaderWithoutKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["X-Auth-Token"]; ok {
			t.Error("auth header sent despite empty key")
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "abc"})
	}))
	defer server.Close()

	if _, err := clientFor(server.URL, "").Submit(context.Background(), submission()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubmitMapsHTTPFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		verify func(error) bool
	}{
		{"unauthorized", 401, errs.IsAuthError},
		{"forbidden", 403, errs.IsAuthError},
		{"rate limited", 429, errs.IsRateLimitError},
		{"server error", 500, errs.IsServerError},
		{"bad gateway", 502, errs.IsServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, err := clientFor(server.URL, "key").Submit(context.Background(), submission())
			if err == nil || !tt.verify(err) {
				t.Fatalf("status %d not classified: %v", tt.status, err)
			}
		})
	}
}

func TestSubmitRejectsMissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"unexpected": "shape"})
	}))
	defer server.Close()

	_, err := clientFor(server.URL, "key").Submit(context.Background(), submission())
	if !errors.Is(err, errs.ErrUnparsableResponse) {
		t.Fatalf("expected ErrUnparsableResponse, got %v", err)
	}
}

func TestGetSubmissionParsesResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/submissions/abc-123" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": map[string]interface{}{"id": 3, "description": "Accepted"},
			"stdout": "5\n",
			"time":   "0.012",
			"memory": 3456,
		})
	}))
	defer server.Close()

	result, err := clientFor(server.URL, "key").GetSubmission(context.Background(), "abc-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status.ID != 3 || result.Stdout != "5\n" || result.Memory != 3456 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestGetSubmissionMapsHTTPFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := clientFor(server.URL, "key").GetSubmission(context.Background(), "abc-123")
	if err == nil || !errs.IsRateLimitError(err) {
		t.Fatalf("expected rate limit classification, got %v", err)
	}
}

func TestSubmitReportsUnreachableSandbox(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := clientFor(server.URL, "key").Submit(context.Background(), submission())
	if err == nil {
		t.Fatal("expected an error against a closed server")
	}
}
