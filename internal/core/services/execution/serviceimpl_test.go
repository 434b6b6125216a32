package execution

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"gitlab.com/elp-2025.net/internal/config"
	"gitlab.com/elp-2025.net/internal/core/ports/secondary"
	"gitlab.com/elp-2025.net/internal/domain"
	"gitlab.com/elp-2025.net/internal/static/errs"
)

type noopLogger struct{}

func (noopLogger) Info(msg string, args ...interface{})  {}
func (noopLogger) Error(msg string, args ...interface{}) {}
func (noopLogger) Debug(msg string, args ...interface{}) {}
func (noopLogger) Warn(msg string, args ...interface{})  {}

// fakeSandbox scripts Submit and a sequence of poll responses.
type fakeSandbox struct {
	submitErr     error
	lastSubmitted *secondary.SandboxSubmission
	submitCalls   int

	polls     []pollStep
	pollCalls int
}

type pollStep struct {
	result *secondary.SandboxResult
	err    error
}

func (f *fakeSandbox) Submit(ctx context.Context, submission *secondary.SandboxSubmission) (string, error) {
	f.submitCalls++
	f.lastSubmitted = submission
	if f.submitErr != nil {
		return "", f.submitErr
	}
	return "token-1", nil
}

func (f *fakeSandbox) GetSubmission(ctx context.Context, token string) (*secondary.SandboxResult, error) {
	var step pollStep
	if f.pollCalls < len(f.polls) {
		step = f.polls[f.pollCalls]
	} else if len(f.polls) > 0 {
		step = f.polls[len(f.polls)-1]
	}
	f.pollCalls++
	return step.result, step.err
}

func testConfig() *config.SandboxConfig {
	return &config.SandboxConfig{
		BaseURL:          "http://localhost:2358",
		CPUTimeLimitSec:  5,
		MemoryLimitKB:    256000,
		WallTimeLimitSec: 5,
		PollAttempts:     10,
		PollInterval:     time.Millisecond,
		RequestTimeout:   time.Second,
	}
}

func finishedWith(stdout string) *secondary.SandboxResult {
	return &secondary.SandboxResult{
		Status: secondary.SandboxStatus{ID: domain.StatusFinished, Description: "Accepted"},
		Stdout: stdout,
	}
}

func request(code, language, expected string) *domain.ExecutionRequest {
	return domain.NewExecutionRequest("q1", code, language, []domain.TestCase{
		{ID: uuid.New(), ExpectedOutput: expected},
	})
}

func TestExecuteRejectsOversizedCodeBeforeSubmitting(t *testing.T) {
	sb := &fakeSandbox{}
	svc := NewExecutionService(sb, nil, noopLogger{}, testConfig())

	code := strings.Repeat("a", domain.MaxCodeLength+1)
	_, err := svc.Execute(context.Background(), request(code, "python", "1"))

	if !errors.Is(err, errs.ErrCodeTooLarge) {
		t.Fatalf("expected ErrCodeTooLarge, got %v", err)
	}
	if sb.submitCalls != 0 {
		t.Errorf("expected no submit call, got %d", sb.submitCalls)
	}
}

func TestExecuteRejectsUnsupportedLanguage(t *testing.T) {
	sb := &fakeSandbox{}
	svc := NewExecutionService(sb, nil, noopLogger{}, testConfig())

	_, err := svc.Execute(context.Background(), request("print(1)", "cobol", "1"))

	if !errors.Is(err, errs.ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
	if sb.submitCalls != 0 {
		t.Errorf("expected no submit call, got %d", sb.submitCalls)
	}
}

func TestExecuteMapsLanguageAndLimits(t *testing.T) {
	tests := []struct {
		language string
		wantID   int
	}{
		{"python", 92},
		{"java", 91},
		{"javascript", 93},
		{"cpp", 54},
		{"c++", 54},
		{"go", 95},
		{"rust", 73},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			sb := &fakeSandbox{polls: []pollStep{{result: finishedWith("1")}}}
			svc := NewExecutionService(sb, nil, noopLogger{}, testConfig())

			if _, err := svc.Execute(context.Background(), request("code", tt.language, "1")); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sb.lastSubmitted.LanguageID != tt.wantID {
				t.Errorf("language id = %d, want %d", sb.lastSubmitted.LanguageID, tt.wantID)
			}
			if sb.lastSubmitted.CPUTimeLimit != 5 || sb.lastSubmitted.MemoryLimit != 256000 || sb.lastSubmitted.WallTimeLimit != 5 {
				t.Errorf("unexpected resource limits: %+v", sb.lastSubmitted)
			}
		})
	}
}

func TestExecuteNormalizesWithTrimEquality(t *testing.T) {
	tests := []struct {
		name        string
		stdout      string
		expected    string
		wantCorrect bool
	}{
		{"trailing newline ignored", "5\n", "5", true},
		{"expected carries whitespace", "5", "  5\n", true},
		{"wrong output", "6\n", "5", false},
		{"interior whitespace preserved", "1 2", "12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := &fakeSandbox{polls: []pollStep{{result: finishedWith(tt.stdout)}}}
			svc := NewExecutionService(sb, nil, noopLogger{}, testConfig())

			result, err := svc.Execute(context.Background(), request("code", "python", tt.expected))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.IsCorrect != tt.wantCorrect {
				t.Errorf("IsCorrect = %v, want %v", result.IsCorrect, tt.wantCorrect)
			}
			if len(result.TestCaseResults) != 1 || result.TestCaseResults[0].Passed != tt.wantCorrect {
				t.Errorf("unexpected test case results: %+v", result.TestCaseResults)
			}
		})
	}
}

func TestExecuteIsCorrectRequiresAllTestCases(t *testing.T) {
	sb := &fakeSandbox{polls: []pollStep{{result: finishedWith("5")}}}
	svc := NewExecutionService(sb, nil, noopLogger{}, testConfig())

	req := domain.NewExecutionRequest("q1", "code", "python", []domain.TestCase{
		{ID: uuid.New(), ExpectedOutput: "5"},
		{ID: uuid.New(), ExpectedOutput: "6"},
	})
	result, err := svc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsCorrect {
		t.Error("expected IsCorrect=false when any test case fails")
	}
	if !result.TestCaseResults[0].Passed || result.TestCaseResults[1].Passed {
		t.Errorf("unexpected per-case outcomes: %+v", result.TestCaseResults)
	}
}

func TestExecutePollsUntilTerminalStatus(t *testing.T) {
	processing := &secondary.SandboxResult{Status: secondary.SandboxStatus{ID: 2, Description: "Processing"}}
	sb := &fakeSandbox{polls: []pollStep{
		{result: processing},
		{result: processing},
		{result: finishedWith("1")},
	}}
	svc := NewExecutionService(sb, nil, noopLogger{}, testConfig())

	result, err := svc.Execute(context.Background(), request("code", "go", "1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.StatusID != domain.StatusFinished {
		t.Errorf("status id = %d, want %d", result.StatusID, domain.StatusFinished)
	}
	if sb.pollCalls != 3 {
		t.Errorf("poll calls = %d, want 3", sb.pollCalls)
	}
}

func TestExecuteTimesOutAfterPollBudget(t *testing.T) {
	processing := &secondary.SandboxResult{Status: secondary.SandboxStatus{ID: 2, Description: "Processing"}}
	sb := &fakeSandbox{polls: []pollStep{{result: processing}}}
	cfg := testConfig()
	cfg.PollAttempts = 4
	svc := NewExecutionService(sb, nil, noopLogger{}, cfg)

	_, err := svc.Execute(context.Background(), request("code", "go", "1"))
	if !errors.Is(err, errs.ErrExecutionTimeout) {
		t.Fatalf("expected ErrExecutionTimeout, got %v", err)
	}
	if sb.pollCalls != 4 {
		t.Errorf("poll calls = %d, want 4", sb.pollCalls)
	}
}

func TestExecuteToleratesTransientPollErrors(t *testing.T) {
	sb := &fakeSandbox{polls: []pollStep{
		{err: errors.New("connection reset")},
		{err: errors.New("connection reset")},
		{result: finishedWith("1")},
	}}
	svc := NewExecutionService(sb, nil, noopLogger{}, testConfig())

	result, err := svc.Execute(context.Background(), request("code", "go", "1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsCorrect {
		t.Error("expected a correct result after transient poll errors")
	}
}

func TestExecuteAbortsPollingOnAuthError(t *testing.T) {
	sb := &fakeSandbox{polls: []pollStep{
		{err: errs.NewHTTPError("sandbox", 401, "invalid key")},
	}}
	svc := NewExecutionService(sb, nil, noopLogger{}, testConfig())

	_, err := svc.Execute(context.Background(), request("code", "go", "1"))
	if err == nil || !errs.IsAuthError(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if sb.pollCalls != 1 {
		t.Errorf("poll calls = %d, want 1 (auth errors abort immediately)", sb.pollCalls)
	}
}

func TestExecuteClassifiesPersistentRateLimit(t *testing.T) {
	sb := &fakeSandbox{polls: []pollStep{
		{err: errs.NewHTTPError("sandbox", 429, "slow down")},
	}}
	cfg := testConfig()
	cfg.PollAttempts = 3
	svc := NewExecutionService(sb, nil, noopLogger{}, cfg)

	_, err := svc.Execute(context.Background(), request("code", "go", "1"))
	if err == nil || !errs.IsRateLimitError(err) {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if errors.Is(err, errs.ErrExecutionTimeout) {
		t.Error("rate limit exhaustion must not be reported as a plain timeout")
	}
}

func TestExecuteClassifiesSubmitErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		verify func(error) bool
	}{
		{"auth", errs.NewHTTPError("sandbox", 403, ""), errs.IsAuthError},
		{"rate limit", errs.NewHTTPError("sandbox", 429, ""), errs.IsRateLimitError},
		{"server", errs.NewHTTPError("sandbox", 503, ""), errs.IsServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := &fakeSandbox{submitErr: tt.err}
			svc := NewExecutionService(sb, nil, noopLogger{}, testConfig())

			_, err := svc.Execute(context.Background(), request("code", "go", "1"))
			if err == nil || !tt.verify(err) {
				t.Fatalf("classification lost for %s: %v", tt.name, err)
			}
		})
	}
}

func TestExecuteHonorsContextCancellation(t *testing.T) {
	processing := &secondary.SandboxResult{Status: secondary.SandboxStatus{ID: 1, Description: "In Queue"}}
	sb := &fakeSandbox{polls: []pollStep{{result: processing}}}
	cfg := testConfig()
	cfg.PollInterval = 50 * time.Millisecond
	svc := NewExecutionService(sb, nil, noopLogger{}, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Execute(ctx, request("code", "go", "1"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// fakeResultRepo records saves and can be told to fail.
type fakeResultRepo struct {
	saved   *domain.ExecutionResult
	saveErr error
}

func (f *fakeResultRepo) SaveResult(ctx context.Context, result *domain.ExecutionResult) error {
	f.saved = result
	return f.saveErr
}

func (f *fakeResultRepo) GetResult(ctx context.Context, submissionID uuid.UUID) (*domain.ExecutionResult, error) {
	return f.saved, nil
}

func TestExecutePersistsResultBestEffort(t *testing.T) {
	sb := &fakeSandbox{polls: []pollStep{{result: finishedWith("1")}}}
	repo := &fakeResultRepo{saveErr: errors.New("db down")}
	svc := NewExecutionService(sb, repo, noopLogger{}, testConfig())

	result, err := svc.Execute(context.Background(), request("code", "go", "1"))
	if err != nil {
		t.Fatalf("persistence failure must not fail the execution: %v", err)
	}
	if repo.saved == nil {
		t.Fatal("expected a save attempt")
	}
	if repo.saved.SubmissionID != result.SubmissionID {
		t.Errorf("saved submission id %s does not match result %s", repo.saved.SubmissionID, result.SubmissionID)
	}
}
