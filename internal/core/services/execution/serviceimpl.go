package execution

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gitlab.com/elp-2025.net/internal/config"
	"gitlab.com/elp-2025.net/internal/core/ports/primary"
	"gitlab.com/elp-2025.net/internal/core/ports/secondary"
	"gitlab.com/elp-2025.net/internal/domain"
	"gitlab.com/elp-2025.net/internal/static/errs"
)

var _ IExecutionService = (*ExecutionService)(nil)

// ExecutionService implements the ExecutionService interface
type ExecutionService struct {
	sandbox    secondary.SandboxClient
	resultRepo secondary.ResultRepository
	logger     primary.Logger
	cfg        *config.SandboxConfig
}

// NewExecutionService creates a new execution service. resultRepo may be
// nil when results are not persisted.
func NewExecutionService(
	sandbox secondary.SandboxClient,
	resultRepo secondary.ResultRepository,
	logger primary.Logger,
	cfg *config.SandboxConfig,
) *ExecutionService {
	return &ExecutionService{
		sandbox:    sandbox,
		resultRepo: resultRepo,
		logger:     logger,
		cfg:        cfg,
	}
}

// Execute drives one request through submit, poll and normalize.
func (s *ExecutionService) Execute(ctx context.Context, request *domain.ExecutionRequest) (*domain.ExecutionResult, error) {
	// Local validation happens before any network call.
	if len(request.Code) > domain.MaxCodeLength {
		return nil, fmt.Errorf("%w: got %d characters", errs.ErrCodeTooLarge, len(request.Code))
	}
	languageID, ok := domain.ExecutorID(request.Language)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnsupportedLanguage, request.Language)
	}

	s.logger.Info("Submitting code for execution",
		"submissionId", request.ID,
		"questionId", request.QuestionID,
		"language", request.Language)

	token, err := s.sandbox.Submit(ctx, &secondary.SandboxSubmission{
		SourceCode:     request.Code,
		LanguageID:     languageID,
		Stdin:          "",
		ExpectedOutput: "",
		CPUTimeLimit:   s.cfg.CPUTimeLimitSec,
		MemoryLimit:    s.cfg.MemoryLimitKB,
		WallTimeLimit:  s.cfg.WallTimeLimitSec,
	})
	if err != nil {
		s.logger.Error("Failed to submit code", "submissionId", request.ID, "error", err)
		return nil, classifySandboxError(err, "submit")
	}

	terminal, err := s.poll(ctx, request.ID.String(), token)
	if err != nil {
		return nil, err
	}

	result := normalize(request, terminal)

	if s.resultRepo != nil {
		if err := s.resultRepo.SaveResult(ctx, result); err != nil {
			// Persistence is best effort, the grading result is still valid.
			s.logger.Error("Failed to save execution result", "submissionId", request.ID, "error", err)
		}
	}

	s.logger.Info("Execution completed",
		"submissionId", request.ID,
		"statusId", result.StatusID,
		"isCorrect", result.IsCorrect)

	return result, nil
}

// poll queries the sandbox by token until a terminal status or until the
// attempt budget is exhausted. Transient poll errors are tolerated up to
// the last attempt; authentication failures abort immediately.
func (s *ExecutionService) poll(ctx context.Context, submissionID, token string) (*secondary.SandboxResult, error) {
	var lastErr error

	for attempt := 1; attempt <= s.cfg.PollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.cfg.PollInterval):
		}

		result, err := s.sandbox.GetSubmission(ctx, token)
		if err != nil {
			if errs.IsAuthError(err) {
				s.logger.Error("Sandbox rejected credentials while polling", "submissionId", submissionID, "error", err)
				return nil, classifySandboxError(err, "poll")
			}
			s.logger.Warn("Poll attempt failed",
				"submissionId", submissionID,
				"attempt", attempt,
				"error", err)
			lastErr = err
			continue
		}

		if result.Status.ID == domain.StatusFinished {
			return result, nil
		}

		s.logger.Debug("Submission still processing",
			"submissionId", submissionID,
			"attempt", attempt,
			"statusId", result.Status.ID)
	}

	if lastErr != nil && (errs.IsRateLimitError(lastErr) || errs.IsServerError(lastErr)) {
		return nil, classifySandboxError(lastErr, "poll")
	}

	s.logger.Error("Polling budget exhausted", "submissionId", submissionID, "attempts", s.cfg.PollAttempts)
	return nil, errs.ErrExecutionTimeout
}

// classifySandboxError maps HTTP failures from the sandbox onto distinct,
// actionable errors rather than a generic one.
func classifySandboxError(err error, phase string) error {
	switch {
	case errs.IsAuthError(err):
		return fmt.Errorf("sandbox authentication failed during %s, check the configured api key: %w", phase, err)
	case errs.IsRateLimitError(err):
		return fmt.Errorf("sandbox rate limit reached during %s, retry later: %w", phase, err)
	case errs.IsServerError(err):
		return fmt.Errorf("sandbox internal failure during %s: %w", phase, err)
	default:
		return fmt.Errorf("sandbox %s failed: %w", phase, err)
	}
}

// normalize compares trimmed stdout against each declared test case.
// Matching is exact after trimming, with no tolerance for formatting or
// ordering differences.
func normalize(request *domain.ExecutionRequest, sandboxResult *secondary.SandboxResult) *domain.ExecutionResult {
	trimmedStdout := strings.TrimSpace(sandboxResult.Stdout)

	testResults := make([]domain.TestCaseResult, 0, len(request.TestCases))
	allPassed := true
	for _, testCase := range request.TestCases {
		passed := trimmedStdout == strings.TrimSpace(testCase.ExpectedOutput)
		if !passed {
			allPassed = false
		}
		testResults = append(testResults, domain.TestCaseResult{
			TestCaseID:   testCase.ID,
			Passed:       passed,
			ActualOutput: sandboxResult.Stdout,
		})
	}

	return &domain.ExecutionResult{
		SubmissionID:      request.ID,
		StatusID:          sandboxResult.Status.ID,
		StatusDescription: sandboxResult.Status.Description,
		Stdout:            sandboxResult.Stdout,
		Stderr:            sandboxResult.Stderr,
		CompileOutput:     sandboxResult.CompileOutput,
		Time:              sandboxResult.Time,
		Memory:            sandboxResult.Memory,
		TestCaseResults:   testResults,
		IsCorrect:         allPassed && sandboxResult.Status.ID == domain.StatusFinished,
		CompletedAt:       time.Now(),
	}
}
