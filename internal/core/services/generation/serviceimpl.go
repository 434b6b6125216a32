package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/elp-2025.net/internal/config"
	"gitlab.com/elp-2025.net/internal/core/ports/primary"
	"gitlab.com/elp-2025.net/internal/core/ports/secondary"
	"gitlab.com/elp-2025.net/internal/core/services/fallback"
	"gitlab.com/elp-2025.net/internal/domain"
	"gitlab.com/elp-2025.net/internal/static/errs"
)

var _ IGenerationService = (*GenerationService)(nil)

// GenerationService implements the GenerationService interface
type GenerationService struct {
	model  secondary.GenerativeModel
	logger primary.Logger
	cfg    *config.GenerativeConfig
}

// NewGenerationService creates a new generation service
func NewGenerationService(
	model secondary.GenerativeModel,
	logger primary.Logger,
	cfg *config.GenerativeConfig,
) *GenerationService {
	return &GenerationService{
		model:  model,
		logger: logger,
		cfg:    cfg,
	}
}

// GenerateCodingQuestions requests a batch of coding questions. Dependency
// failures and malformed responses degrade to a synthetic batch.
func (s *GenerationService) GenerateCodingQuestions(ctx context.Context, topic, language string, count int) (*domain.FallbackEnvelope, error) {
	if count <= 0 {
		count = 3
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.CodingBatchTimeout)
	defer cancel()

	text, err := s.model.GenerateText(ctx, buildCodingQuestionsPrompt(topic, language, count))
	if err != nil {
		if s.questionFallback(err) {
			s.logger.Warn("Falling back to synthetic coding questions", "topic", topic, "error", err)
			return fallback.MockCodingQuestions(topic, language, count), nil
		}
		return nil, fmt.Errorf("failed to generate coding questions: %w", err)
	}

	var batch domain.CodingQuestionBatch
	if err := ExtractJSON(text, &batch); err != nil {
		s.logger.Warn("Coding question response not parseable, falling back", "topic", topic, "error", err)
		return fallback.MockCodingQuestions(topic, language, count), nil
	}
	if len(batch.Questions) == 0 {
		s.logger.Warn("Coding question response missing questions array, falling back", "topic", topic)
		return fallback.MockCodingQuestions(topic, language, count), nil
	}

	if batch.Topic == "" {
		batch.Topic = topic
	}
	if batch.Language == "" {
		batch.Language = language
	}
	for i := range batch.Questions {
		if batch.Questions[i].ID == "" {
			batch.Questions[i].ID = uuid.New().String()
		}
	}

	return domain.RealEnvelope(batch), nil
}

// GenerateTheoryQuestions requests a batch of theoretical questions with
// the same degrade-to-synthetic contract as coding questions.
func (s *GenerationService) GenerateTheoryQuestions(ctx context.Context, topic string, count int) (*domain.FallbackEnvelope, error) {
	if count <= 0 {
		count = 5
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.TheoryBatchTimeout)
	defer cancel()

	text, err := s.model.GenerateText(ctx, buildTheoryQuestionsPrompt(topic, count))
	if err != nil {
		if s.questionFallback(err) {
			s.logger.Warn("Falling back to synthetic theory questions", "topic", topic, "error", err)
			return fallback.MockTheoryQuestions(topic, count), nil
		}
		return nil, fmt.Errorf("failed to generate theory questions: %w", err)
	}

	var batch domain.TheoryQuestionBatch
	if err := ExtractJSON(text, &batch); err != nil {
		s.logger.Warn("Theory question response not parseable, falling back", "topic", topic, "error", err)
		return fallback.MockTheoryQuestions(topic, count), nil
	}
	if len(batch.Questions) == 0 {
		s.logger.Warn("Theory question response missing questions array, falling back", "topic", topic)
		return fallback.MockTheoryQuestions(topic, count), nil
	}

	if batch.Topic == "" {
		batch.Topic = topic
	}
	for i := range batch.Questions {
		if batch.Questions[i].ID == "" {
			batch.Questions[i].ID = uuid.New().String()
		}
	}

	return domain.RealEnvelope(batch), nil
}

// GenerateFeedback produces feedback text for a graded submission. There
// is no synthetic substitute on this path; failures propagate.
func (s *GenerationService) GenerateFeedback(ctx context.Context, request *FeedbackRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.FeedbackTimeout)
	defer cancel()

	text, err := s.model.GenerateText(ctx, buildFeedbackPrompt(request))
	if err != nil {
		s.logger.Error("Failed to generate feedback", "question", request.QuestionTitle, "error", err)
		return "", fmt.Errorf("failed to generate feedback: %w", err)
	}

	var parsed struct {
		Feedback string `json:"feedback"`
	}
	if err := ExtractJSON(text, &parsed); err != nil {
		return "", fmt.Errorf("feedback response: %w", err)
	}
	if parsed.Feedback == "" {
		return "", fmt.Errorf("feedback response: %w: missing feedback field", errs.ErrUnparsableResponse)
	}

	return parsed.Feedback, nil
}

// GenerateHints produces exactly domain.HintsPerQuestion progressively
// more specific hints in a single call. A response with any other count is
// a format error; nothing is partially accepted.
func (s *GenerationService) GenerateHints(ctx context.Context, questionID, questionContext string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.HintTimeout)
	defer cancel()

	text, err := s.model.GenerateText(ctx, buildHintsPrompt(questionContext))
	if err != nil {
		s.logger.Error("Failed to generate hints", "questionId", questionID, "error", err)
		return nil, fmt.Errorf("failed to generate hints: %w", err)
	}

	var parsed struct {
		Hints []string `json:"hints"`
	}
	if err := ExtractJSON(text, &parsed); err != nil {
		return nil, fmt.Errorf("hint response: %w", err)
	}
	if len(parsed.Hints) != domain.HintsPerQuestion {
		return nil, fmt.Errorf("hint response: expected exactly %d hints, model returned %d", domain.HintsPerQuestion, len(parsed.Hints))
	}

	return parsed.Hints, nil
}

// AssessFraud returns the raw model fraud score. The policy table above
// this service derives the remediation action.
func (s *GenerationService) AssessFraud(ctx context.Context, signals *FraudSignals) (*FraudScore, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.FraudTimeout)
	defer cancel()

	prompt, err := buildFraudPrompt(signals)
	if err != nil {
		return nil, err
	}

	text, err := s.model.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Error("Failed to assess fraud", "submissionId", signals.SubmissionID, "error", err)
		return nil, fmt.Errorf("failed to assess fraud: %w", err)
	}

	var score FraudScore
	if err := ExtractJSON(text, &score); err != nil {
		return nil, fmt.Errorf("fraud response: %w", err)
	}

	return &score, nil
}

// questionFallback decides whether a question-generation failure degrades
// to synthetic data. An invalid or placeholder key is classified the same
// as a network failure on this path.
func (s *GenerationService) questionFallback(err error) bool {
	return errors.Is(err, errs.ErrInvalidAPIKey) || fallback.ShouldFallback(err)
}
