package generation

import (
	"context"

	"gitlab.com/elp-2025.net/internal/domain"
)

// FeedbackRequest carries the structured parameters a feedback prompt is
// built from.
type FeedbackRequest struct {
	QuestionTitle  string
	Language       string
	Code           string
	Stdout         string
	Passed         bool
	TargetLanguage string
}

// FraudSignals carries the behavioral evidence a fraud prompt is built
// from.
type FraudSignals struct {
	SubmissionID string
	UserID       string
	Signals      map[string]interface{}
}

// FraudScore is the raw model verdict before the policy table derives an
// action.
type FraudScore struct {
	Score  float64 `json:"score"`
	Level  string  `json:"level"`
	Detail string  `json:"detail"`
}

// IGenerationService defines the interface for all generative-model
// capabilities. Question batches fall back to synthetic data on dependency
// failure; feedback, hints and fraud scoring propagate errors instead,
// since a fabricated answer on those paths would be worse than an explicit
// failure.
type IGenerationService interface {
	// GenerateCodingQuestions returns an envelope whose Data is a
	// domain.CodingQuestionBatch. Never fails on dependency outage.
	GenerateCodingQuestions(ctx context.Context, topic, language string, count int) (*domain.FallbackEnvelope, error)

	// GenerateTheoryQuestions returns an envelope whose Data is a
	// domain.TheoryQuestionBatch. Never fails on dependency outage.
	GenerateTheoryQuestions(ctx context.Context, topic string, count int) (*domain.FallbackEnvelope, error)

	// GenerateFeedback returns personalized feedback text for a graded
	// submission.
	GenerateFeedback(ctx context.Context, request *FeedbackRequest) (string, error)

	// GenerateHints returns exactly domain.HintsPerQuestion progressively
	// more specific hints for a question.
	GenerateHints(ctx context.Context, questionID, questionContext string) ([]string, error)

	// AssessFraud returns the raw model fraud score for a submission.
	AssessFraud(ctx context.Context, signals *FraudSignals) (*FraudScore, error)
}
