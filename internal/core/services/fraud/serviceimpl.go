package fraud

import (
	"context"
	"fmt"

	"gitlab.com/elp-2025.net/internal/core/ports/primary"
	"gitlab.com/elp-2025.net/internal/core/services/generation"
	"gitlab.com/elp-2025.net/internal/domain"
)

var _ IFraudService = (*FraudService)(nil)

// FraudService implements the FraudService interface
type FraudService struct {
	generator generation.IGenerationService
	logger    primary.Logger
}

// NewFraudService creates a new fraud service
func NewFraudService(generator generation.IGenerationService, logger primary.Logger) *FraudService {
	return &FraudService{
		generator: generator,
		logger:    logger,
	}
}

// Assess maps a score onto its band. Bands are inclusive on their low
// edge: [0,31) proceed, [31,61) warning, [61,91) restrict, [91,100] block.
// Scores outside [0,100] default to low/proceed.
func (s *FraudService) Assess(score float64, detail string) *domain.FraudAssessment {
	assessment := &domain.FraudAssessment{
		Score:  score,
		Detail: detail,
	}

	switch {
	case score < 0 || score > 100:
		assessment.Level = domain.FraudLevelLow
		assessment.Action = domain.FraudActionProceed
	case score >= 91:
		assessment.Level = domain.FraudLevelVeryHigh
		assessment.Action = domain.FraudActionBlock
	case score >= 61:
		assessment.Level = domain.FraudLevelHigh
		assessment.Action = domain.FraudActionRestrict
	case score >= 31:
		assessment.Level = domain.FraudLevelMedium
		assessment.Action = domain.FraudActionWarning
	default:
		assessment.Level = domain.FraudLevelLow
		assessment.Action = domain.FraudActionProceed
	}

	return assessment
}

// AssessSubmission scores a submission and applies the policy table. Model
// failures propagate; there is no synthetic fraud verdict.
func (s *FraudService) AssessSubmission(ctx context.Context, signals *generation.FraudSignals) (*domain.FraudAssessment, error) {
	raw, err := s.generator.AssessFraud(ctx, signals)
	if err != nil {
		return nil, fmt.Errorf("failed to assess submission: %w", err)
	}

	assessment := s.Assess(raw.Score, raw.Detail)

	if raw.Level != "" && raw.Level != string(assessment.Level) {
		// Score is authoritative, the model's own label is advisory only.
		s.logger.Warn("Model fraud level disagrees with score band",
			"submissionId", signals.SubmissionID,
			"modelLevel", raw.Level,
			"derivedLevel", assessment.Level,
			"score", raw.Score)
	}

	s.logger.Info("Fraud assessment completed",
		"submissionId", signals.SubmissionID,
		"score", assessment.Score,
		"action", assessment.Action)

	return assessment, nil
}
