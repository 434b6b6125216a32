package fraud

import (
	"context"

	"gitlab.com/elp-2025.net/internal/core/services/generation"
	"gitlab.com/elp-2025.net/internal/domain"
)

// IFraudService defines the interface for turning fraud signals into a
// remediation decision.
type IFraudService interface {
	// Assess maps a numeric score to its level and action per the fixed
	// policy table. Pure, deterministic.
	Assess(score float64, detail string) *domain.FraudAssessment

	// AssessSubmission scores a submission through the generative model
	// and applies the policy table to the result.
	AssessSubmission(ctx context.Context, signals *generation.FraudSignals) (*domain.FraudAssessment, error)
}
