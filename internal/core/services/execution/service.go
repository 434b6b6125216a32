package execution

import (
	"context"

	"gitlab.com/elp-2025.net/internal/domain"
)

// IExecutionService defines the interface for grading code submissions
// against the remote sandbox.
type IExecutionService interface {
	// Execute runs the full submit, poll and normalize protocol for one
	// request and returns the normalized result.
	Execute(ctx context.Context, request *domain.ExecutionRequest) (*domain.ExecutionResult, error)
}
