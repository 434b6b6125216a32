package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/elp-2025.net/internal/domain"
)

// ResultRepository persists normalized execution results for audit.
type ResultRepository interface {
	SaveResult(ctx context.Context, result *domain.ExecutionResult) error
	GetResult(ctx context.Context, submissionID uuid.UUID) (*domain.ExecutionResult, error)
}
