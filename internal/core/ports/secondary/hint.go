package secondary

import (
	"context"

	"gitlab.com/elp-2025.net/internal/domain"
)

// HintRepository is the durable store for hint sets. SaveHintSet must be
// atomic: either all hints of a set are stored or none.
type HintRepository interface {
	// GetHintSet returns the stored set for a question, or nil if absent.
	GetHintSet(ctx context.Context, questionID string) (*domain.HintSet, error)

	// SaveHintSet stores a complete hint set atomically.
	SaveHintSet(ctx context.Context, set *domain.HintSet) error
}

// HintCache is the hot read-through tier in front of HintRepository.
type HintCache interface {
	GetHintSet(ctx context.Context, questionID string) (*domain.HintSet, error)
	SetHintSet(ctx context.Context, set *domain.HintSet) error
}
