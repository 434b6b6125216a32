package hint

import (
	"context"

	"gitlab.com/elp-2025.net/internal/domain"
)

// IHintService defines the interface for generating and gating hints.
type IHintService interface {
	// GenerateHints returns the cached hint set for a question, generating
	// and persisting it on first request. A question ends up with zero or
	// exactly domain.HintsPerQuestion hints, never a partial set.
	GenerateHints(ctx context.Context, questionID, questionContext string) (*domain.HintSet, error)

	// GetHint returns the nth stored hint, 1-indexed. It never triggers
	// generation.
	GetHint(ctx context.Context, questionID string, n int) (string, error)

	// CanRevealSolution reports whether the full solution may be shown:
	// a complete hint set exists and the caller has consumed all of it.
	CanRevealSolution(ctx context.Context, questionID string, hintsConsumed int) (bool, error)
}
