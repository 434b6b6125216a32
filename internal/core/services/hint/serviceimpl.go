package hint

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gitlab.com/elp-2025.net/internal/core/ports/primary"
	"gitlab.com/elp-2025.net/internal/core/ports/secondary"
	"gitlab.com/elp-2025.net/internal/core/services/generation"
	"gitlab.com/elp-2025.net/internal/domain"
	"gitlab.com/elp-2025.net/internal/static/errs"
)

var _ IHintService = (*HintService)(nil)

// HintService implements the HintService interface
type HintService struct {
	repo      secondary.HintRepository
	cache     secondary.HintCache
	generator generation.IGenerationService
	logger    primary.Logger

	// Per-question locks give the at-most-one-in-flight guarantee:
	// concurrent first requests for the same question share one
	// generation call instead of double-generating.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewHintService creates a new hint service. cache may be nil when no hot
// tier is configured.
func NewHintService(
	repo secondary.HintRepository,
	cache secondary.HintCache,
	generator generation.IGenerationService,
	logger primary.Logger,
) *HintService {
	return &HintService{
		repo:      repo,
		cache:     cache,
		generator: generator,
		logger:    logger,
		locks:     make(map[string]*sync.Mutex),
	}
}

// GenerateHints returns the stored set when present and otherwise requests
// all hints in a single generation call, persisting them atomically.
func (s *HintService) GenerateHints(ctx context.Context, questionID, questionContext string) (*domain.HintSet, error) {
	if set, err := s.lookup(ctx, questionID); err != nil {
		return nil, err
	} else if set.Complete() {
		s.logger.Debug("Serving cached hints", "questionId", questionID)
		return set, nil
	}

	lock := s.questionLock(questionID)
	lock.Lock()
	defer lock.Unlock()

	// A concurrent caller may have generated while we waited on the lock.
	if set, err := s.lookup(ctx, questionID); err != nil {
		return nil, err
	} else if set.Complete() {
		s.logger.Debug("Hints generated by concurrent request", "questionId", questionID)
		return set, nil
	}

	hints, err := s.generator.GenerateHints(ctx, questionID, questionContext)
	if err != nil {
		// Nothing is cached on failure; the next request retries.
		return nil, err
	}

	set := &domain.HintSet{
		QuestionID: questionID,
		Hints:      hints,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.SaveHintSet(ctx, set); err != nil {
		s.logger.Error("Failed to persist hint set", "questionId", questionID, "error", err)
		return nil, fmt.Errorf("failed to persist hint set: %w", err)
	}
	s.fillCache(ctx, set)

	s.logger.Info("Hint set generated", "questionId", questionID)
	return set, nil
}

// GetHint returns the nth stored hint, 1-indexed.
func (s *HintService) GetHint(ctx context.Context, questionID string, n int) (string, error) {
	set, err := s.lookup(ctx, questionID)
	if err != nil {
		return "", err
	}
	if !set.Complete() || n < 1 || n > len(set.Hints) {
		return "", fmt.Errorf("%w: question %s hint %d", errs.ErrHintNotFound, questionID, n)
	}
	return set.Hints[n-1], nil
}

// CanRevealSolution gates the full solution behind consuming every hint.
func (s *HintService) CanRevealSolution(ctx context.Context, questionID string, hintsConsumed int) (bool, error) {
	set, err := s.lookup(ctx, questionID)
	if err != nil {
		return false, err
	}
	return set.Complete() && hintsConsumed >= domain.HintsPerQuestion, nil
}

// lookup reads through the cache into the durable store. It never returns
// a nil set; absence is an empty set.
func (s *HintService) lookup(ctx context.Context, questionID string) (*domain.HintSet, error) {
	if s.cache != nil {
		set, err := s.cache.GetHintSet(ctx, questionID)
		if err != nil {
			s.logger.Warn("Hint cache read failed", "questionId", questionID, "error", err)
		} else if set.Complete() {
			return set, nil
		}
	}

	set, err := s.repo.GetHintSet(ctx, questionID)
	if err != nil {
		s.logger.Error("Failed to read hint set", "questionId", questionID, "error", err)
		return nil, fmt.Errorf("failed to read hint set: %w", err)
	}
	if set == nil {
		return &domain.HintSet{QuestionID: questionID}, nil
	}
	if set.Complete() {
		s.fillCache(ctx, set)
	}
	return set, nil
}

func (s *HintService) fillCache(ctx context.Context, set *domain.HintSet) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetHintSet(ctx, set); err != nil {
		s.logger.Warn("Hint cache write failed", "questionId", set.QuestionID, "error", err)
	}
}

func (s *HintService) questionLock(questionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[questionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[questionID] = lock
	}
	return lock
}
