package hintport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/elp-2025.net/internal/core/ports/primary"
	"gitlab.com/elp-2025.net/internal/domain"
)

const (
	hintKeyPrefix  = "hints:question:"
	hintExpiration = 24 * time.Hour
)

// HintCache implements the HintCache interface with Redis
type HintCache struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewHintCache creates a new Redis hint cache
func NewHintCache(redisClient *redis.Client, logger primary.Logger) *HintCache {
	return &HintCache{
		redisClient: redisClient,
		logger:      logger,
	}
}

// GetHintSet retrieves a cached hint set by question id, nil when absent
func (c *HintCache) GetHintSet(ctx context.Context, questionID string) (*domain.HintSet, error) {
	key := fmt.Sprintf("%s%s", hintKeyPrefix, questionID)
	setJSON, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		c.logger.Error("Failed to get hint set from cache", "questionId", questionID, "error", err)
		return nil, fmt.Errorf("failed to get hint set: %w", err)
	}

	var set domain.HintSet
	if err := json.Unmarshal(setJSON, &set); err != nil {
		c.logger.Error("Failed to unmarshal cached hint set", "questionId", questionID, "error", err)
		return nil, fmt.Errorf("failed to unmarshal hint set: %w", err)
	}

	return &set, nil
}

// SetHintSet caches a complete hint set with expiration
func (c *HintCache) SetHintSet(ctx context.Context, set *domain.HintSet) error {
	setJSON, err := json.Marshal(set)
	if err != nil {
		c.logger.Error("Failed to marshal hint set", "questionId", set.QuestionID, "error", err)
		return fmt.Errorf("failed to marshal hint set: %w", err)
	}

	key := fmt.Sprintf("%s%s", hintKeyPrefix, set.QuestionID)
	if err := c.redisClient.Set(ctx, key, setJSON, hintExpiration).Err(); err != nil {
		c.logger.Error("Failed to cache hint set", "questionId", set.QuestionID, "error", err)
		return fmt.Errorf("failed to cache hint set: %w", err)
	}

	return nil
}
