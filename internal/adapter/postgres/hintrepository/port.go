// package postgres contains PostgreSQL implementations of repositories
package hintrepository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/elp-2025.net/internal/core/ports/primary"
	"gitlab.com/elp-2025.net/internal/domain"
)

// HintRepository implements the HintRepository interface with PostgreSQL
type HintRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewHintRepository creates a new PostgreSQL hint repository
func NewHintRepository(db *sqlx.DB, logger primary.Logger) *HintRepository {
	return &HintRepository{
		db:     db,
		logger: logger,
	}
}

// SaveHintSet stores a complete hint set. The set lives in one row, so the
// write is atomic: a question never ends up with a partial set.
func (r *HintRepository) SaveHintSet(ctx context.Context, set *domain.HintSet) error {
	if !set.Complete() {
		return fmt.Errorf("refusing to store incomplete hint set for question %s: %d hints", set.QuestionID, len(set.Hints))
	}

	query := `
		INSERT INTO hint_sets (question_id, hint_1, hint_2, hint_3, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (question_id) DO UPDATE SET
			hint_1 = EXCLUDED.hint_1,
			hint_2 = EXCLUDED.hint_2,
			hint_3 = EXCLUDED.hint_3,
			created_at = EXCLUDED.created_at
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		set.QuestionID,
		set.Hints[0],
		set.Hints[1],
		set.Hints[2],
		set.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save hint set", "questionId", set.QuestionID, "error", err)
		return fmt.Errorf("failed to save hint set: %w", err)
	}

	return nil
}

// GetHintSet retrieves a hint set from PostgreSQL by question id
func (r *HintRepository) GetHintSet(ctx context.Context, questionID string) (*domain.HintSet, error) {
	query := `
		SELECT question_id, hint_1, hint_2, hint_3, created_at
		FROM hint_sets
		WHERE question_id = $1
	`

	var set domain.HintSet
	var hint1, hint2, hint3 string

	err := r.db.QueryRowContext(ctx, query, questionID).Scan(
		&set.QuestionID,
		&hint1,
		&hint2,
		&hint3,
		&set.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Failed to get hint set", "questionId", questionID, "error", err)
		return nil, fmt.Errorf("failed to get hint set: %w", err)
	}

	set.Hints = []string{hint1, hint2, hint3}
	return &set, nil
}
