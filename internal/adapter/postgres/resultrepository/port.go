package resultrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/elp-2025.net/internal/core/ports/primary"
	"gitlab.com/elp-2025.net/internal/domain"
)

// ResultRepository implements the ResultRepository interface with PostgreSQL
type ResultRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewResultRepository creates a new PostgreSQL result repository
func NewResultRepository(db *sqlx.DB, logger primary.Logger) *ResultRepository {
	return &ResultRepository{
		db:     db,
		logger: logger,
	}
}

// SaveResult saves an execution result to PostgreSQL
func (r *ResultRepository) SaveResult(ctx context.Context, result *domain.ExecutionResult) error {
	testResultsJSON, err := json.Marshal(result.TestCaseResults)
	if err != nil {
		r.logger.Error("Failed to marshal test results", "error", err)
		return fmt.Errorf("failed to marshal test results: %w", err)
	}

	query := `
		INSERT INTO execution_results (
			submission_id, status_id, status_description, stdout, stderr,
			compile_output, time, memory, test_results, is_correct, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (submission_id) DO UPDATE SET
			status_id = EXCLUDED.status_id,
			status_description = EXCLUDED.status_description,
			stdout = EXCLUDED.stdout,
			stderr = EXCLUDED.stderr,
			compile_output = EXCLUDED.compile_output,
			time = EXCLUDED.time,
			memory = EXCLUDED.memory,
			test_results = EXCLUDED.test_results,
			is_correct = EXCLUDED.is_correct,
			completed_at = EXCLUDED.completed_at
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		result.SubmissionID,
		result.StatusID,
		result.StatusDescription,
		result.Stdout,
		result.Stderr,
		result.CompileOutput,
		result.Time,
		result.Memory,
		testResultsJSON,
		result.IsCorrect,
		result.CompletedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save execution result", "submissionId", result.SubmissionID, "error", err)
		return fmt.Errorf("failed to save execution result: %w", err)
	}

	return nil
}

// GetResult retrieves an execution result from PostgreSQL by submission id
func (r *ResultRepository) GetResult(ctx context.Context, submissionID uuid.UUID) (*domain.ExecutionResult, error) {
	query := `
		SELECT submission_id, status_id, status_description, stdout, stderr,
			   compile_output, time, memory, test_results, is_correct, completed_at
		FROM execution_results
		WHERE submission_id = $1
	`

	var result domain.ExecutionResult
	var testResultsJSON []byte

	err := r.db.QueryRowContext(ctx, query, submissionID).Scan(
		&result.SubmissionID,
		&result.StatusID,
		&result.StatusDescription,
		&result.Stdout,
		&result.Stderr,
		&result.CompileOutput,
		&result.Time,
		&result.Memory,
		&testResultsJSON,
		&result.IsCorrect,
		&result.CompletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Failed to get execution result", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to get execution result: %w", err)
	}

	if err := json.Unmarshal(testResultsJSON, &result.TestCaseResults); err != nil {
		return nil, fmt.Errorf("failed to unmarshal test results: %w", err)
	}

	return &result, nil
}
