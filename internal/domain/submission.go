package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxCodeLength is the upper bound on submitted source size, enforced
// before any network call is made.
const MaxCodeLength = 1000000

// ExecutionRequest represents a code submission to be graded against test
// cases. Immutable once created.
type ExecutionRequest struct {
	ID          uuid.UUID
	QuestionID  string
	Code        string
	Language    string
	TestCases   []TestCase
	SubmittedAt time.Time
}

// NewExecutionRequest creates a new execution request
func NewExecutionRequest(questionID, code, language string, testCases []TestCase) *ExecutionRequest {
	return &ExecutionRequest{
		ID:          uuid.New(),
		QuestionID:  questionID,
		Code:        code,
		Language:    language,
		TestCases:   testCases,
		SubmittedAt: time.Now(),
	}
}
