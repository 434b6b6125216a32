package execution

import "gitlab.com/elp-2025.net/internal/domain"

// ExecuteRequest represents a request to grade a code submission
type ExecuteRequest struct {
	QuestionID string            `json:"questionId"`
	Code       string            `json:"code"`
	Language   string            `json:"language"`
	TestCases  []domain.TestCase `json:"testCases"`
}
