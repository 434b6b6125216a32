package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatusFinished is the only sandbox status id recognized as terminal.
// Ids 1-2 mean the submission is still queued or processing.
const StatusFinished = 3

// TestCaseResult represents the result of a single test case execution
type TestCaseResult struct {
	TestCaseID   uuid.UUID `json:"testCaseId"`
	Passed       bool      `json:"passed"`
	ActualOutput string    `json:"actualOutput"`
}

// ExecutionResult represents the normalized outcome of one grading call.
// Derived, never mutated after construction.
type ExecutionResult struct {
	SubmissionID      uuid.UUID        `json:"submissionId"`
	StatusID          int              `json:"statusId"`
	StatusDescription string           `json:"statusDescription"`
	Stdout            string           `json:"stdout"`
	Stderr            string           `json:"stderr"`
	CompileOutput     string           `json:"compileOutput"`
	Time              string           `json:"time"`
	Memory            int              `json:"memory"`
	TestCaseResults   []TestCaseResult `json:"testCaseResults"`
	IsCorrect         bool             `json:"isCorrect"`
	CompletedAt       time.Time        `json:"completedAt"`
}
