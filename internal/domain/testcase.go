package domain

import "github.com/google/uuid"

// TestCase represents a test case for code execution
type TestCase struct {
	ID             uuid.UUID `json:"id"`
	Input          string    `json:"input"`
	ExpectedOutput string    `json:"expected_output"`
	IsHidden       bool      `json:"is_hidden"`
}
