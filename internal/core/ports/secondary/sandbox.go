package secondary

import "context"

// SandboxSubmission is the payload sent to the code-sandbox service.
type SandboxSubmission struct {
	SourceCode     string `json:"source_code"`
	LanguageID     int    `json:"language_id"`
	Stdin          string `json:"stdin"`
	ExpectedOutput string `json:"expected_output"`
	CPUTimeLimit   int    `json:"cpu_time_limit"`
	MemoryLimit    int    `json:"memory_limit"`
	WallTimeLimit  int    `json:"wall_time_limit"`
}

// SandboxStatus is the sandbox-side execution state. ID 3 is terminal,
// 1-2 mean still queued or processing.
type SandboxStatus struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// SandboxResult is one poll response for a submission token.
type SandboxResult struct {
	Status        SandboxStatus `json:"status"`
	Stdout        string        `json:"stdout"`
	Stderr        string        `json:"stderr"`
	CompileOutput string        `json:"compile_output"`
	Time          string        `json:"time"`
	Memory        int           `json:"memory"`
}

// SandboxClient is the boundary to the remote code-execution sandbox.
type SandboxClient interface {
	// Submit issues a submission and returns its polling token.
	Submit(ctx context.Context, submission *SandboxSubmission) (string, error)

	// GetSubmission polls a submission by token.
	GetSubmission(ctx context.Context, token string) (*SandboxResult, error)
}
