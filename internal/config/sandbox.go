package config

import (
	"os"
	"strconv"
	"time"
)

// SandboxConfig holds the code-sandbox endpoint and the polling budget.
// Poll attempts and interval are configurable so tests can run with
// accelerated clocks.
type SandboxConfig struct {
	BaseURL          string
	APIKey           string
	CPUTimeLimitSec  int
	MemoryLimitKB    int
	WallTimeLimitSec int
	PollAttempts     int
	PollInterval     time.Duration
	RequestTimeout   time.Duration
}

func NewSandboxConfig() *SandboxConfig {
	attempts, err := strconv.Atoi(os.Getenv("SANDBOX_POLL_ATTEMPTS"))
	if err != nil {
		attempts = 10
	}
	intervalMs, err := strconv.Atoi(os.Getenv("SANDBOX_POLL_INTERVAL_MS"))
	if err != nil {
		intervalMs = 1000
	}
	return &SandboxConfig{
		BaseURL:          getEnv("SANDBOX_BASE_URL", "http://localhost:2358"),
		APIKey:           os.Getenv("SANDBOX_API_KEY"),
		CPUTimeLimitSec:  5,
		MemoryLimitKB:    256000,
		WallTimeLimitSec: 5,
		PollAttempts:     attempts,
		PollInterval:     time.Duration(intervalMs) * time.Millisecond,
		RequestTimeout:   10 * time.Second,
	}
}
