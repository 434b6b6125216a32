package config

import (
	"os"
	"time"
)

// GenerativeConfig holds the generative content service endpoint and the
// per-capability call timeouts.
type GenerativeConfig struct {
	BaseURL            string
	APIKey             string
	CodingBatchTimeout time.Duration
	TheoryBatchTimeout time.Duration
	FeedbackTimeout    time.Duration
	HintTimeout        time.Duration
	FraudTimeout       time.Duration
}

func NewGenerativeConfig() *GenerativeConfig {
	return &GenerativeConfig{
		BaseURL:            getEnv("GENAI_BASE_URL", "https://generativelanguage.googleapis.com"),
		APIKey:             os.Getenv("GENAI_API_KEY"),
		CodingBatchTimeout: 30 * time.Second,
		TheoryBatchTimeout: 10 * time.Second,
		FeedbackTimeout:    5 * time.Second,
		HintTimeout:        5 * time.Second,
		FraudTimeout:       3 * time.Second,
	}
}
