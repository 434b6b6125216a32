package config

import (
	"os"
	"strconv"
	"time"
)

// PlatformConfig holds the sibling microservice endpoints and the service
// credential used to call them.
type PlatformConfig struct {
	AnalyticsURL     string
	CatalogURL       string
	AssessmentURL    string
	ContentStudioURL string
	ChatURL          string

	ServiceName   string
	ServiceSecret string

	// OAuth2 client-credentials mode for the content studio.
	OAuthTokenURL     string
	OAuthClientID     string
	OAuthClientSecret string

	DefaultTimeout time.Duration
}

func NewPlatformConfig() *PlatformConfig {
	return &PlatformConfig{
		AnalyticsURL:      getEnv("ANALYTICS_SVC_URL", "http://localhost:8091"),
		CatalogURL:        getEnv("CATALOG_SVC_URL", "http://localhost:8092"),
		AssessmentURL:     getEnv("ASSESSMENT_SVC_URL", "http://localhost:8093"),
		ContentStudioURL:  getEnv("CONTENT_STUDIO_SVC_URL", "http://localhost:8094"),
		ChatURL:           getEnv("RAG_CHAT_SVC_URL", "http://localhost:8095"),
		ServiceName:       getEnv("SERVICE_NAME", "orchestration"),
		ServiceSecret:     os.Getenv("SERVICE_SECRET"),
		OAuthTokenURL:     os.Getenv("CONTENT_STUDIO_TOKEN_URL"),
		OAuthClientID:     os.Getenv("CONTENT_STUDIO_CLIENT_ID"),
		OAuthClientSecret: os.Getenv("CONTENT_STUDIO_CLIENT_SECRET"),
		DefaultTimeout:    5 * time.Second,
	}
}

// ProbeCfg holds the background dependency-probe interval.
type ProbeCfg struct {
	ProbeInterval time.Duration
}

func NewProbeCfg() *ProbeCfg {
	probeIntervalSec := os.Getenv("DEPENDENCY_PROBE_INTERVAL_SEC")
	varInt, err := strconv.Atoi(probeIntervalSec)
	if err != nil {
		varInt = 60
	}
	return &ProbeCfg{
		ProbeInterval: time.Duration(varInt) * time.Second,
	}
}
