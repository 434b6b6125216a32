package config

import "os"

type AppConfig struct {
	DebugMode        bool
	SandboxConfig    *SandboxConfig
	GenerativeConfig *GenerativeConfig
	PlatformConfig   *PlatformConfig
	ProbeCfg         *ProbeCfg
	RedisConfig      *RedisConfig
	PostgresConfig   *PostgresConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:        os.Getenv("DEBUG_MODE") == "true",
		SandboxConfig:    NewSandboxConfig(),
		GenerativeConfig: NewGenerativeConfig(),
		PlatformConfig:   NewPlatformConfig(),
		ProbeCfg:         NewProbeCfg(),
		RedisConfig:      NewRedisConfig(),
		PostgresConfig:   NewPostgresConfig(),
	}
}

// getEnv gets an environment variable with a fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
