package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/elp-2025.net/internal/adapter/httpclient/generative"
	"gitlab.com/elp-2025.net/internal/adapter/httpclient/platform"
	"gitlab.com/elp-2025.net/internal/adapter/httpclient/sandbox"
	"gitlab.com/elp-2025.net/internal/adapter/postgres/hintrepository"
	"gitlab.com/elp-2025.net/internal/adapter/postgres/resultrepository"
	"gitlab.com/elp-2025.net/internal/adapter/redis/hintport"
	"gitlab.com/elp-2025.net/internal/config"
	"gitlab.com/elp-2025.net/internal/core/services/execution"
	"gitlab.com/elp-2025.net/internal/core/services/fraud"
	"gitlab.com/elp-2025.net/internal/core/services/generation"
	"gitlab.com/elp-2025.net/internal/core/services/hint"
	logger2 "gitlab.com/elp-2025.net/internal/global/logger"
	http2 "gitlab.com/elp-2025.net/internal/http"
	"gitlab.com/elp-2025.net/internal/probeengine"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting orchestration service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})

	// SECONDARY PORTS
	sandboxClient := sandbox.NewClient(sysCfg.SandboxConfig, logger)
	generativeClient := generative.NewClient(sysCfg.GenerativeConfig, logger)
	platformClient := platform.NewClient(sysCfg.PlatformConfig, logger)
	hintCache := hintport.NewHintCache(redisClient, logger)
	hintRepo := hintrepository.NewHintRepository(db, logger)
	resultRepo := resultrepository.NewResultRepository(db, logger)

	// services
	executionSvc := execution.NewExecutionService(sandboxClient, resultRepo, logger, sysCfg.SandboxConfig)
	generationSvc := generation.NewGenerationService(generativeClient, logger, sysCfg.GenerativeConfig)
	hintSvc := hint.NewHintService(hintRepo, hintCache, generationSvc, logger)
	fraudSvc := fraud.NewFraudService(generationSvc, logger)
	serviceProvider := http2.NewServiceProvider(executionSvc, generationSvc, hintSvc, fraudSvc, platformClient)

	// server
	httServer := http2.NewServer(8082, "orchestration", *serviceProvider, logger)
	err = httServer.Init()
	if err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httServer.Start(ctxBg)

	probeEngine := probeengine.NewProbeEngine(sysCfg.ProbeCfg, []probeengine.Target{
		{Name: "sandbox", URL: sysCfg.SandboxConfig.BaseURL + "/languages"},
		{Name: "analytics", URL: sysCfg.PlatformConfig.AnalyticsURL + "/health"},
		{Name: "catalog", URL: sysCfg.PlatformConfig.CatalogURL + "/health"},
		{Name: "assessment", URL: sysCfg.PlatformConfig.AssessmentURL + "/health"},
		{Name: "content-studio", URL: sysCfg.PlatformConfig.ContentStudioURL + "/health"},
		{Name: "rag-chat", URL: sysCfg.PlatformConfig.ChatURL + "/health"},
	}, logger)
	if !sysCfg.DebugMode {
		probeEngine.StartDependencyProbe(ctxBg)
	}

	<-quit
	logger.Info("Shutting down server...")

	_, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httServer.Stop()
	redisClient.Close()
	db.Close()

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
