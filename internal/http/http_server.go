package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/elp-2025.net/internal/core/ports/primary"
	"gitlab.com/elp-2025.net/internal/core/ports/secondary"
	executionsvc "gitlab.com/elp-2025.net/internal/core/services/execution"
	fraudsvc "gitlab.com/elp-2025.net/internal/core/services/fraud"
	"gitlab.com/elp-2025.net/internal/core/services/generation"
	hintsvc "gitlab.com/elp-2025.net/internal/core/services/hint"
	"gitlab.com/elp-2025.net/internal/handlers/content"
	"gitlab.com/elp-2025.net/internal/handlers/execution"
	"gitlab.com/elp-2025.net/internal/handlers/hints"
	"gitlab.com/elp-2025.net/internal/handlers/platformops"
)

type ServiceProvider struct {
	executionService  executionsvc.IExecutionService
	generationService generation.IGenerationService
	hintService       hintsvc.IHintService
	fraudService      fraudsvc.IFraudService
	platformClient    secondary.PlatformClient
}

func NewServiceProvider(
	executionService executionsvc.IExecutionService,
	generationService generation.IGenerationService,
	hintService hintsvc.IHintService,
	fraudService fraudsvc.IFraudService,
	platformClient secondary.PlatformClient,
) *ServiceProvider {
	return &ServiceProvider{
		executionService:  executionService,
		generationService: generationService,
		hintService:       hintService,
		fraudService:      fraudService,
		platformClient:    platformClient,
	}
}

type Server struct {
	router          *mux.Router
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	execution.NewExecutionHandler(s.ServiceProvider.executionService, s.logger).RegisterRoutes(r)
	hints.NewHintHandler(s.ServiceProvider.hintService, s.logger).RegisterRoutes(r)
	content.NewContentHandler(s.ServiceProvider.generationService, s.ServiceProvider.fraudService, s.logger).RegisterRoutes(r)
	platformops.NewPlatformHandler(s.ServiceProvider.platformClient, s.logger).RegisterRoutes(r)
	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	// Set up server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

}

func (s *Server) Stop() {
	s.logger.Info("Shutting down http server...")
}
