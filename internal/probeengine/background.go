package probeengine

import (
	"context"
	"net/http"
	"time"

	"gitlab.com/elp-2025.net/internal/config"
	"gitlab.com/elp-2025.net/internal/core/ports/primary"
)

// Target is one external dependency the engine checks.
type Target struct {
	Name string
	URL  string
}

// ProbeEngine periodically checks the external dependencies and logs when
// any of them is degraded, so operators can spot fallback mode without
// waiting for user traffic.
type ProbeEngine struct {
	ProbeCfg   *config.ProbeCfg
	targets    []Target
	httpClient *http.Client
	logger     primary.Logger
}

func NewProbeEngine(
	ProbeCfg *config.ProbeCfg,
	targets []Target,
	logger primary.Logger,
) *ProbeEngine {
	return &ProbeEngine{
		ProbeCfg:   ProbeCfg,
		targets:    targets,
		httpClient: &http.Client{Timeout: 2 * time.Second},
		logger:     logger,
	}
}

// StartDependencyProbe runs the probe loop until ctx is cancelled.
func (e *ProbeEngine) StartDependencyProbe(ctx context.Context) {
	ticker := time.NewTicker(e.ProbeCfg.ProbeInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				e.probeAll(ctx)
			}
		}
	}()
}

func (e *ProbeEngine) probeAll(ctx context.Context) {
	for _, target := range e.targets {
		if err := e.probe(ctx, target); err != nil {
			e.logger.Warn("Dependency degraded, fallbacks will serve its traffic",
				"dependency", target.Name,
				"error", err)
			continue
		}
		e.logger.Debug("Dependency healthy", "dependency", target.Name)
	}
}

func (e *ProbeEngine) probe(ctx context.Context, target Target) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.URL, nil)
	if err != nil {
		return err
	}
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
