package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/bet-hub/external/sleeper"
	"github.com/riskibarqy/bet-hub/external/unsupported"
	"github.com/riskibarqy/bet-hub/internal/config"
	"github.com/riskibarqy/bet-hub/internal/domain/league"
	"github.com/riskibarqy/bet-hub/internal/domain/provider"
	"github.com/riskibarqy/bet-hub/internal/domain/team"
	"github.com/riskibarqy/bet-hub/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/bet-hub/internal/infrastructure/repository/document"
	"github.com/riskibarqy/bet-hub/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/bet-hub/internal/platform/cache"
	"github.com/riskibarqy/bet-hub/internal/platform/logging"
	"github.com/riskibarqy/bet-hub/internal/platform/metrics"
	"github.com/riskibarqy/bet-hub/internal/platform/resilience"
	"github.com/riskibarqy/bet-hub/internal/usecase"
)

// NewHTTPServer wires the document store, providers and services behind the
// HTTP router. The returned cleanup releases the store and must run after
// the server has shut down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	store, closeStore, err := openDocstore(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var recorder *metrics.Recorder
	if cfg.MetricsEnabled {
		recorder = metrics.NewRecorder()
	}

	var (
		leagueRepo league.Repository = document.NewLeagueRepository(store)
		teamRepo   team.Repository   = document.NewTeamRepository(store)
	)
	betRepo := document.NewBetRepository(store)
	settlementRepo := document.NewSettlementRepository(store)

	if cfg.CacheEnabled {
		shared := basecache.NewStore(cfg.CacheTTL)
		leagueRepo = cache.NewLeagueRepository(leagueRepo, shared)
		teamRepo = cache.NewTeamRepository(teamRepo, shared)
		logger.Info("repository cache enabled", "ttl", cfg.CacheTTL.String())
	}

	providers := provider.NewRegistry(
		sleeper.NewClient(sleeper.ClientConfig{
			BaseURL:            cfg.SleeperBaseURL,
			Timeout:            cfg.SleeperTimeout,
			RateLimitPerMinute: cfg.SleeperRateLimitPerMinute,
			Logger:             logger,
			Metrics:            recorder,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.SleeperCircuitEnabled,
				FailureThreshold: cfg.SleeperCircuitFailureCount,
				OpenTimeout:      cfg.SleeperCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.SleeperCircuitHalfOpenMaxReq,
			},
		}),
		unsupported.ESPN(),
		unsupported.Yahoo(),
	)

	importSvc := usecase.NewImportService(
		providers,
		leagueRepo,
		teamRepo,
		usecase.ImportServiceConfig{
			BulkWorkers:  cfg.ImportBulkWorkers,
			BulkMaxItems: cfg.ImportBulkMaxItems,
		},
		logger,
		recorder,
	)
	settlementSvc := usecase.NewSettlementService(leagueRepo, betRepo, settlementRepo, logger, recorder)
	leagueSvc := usecase.NewLeagueService(leagueRepo, teamRepo)
	betSvc := usecase.NewBetService(leagueRepo, betRepo)

	handler := httpapi.NewHandler(importSvc, settlementSvc, leagueSvc, betSvc, logger)

	var metricsHandler http.Handler
	if recorder != nil {
		metricsHandler = recorder.Handler()
	}
	router := httpapi.NewRouter(handler, metricsHandler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("http server wired",
		"docstore", cfg.DocstoreDriver,
		"providers", providers.Names(),
		"metrics_enabled", cfg.MetricsEnabled,
	)

	return server, closeStore, nil
}
