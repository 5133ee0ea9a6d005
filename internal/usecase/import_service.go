package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/bet-hub/internal/domain/league"
	"github.com/riskibarqy/bet-hub/internal/domain/provider"
	"github.com/riskibarqy/bet-hub/internal/domain/team"
	"github.com/riskibarqy/bet-hub/internal/platform/logging"
	"github.com/riskibarqy/bet-hub/internal/platform/metrics"
	"github.com/sourcegraph/conc/pool"
)

const (
	importStatusSuccess = "success"
	importStatusFailed  = "failed"

	defaultBulkImportWorkers  = 4
	defaultBulkImportMaxItems = 50
)

type ImportServiceConfig struct {
	BulkWorkers  int
	BulkMaxItems int
}

type BulkImportItem struct {
	ProviderLeagueID string
	TargetLeagueID   string
}

type BulkImportItemResult struct {
	ProviderLeagueID string `json:"providerLeagueId"`
	TargetLeagueID   string `json:"targetLeagueId,omitempty"`
	LeagueID         string `json:"leagueId,omitempty"`
	Status           string `json:"status"`
	TeamsImported    int    `json:"teamsImported"`
	DurationMs       int64  `json:"durationMs"`
	Message          string `json:"message,omitempty"`
}

type BulkImportResult struct {
	Provider     string                 `json:"provider"`
	ItemCount    int                    `json:"itemCount"`
	SuccessCount int                    `json:"successCount"`
	FailedCount  int                    `json:"failedCount"`
	WorkerCount  int                    `json:"workerCount"`
	Items        []BulkImportItemResult `json:"items"`
}

// ImportService drives the import pipeline: concurrent provider fetches,
// normalization, then the writer.
type ImportService struct {
	providers *provider.Registry
	writer    *ImportWriter
	cfg       ImportServiceConfig
	logger    *logging.Logger
	metrics   *metrics.Recorder
	now       func() time.Time
}

func NewImportService(
	providers *provider.Registry,
	leagueRepo league.Repository,
	teamRepo team.Repository,
	cfg ImportServiceConfig,
	logger *logging.Logger,
	recorder *metrics.Recorder,
) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.BulkWorkers <= 0 {
		cfg.BulkWorkers = defaultBulkImportWorkers
	}
	if cfg.BulkMaxItems <= 0 {
		cfg.BulkMaxItems = defaultBulkImportMaxItems
	}

	return &ImportService{
		providers: providers,
		writer:    NewImportWriter(leagueRepo, teamRepo),
		cfg:       cfg,
		logger:    logger,
		metrics:   recorder,
		now:       time.Now,
	}
}

// ImportLeague pulls one provider league and writes it. Any failure is
// returned as *ImportError.
func (s *ImportService) ImportLeague(ctx context.Context, providerName, providerLeagueID, targetLeagueID string) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportLeague",
		attrProvider.String(providerName),
		attrProviderLeagueID.String(providerLeagueID),
	)
	defer span.End()

	p, platform, err := s.resolveProvider(providerName)
	if err != nil {
		return ImportResult{}, err
	}
	providerLeagueID = strings.TrimSpace(providerLeagueID)
	if providerLeagueID == "" {
		return ImportResult{}, fmt.Errorf("%w: providerLeagueId is required", ErrInvalidInput)
	}
	targetLeagueID = strings.TrimSpace(targetLeagueID)

	start := time.Now()
	result, err := s.importLeague(ctx, p, platform, providerLeagueID, targetLeagueID)
	if err != nil {
		failSpan(span, err)
		s.metrics.ObserveImport(p.Name(), importStatusFailed, time.Since(start), 0)
		s.logger.WarnContext(ctx, "league import failed",
			"provider", p.Name(),
			"provider_league_id", providerLeagueID,
			"target_league_id", targetLeagueID,
			"error", err,
		)
		return result, err
	}

	span.SetAttributes(attrLeagueID.String(result.LeagueID), attrTeams.Int(result.TeamsImported))
	s.metrics.ObserveImport(p.Name(), importStatusSuccess, time.Since(start), result.TeamsImported)
	s.logger.InfoContext(ctx, "league imported",
		"provider", p.Name(),
		"provider_league_id", providerLeagueID,
		"league_id", result.LeagueID,
		"teams_imported", result.TeamsImported,
	)
	return result, nil
}

func (s *ImportService) importLeague(
	ctx context.Context,
	p provider.Provider,
	platform league.Platform,
	providerLeagueID, targetLeagueID string,
) (ImportResult, error) {
	var (
		raw     provider.RawLeague
		rosters []provider.RawRoster
		users   []provider.RawUser
	)

	// The three fetches are independent; normalization waits for all of them.
	fetches := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	fetches.Go(func(ctx context.Context) error {
		var err error
		raw, err = p.FetchLeague(ctx, providerLeagueID)
		return err
	})
	fetches.Go(func(ctx context.Context) error {
		var err error
		rosters, err = p.FetchRosters(ctx, providerLeagueID)
		return err
	})
	fetches.Go(func(ctx context.Context) error {
		var err error
		users, err = p.FetchUsers(ctx, providerLeagueID)
		return err
	})
	if err := fetches.Wait(); err != nil {
		return ImportResult{}, &ImportError{
			Provider:         p.Name(),
			ProviderLeagueID: providerLeagueID,
			LeagueID:         targetLeagueID,
			Stage:            ImportStageFetch,
			Err:              err,
		}
	}

	projection := NormalizeImport(ImportSource{
		Platform:         platform,
		DisplayName:      p.DisplayName(),
		ProviderLeagueID: providerLeagueID,
	}, raw, rosters, users, s.now())

	result, err := s.writer.Write(ctx, projection, targetLeagueID)
	if err != nil {
		var importErr *ImportError
		if errors.As(err, &importErr) {
			importErr.Provider = p.Name()
			importErr.ProviderLeagueID = providerLeagueID
			return result, importErr
		}
		return result, &ImportError{Provider: p.Name(), ProviderLeagueID: providerLeagueID, Stage: ImportStageWriteLeague, Err: err}
	}
	return result, nil
}

// ImportLeagues imports several leagues from one provider on a bounded
// worker pool. Item failures are reported per item; the call itself only
// fails on invalid input.
func (s *ImportService) ImportLeagues(ctx context.Context, providerName string, items []BulkImportItem) (BulkImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportLeagues")
	defer span.End()

	p, _, err := s.resolveProvider(providerName)
	if err != nil {
		return BulkImportResult{}, err
	}
	if len(items) == 0 {
		return BulkImportResult{}, fmt.Errorf("%w: at least one league is required", ErrInvalidInput)
	}
	if len(items) > s.cfg.BulkMaxItems {
		return BulkImportResult{}, fmt.Errorf("%w: at most %d leagues per bulk import", ErrInvalidInput, s.cfg.BulkMaxItems)
	}
	for i, item := range items {
		if strings.TrimSpace(item.ProviderLeagueID) == "" {
			return BulkImportResult{}, fmt.Errorf("%w: leagues[%d].providerLeagueId is required", ErrInvalidInput, i)
		}
	}

	workerCount := min(s.cfg.BulkWorkers, len(items))
	result := BulkImportResult{
		Provider:    p.Name(),
		ItemCount:   len(items),
		WorkerCount: workerCount,
		Items:       make([]BulkImportItemResult, len(items)),
	}

	workers, err := ants.NewPool(workerCount)
	if err != nil {
		return BulkImportResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workers.Release()

	var (
		wg           sync.WaitGroup
		successCount atomic.Int32
		failedCount  atomic.Int32
		submitErr    error
	)
	for i, item := range items {
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()

			start := time.Now()
			row := BulkImportItemResult{
				ProviderLeagueID: strings.TrimSpace(item.ProviderLeagueID),
				TargetLeagueID:   strings.TrimSpace(item.TargetLeagueID),
			}
			imported, err := s.ImportLeague(ctx, providerName, item.ProviderLeagueID, item.TargetLeagueID)
			row.LeagueID = imported.LeagueID
			row.TeamsImported = imported.TeamsImported
			row.DurationMs = time.Since(start).Milliseconds()
			if err != nil {
				row.Status = importStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			} else {
				row.Status = importStatusSuccess
				successCount.Add(1)
			}
			result.Items[i] = row
		}); err != nil {
			wg.Done()
			submitErr = fmt.Errorf("submit import to worker pool: %w", err)
			break
		}
	}
	wg.Wait()
	if submitErr != nil {
		return BulkImportResult{}, submitErr
	}

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func (s *ImportService) resolveProvider(name string) (provider.Provider, league.Platform, error) {
	p, ok := s.providers.Get(name)
	if !ok {
		return nil, "", fmt.Errorf("%w: unknown provider %q", ErrInvalidInput, name)
	}
	platform, err := league.ParsePlatform(p.Name())
	if err != nil || platform == league.PlatformNone {
		return nil, "", fmt.Errorf("%w: provider %q has no league platform", ErrInvalidInput, p.Name())
	}
	return p, platform, nil
}
