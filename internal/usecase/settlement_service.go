package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/bet-hub/internal/domain/bet"
	"github.com/riskibarqy/bet-hub/internal/domain/league"
	"github.com/riskibarqy/bet-hub/internal/domain/settlement"
	"github.com/riskibarqy/bet-hub/internal/platform/logging"
	"github.com/riskibarqy/bet-hub/internal/platform/metrics"
)

const (
	settlementOutcomeSuccess = "success"
	settlementOutcomeFailed  = "failed"
)

type SettlementResult struct {
	ID        string              `json:"id"`
	LeagueID  string              `json:"leagueId"`
	Week      int                 `json:"week"`
	Payouts   []settlement.Payout `json:"payouts"`
	BetsCount int                 `json:"betsCount"`
}

type SettlementService struct {
	leagueRepo     league.Repository
	betRepo        bet.Repository
	settlementRepo settlement.Repository
	writer         *SettlementWriter
	logger         *logging.Logger
	metrics        *metrics.Recorder
}

func NewSettlementService(
	leagueRepo league.Repository,
	betRepo bet.Repository,
	settlementRepo settlement.Repository,
	logger *logging.Logger,
	recorder *metrics.Recorder,
) *SettlementService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SettlementService{
		leagueRepo:     leagueRepo,
		betRepo:        betRepo,
		settlementRepo: settlementRepo,
		writer:         NewSettlementWriter(settlementRepo),
		logger:         logger,
		metrics:        recorder,
	}
}

// SettlePeriod reads every bet of the week once, aggregates net payouts and
// appends a new snapshot.
func (s *SettlementService) SettlePeriod(ctx context.Context, leagueID string, week int) (SettlementResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettlementService.SettlePeriod",
		attrLeagueID.String(leagueID),
		attrWeek.Int(week),
	)
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return SettlementResult{}, fmt.Errorf("%w: leagueId is required", ErrInvalidInput)
	}
	if week <= 0 {
		return SettlementResult{}, fmt.Errorf("%w: week must be greater than zero", ErrInvalidInput)
	}

	result, err := s.settle(ctx, leagueID, week)
	if err != nil {
		failSpan(span, err)
		s.metrics.ObserveSettlement(settlementOutcomeFailed, 0)
		return SettlementResult{}, err
	}

	span.SetAttributes(attrPayouts.Int(len(result.Payouts)))
	s.metrics.ObserveSettlement(settlementOutcomeSuccess, len(result.Payouts))
	s.logger.InfoContext(ctx, "settlement written",
		"league_id", leagueID,
		"week", week,
		"settlement_id", result.ID,
		"bets", result.BetsCount,
		"payouts", len(result.Payouts),
	)
	return result, nil
}

func (s *SettlementService) settle(ctx context.Context, leagueID string, week int) (SettlementResult, error) {
	if err := s.requireLeague(ctx, leagueID); err != nil {
		return SettlementResult{}, err
	}

	bets, err := s.betRepo.ListByLeague(ctx, leagueID, week)
	if err != nil {
		return SettlementResult{}, fmt.Errorf("list bets: %w", err)
	}

	saved, err := s.writer.Persist(ctx, leagueID, week, AggregatePayouts(bets))
	if err != nil {
		return SettlementResult{}, err
	}

	return SettlementResult{
		ID:        saved.ID,
		LeagueID:  leagueID,
		Week:      week,
		Payouts:   saved.Payouts,
		BetsCount: len(bets),
	}, nil
}

func (s *SettlementService) ListSettlements(ctx context.Context, leagueID string, week int) ([]settlement.Settlement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettlementService.ListSettlements")
	defer span.End()

	if err := s.requireLeague(ctx, leagueID); err != nil {
		return nil, err
	}
	if week < 0 {
		return nil, fmt.Errorf("%w: week must not be negative", ErrInvalidInput)
	}

	items, err := s.settlementRepo.ListByLeague(ctx, strings.TrimSpace(leagueID), week)
	if err != nil {
		return nil, fmt.Errorf("list settlements: %w", err)
	}
	return items, nil
}

func (s *SettlementService) GetSettlement(ctx context.Context, leagueID, settlementID string) (settlement.Settlement, error) {
	leagueID = strings.TrimSpace(leagueID)
	settlementID = strings.TrimSpace(settlementID)
	if leagueID == "" || settlementID == "" {
		return settlement.Settlement{}, fmt.Errorf("%w: league id and payout id are required", ErrInvalidInput)
	}

	item, exists, err := s.settlementRepo.GetByID(ctx, leagueID, settlementID)
	if err != nil {
		return settlement.Settlement{}, fmt.Errorf("get settlement: %w", err)
	}
	if !exists {
		return settlement.Settlement{}, fmt.Errorf("%w: payout=%s", ErrNotFound, settlementID)
	}
	return item, nil
}

func (s *SettlementService) requireLeague(ctx context.Context, leagueID string) error {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	return nil
}
