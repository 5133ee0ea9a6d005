package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/bet-hub/internal/domain/bet"
	"github.com/riskibarqy/bet-hub/internal/domain/league"
)

type CreateBetInput struct {
	LeagueID     string
	Week         int
	Status       string
	Description  string
	Participants []bet.Participant
}

type BetService struct {
	leagueRepo league.Repository
	betRepo    bet.Repository
}

func NewBetService(leagueRepo league.Repository, betRepo bet.Repository) *BetService {
	return &BetService{
		leagueRepo: leagueRepo,
		betRepo:    betRepo,
	}
}

func (s *BetService) CreateBet(ctx context.Context, input CreateBetInput) (bet.Bet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.CreateBet")
	defer span.End()

	status := bet.StatusOpen
	if strings.TrimSpace(input.Status) != "" {
		parsed, err := bet.ParseStatus(input.Status)
		if err != nil {
			return bet.Bet{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		status = parsed
	}

	participants := make([]bet.Participant, 0, len(input.Participants))
	for _, p := range input.Participants {
		p.UserID = strings.TrimSpace(p.UserID)
		p.Result = bet.Result(strings.ToLower(strings.TrimSpace(string(p.Result))))
		participants = append(participants, p)
	}

	item := bet.Bet{
		LeagueID:     strings.TrimSpace(input.LeagueID),
		Week:         input.Week,
		Status:       status,
		Description:  strings.TrimSpace(input.Description),
		Participants: participants,
	}
	if err := item.Validate(); err != nil {
		return bet.Bet{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.requireLeague(ctx, item.LeagueID); err != nil {
		return bet.Bet{}, err
	}

	created, err := s.betRepo.Create(ctx, item)
	if err != nil {
		return bet.Bet{}, fmt.Errorf("create bet: %w", err)
	}
	return created, nil
}

// ListBets lists a league's bets in creation order. week 0 lists all weeks.
func (s *BetService) ListBets(ctx context.Context, leagueID string, week int) ([]bet.Bet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.ListBets")
	defer span.End()

	if week < 0 {
		return nil, fmt.Errorf("%w: week must not be negative", ErrInvalidInput)
	}
	if err := s.requireLeague(ctx, leagueID); err != nil {
		return nil, err
	}

	items, err := s.betRepo.ListByLeague(ctx, strings.TrimSpace(leagueID), week)
	if err != nil {
		return nil, fmt.Errorf("list bets: %w", err)
	}
	return items, nil
}

func (s *BetService) GetBet(ctx context.Context, leagueID, betID string) (bet.Bet, error) {
	leagueID = strings.TrimSpace(leagueID)
	betID = strings.TrimSpace(betID)
	if leagueID == "" || betID == "" {
		return bet.Bet{}, fmt.Errorf("%w: league id and bet id are required", ErrInvalidInput)
	}

	item, exists, err := s.betRepo.GetByID(ctx, leagueID, betID)
	if err != nil {
		return bet.Bet{}, fmt.Errorf("get bet: %w", err)
	}
	if !exists {
		return bet.Bet{}, fmt.Errorf("%w: bet=%s", ErrNotFound, betID)
	}
	return item, nil
}

func (s *BetService) UpdateBetStatus(ctx context.Context, leagueID, betID, status string) (bet.Bet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.UpdateBetStatus")
	defer span.End()

	parsed, err := bet.ParseStatus(status)
	if err != nil {
		return bet.Bet{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	item, err := s.GetBet(ctx, leagueID, betID)
	if err != nil {
		return bet.Bet{}, err
	}
	if err := s.betRepo.UpdateStatus(ctx, item.LeagueID, item.ID, parsed); err != nil {
		return bet.Bet{}, fmt.Errorf("update bet status: %w", err)
	}

	item.Status = parsed
	return item, nil
}

func (s *BetService) DeleteBet(ctx context.Context, leagueID, betID string) error {
	item, err := s.GetBet(ctx, leagueID, betID)
	if err != nil {
		return err
	}
	if err := s.betRepo.Delete(ctx, item.LeagueID, item.ID); err != nil {
		return fmt.Errorf("delete bet: %w", err)
	}
	return nil
}

func (s *BetService) requireLeague(ctx context.Context, leagueID string) error {
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
