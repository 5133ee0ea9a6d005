package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/bet-hub/internal/domain/league"
	"github.com/riskibarqy/bet-hub/internal/domain/team"
)

type CreateLeagueInput struct {
	Name     string
	Settings map[string]any
	Metadata league.Metadata
}

type LeagueService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
}

func NewLeagueService(leagueRepo league.Repository, teamRepo team.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return item, nil
}

// CreateLeague stores a manually managed league (platform none).
func (s *LeagueService) CreateLeague(ctx context.Context, input CreateLeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateLeague")
	defer span.End()

	item := league.League{
		Name:     strings.TrimSpace(input.Name),
		Platform: league.PlatformNone,
		Settings: nonNilMap(input.Settings),
		Metadata: input.Metadata,
	}
	if err := item.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.leagueRepo.Create(ctx, item)
	if err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}
	return created, nil
}

func (s *LeagueService) PatchLeague(ctx context.Context, leagueID string, patch league.Patch) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.PatchLeague")
	defer span.End()

	if patch.IsEmpty() {
		return league.League{}, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return league.League{}, fmt.Errorf("%w: league name must not be empty", ErrInvalidInput)
		}
		patch.Name = &name
	}

	if _, err := s.GetLeague(ctx, leagueID); err != nil {
		return league.League{}, err
	}
	leagueID = strings.TrimSpace(leagueID)
	if err := s.leagueRepo.Patch(ctx, leagueID, patch); err != nil {
		return league.League{}, fmt.Errorf("patch league: %w", err)
	}

	return s.GetLeague(ctx, leagueID)
}

// DeleteLeague removes the league together with its teams, bets and payouts.
func (s *LeagueService) DeleteLeague(ctx context.Context, leagueID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.DeleteLeague")
	defer span.End()

	if _, err := s.GetLeague(ctx, leagueID); err != nil {
		return err
	}
	if err := s.leagueRepo.Delete(ctx, strings.TrimSpace(leagueID)); err != nil {
		return fmt.Errorf("delete league: %w", err)
	}
	return nil
}

func (s *LeagueService) ListTeamsByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListTeamsByLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}

	return teams, nil
}
