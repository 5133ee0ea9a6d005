package bet

import "context"

// Repository describes bet persistence needs from use cases.
type Repository interface {
	// ListByLeague returns bets ordered by creation time. week <= 0 lists
	// every week.
	ListByLeague(ctx context.Context, leagueID string, week int) ([]Bet, error)
	GetByID(ctx context.Context, leagueID, betID string) (Bet, bool, error)
	Create(ctx context.Context, item Bet) (Bet, error)
	UpdateStatus(ctx context.Context, leagueID, betID string, status Status) error
	Delete(ctx context.Context, leagueID, betID string) error
}
