package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Team, error)
	// UpsertBatch merges every team into the league atomically: either all
	// writes land or none do.
	UpsertBatch(ctx context.Context, leagueID string, teams []Team) error
}
