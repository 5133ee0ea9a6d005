package settlement

import "context"

// Repository describes settlement persistence needs from use cases.
// Settlements are append-only.
type Repository interface {
	Append(ctx context.Context, item Settlement) (string, error)
	// ListByLeague returns snapshots newest first. week <= 0 lists every week.
	ListByLeague(ctx context.Context, leagueID string, week int) ([]Settlement, error)
	GetByID(ctx context.Context, leagueID, settlementID string) (Settlement, bool, error)
}
