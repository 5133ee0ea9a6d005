package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	// Create stores a new league under a generated id and returns it.
	Create(ctx context.Context, item League) (League, error)
	// Upsert merges item into the league stored at leagueID, creating it
	// when missing. Fields the league carries that item does not are kept.
	Upsert(ctx context.Context, leagueID string, item League) error
	Patch(ctx context.Context, leagueID string, patch Patch) error
	// Delete removes the league with its teams, bets and settlements.
	Delete(ctx context.Context, leagueID string) error
}
