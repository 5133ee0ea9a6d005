package cache

import (
	"context"

	"github.com/riskibarqy/bet-hub/internal/domain/league"
	"github.com/riskibarqy/bet-hub/internal/domain/team"
	basecache "github.com/riskibarqy/bet-hub/internal/platform/cache"
)

const (
	leagueListKey      = "league:list"
	leagueByIDPrefix   = "league:id:"
	teamByLeaguePrefix = "team:list:"
)

// LeagueRepository is a read-through cache in front of a league repository.
// Every write drops the keys it could have made stale.
type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	v, err := r.cache.GetOrLoad(ctx, leagueListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.League)
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, leagueByIDPrefix+leagueID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedLeagueByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedLeagueByID)
	return cached.value, cached.exists, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) (league.League, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return league.League{}, err
	}
	r.cache.Delete(ctx, leagueListKey, leagueByIDPrefix+created.ID)
	return created, nil
}

func (r *LeagueRepository) Upsert(ctx context.Context, leagueID string, item league.League) error {
	defer r.invalidate(ctx, leagueID)
	return r.next.Upsert(ctx, leagueID, item)
}

func (r *LeagueRepository) Patch(ctx context.Context, leagueID string, patch league.Patch) error {
	defer r.invalidate(ctx, leagueID)
	return r.next.Patch(ctx, leagueID, patch)
}

func (r *LeagueRepository) Delete(ctx context.Context, leagueID string) error {
	defer r.invalidate(ctx, leagueID)
	defer r.cache.Delete(ctx, teamByLeaguePrefix+leagueID)
	return r.next.Delete(ctx, leagueID)
}

// invalidate runs after failed writes too, since a store error does not
// prove nothing was written.
func (r *LeagueRepository) invalidate(ctx context.Context, leagueID string) {
	r.cache.Delete(ctx, leagueListKey, leagueByIDPrefix+leagueID)
}

type cachedLeagueByID struct {
	value  league.League
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamByLeaguePrefix+leagueID, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) UpsertBatch(ctx context.Context, leagueID string, teams []team.Team) error {
	defer r.cache.Delete(ctx, teamByLeaguePrefix+leagueID)
	return r.next.UpsertBatch(ctx, leagueID, teams)
}
