package document

import (
	"context"
	"fmt"

	"github.com/riskibarqy/bet-hub/internal/domain/league"
	"github.com/riskibarqy/bet-hub/internal/platform/docstore"
)

type LeagueRepository struct {
	store docstore.Store
}

func NewLeagueRepository(store docstore.Store) *LeagueRepository {
	return &LeagueRepository{store: store}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	docs, err := r.store.Query(ctx, docstore.NewQuery(leaguesCollection).OrderBy("name", docstore.Asc))
	if err != nil {
		return nil, fmt.Errorf("query leagues: %w", err)
	}

	out := make([]league.League, 0, len(docs))
	for _, doc := range docs {
		item, err := leagueFromDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("decode league %s: %w", doc.ID, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	doc, err := r.store.Get(ctx, leaguesCollection, leagueID)
	if err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league: %w", err)
	}

	item, err := leagueFromDocument(doc)
	if err != nil {
		return league.League{}, false, fmt.Errorf("decode league %s: %w", leagueID, err)
	}
	return item, true, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) (league.League, error) {
	data, err := docstore.Encode(leagueToDocument(item))
	if err != nil {
		return league.League{}, err
	}

	leagueID, err := r.store.Add(ctx, leaguesCollection, data)
	if err != nil {
		return league.League{}, fmt.Errorf("add league: %w", err)
	}

	created, exists, err := r.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, err
	}
	if !exists {
		return league.League{}, fmt.Errorf("league %s missing after create", leagueID)
	}
	return created, nil
}

func (r *LeagueRepository) Upsert(ctx context.Context, leagueID string, item league.League) error {
	data, err := docstore.Encode(leagueToDocument(item))
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, leaguesCollection, leagueID, data, docstore.Merge()); err != nil {
		return fmt.Errorf("merge league: %w", err)
	}
	return nil
}

func (r *LeagueRepository) Patch(ctx context.Context, leagueID string, patch league.Patch) error {
	if err := r.store.Set(ctx, leaguesCollection, leagueID, patchToData(patch), docstore.Merge()); err != nil {
		return fmt.Errorf("patch league: %w", err)
	}
	return nil
}

// Delete drops the league and every document in its child collections in
// a single batch.
func (r *LeagueRepository) Delete(ctx context.Context, leagueID string) error {
	batch := r.store.Batch()
	for _, collection := range []string{teamsCollection(leagueID), betsCollection(leagueID), payoutsCollection(leagueID)} {
		docs, err := r.store.Query(ctx, docstore.NewQuery(collection))
		if err != nil {
			return fmt.Errorf("query %s: %w", collection, err)
		}
		for _, doc := range docs {
			batch.Delete(collection, doc.ID)
		}
	}
	batch.Delete(leaguesCollection, leagueID)

	if err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("delete league: %w", err)
	}
	return nil
}
