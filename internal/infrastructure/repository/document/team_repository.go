package document

import (
	"context"
	"fmt"

	"github.com/riskibarqy/bet-hub/internal/domain/team"
	"github.com/riskibarqy/bet-hub/internal/platform/docstore"
)

type TeamRepository struct {
	store docstore.Store
}

func NewTeamRepository(store docstore.Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	docs, err := r.store.Query(ctx, docstore.NewQuery(teamsCollection(leagueID)).OrderBy("rosterId", docstore.Asc))
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}

	out := make([]team.Team, 0, len(docs))
	for _, doc := range docs {
		item, err := teamFromDocument(leagueID, doc)
		if err != nil {
			return nil, fmt.Errorf("decode team %s: %w", doc.ID, err)
		}
		out = append(out, item)
	}
	return out, nil
}

// UpsertBatch merges each team into the document keyed by Team.Key.
func (r *TeamRepository) UpsertBatch(ctx context.Context, leagueID string, teams []team.Team) error {
	if len(teams) == 0 {
		return nil
	}

	collection := teamsCollection(leagueID)
	batch := r.store.Batch()
	for _, item := range teams {
		data, err := docstore.Encode(teamToDocument(item))
		if err != nil {
			return err
		}
		batch.Set(collection, item.Key(), data, docstore.Merge())
	}

	if err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("commit team batch: %w", err)
	}
	return nil
}
