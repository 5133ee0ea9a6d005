package document

import (
	"context"
	"fmt"

	"github.com/riskibarqy/bet-hub/internal/domain/bet"
	"github.com/riskibarqy/bet-hub/internal/platform/docstore"
)

type BetRepository struct {
	store docstore.Store
}

func NewBetRepository(store docstore.Store) *BetRepository {
	return &BetRepository{store: store}
}

func (r *BetRepository) ListByLeague(ctx context.Context, leagueID string, week int) ([]bet.Bet, error) {
	q := docstore.NewQuery(betsCollection(leagueID))
	if week > 0 {
		q = q.Where("week", week)
	}
	docs, err := r.store.Query(ctx, q.OrderBy(docstore.CreateTimeField, docstore.Asc))
	if err != nil {
		return nil, fmt.Errorf("query bets: %w", err)
	}

	out := make([]bet.Bet, 0, len(docs))
	for _, doc := range docs {
		item, err := betFromDocument(leagueID, doc)
		if err != nil {
			return nil, fmt.Errorf("decode bet %s: %w", doc.ID, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *BetRepository) GetByID(ctx context.Context, leagueID, betID string) (bet.Bet, bool, error) {
	doc, err := r.store.Get(ctx, betsCollection(leagueID), betID)
	if err != nil {
		if isNotFound(err) {
			return bet.Bet{}, false, nil
		}
		return bet.Bet{}, false, fmt.Errorf("get bet: %w", err)
	}

	item, err := betFromDocument(leagueID, doc)
	if err != nil {
		return bet.Bet{}, false, fmt.Errorf("decode bet %s: %w", betID, err)
	}
	return item, true, nil
}

func (r *BetRepository) Create(ctx context.Context, item bet.Bet) (bet.Bet, error) {
	data, err := docstore.Encode(betToDocument(item))
	if err != nil {
		return bet.Bet{}, err
	}

	betID, err := r.store.Add(ctx, betsCollection(item.LeagueID), data)
	if err != nil {
		return bet.Bet{}, fmt.Errorf("add bet: %w", err)
	}

	created, exists, err := r.GetByID(ctx, item.LeagueID, betID)
	if err != nil {
		return bet.Bet{}, err
	}
	if !exists {
		return bet.Bet{}, fmt.Errorf("bet %s missing after create", betID)
	}
	return created, nil
}

func (r *BetRepository) UpdateStatus(ctx context.Context, leagueID, betID string, status bet.Status) error {
	err := r.store.Set(ctx, betsCollection(leagueID), betID, map[string]any{"status": string(status)}, docstore.Merge())
	if err != nil {
		return fmt.Errorf("update bet status: %w", err)
	}
	return nil
}

func (r *BetRepository) Delete(ctx context.Context, leagueID, betID string) error {
	if err := r.store.Delete(ctx, betsCollection(leagueID), betID); err != nil {
		return fmt.Errorf("delete bet: %w", err)
	}
	return nil
}
