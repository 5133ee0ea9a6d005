package document

import (
	"context"
	"fmt"

	"github.com/riskibarqy/bet-hub/internal/domain/settlement"
	"github.com/riskibarqy/bet-hub/internal/platform/docstore"
)

// SettlementRepository stores snapshots under leagues/{id}/payouts. It only
// ever adds documents.
type SettlementRepository struct {
	store docstore.Store
}

func NewSettlementRepository(store docstore.Store) *SettlementRepository {
	return &SettlementRepository{store: store}
}

func (r *SettlementRepository) Append(ctx context.Context, item settlement.Settlement) (string, error) {
	data, err := docstore.Encode(settlementToDocument(item))
	if err != nil {
		return "", err
	}

	settlementID, err := r.store.Add(ctx, payoutsCollection(item.LeagueID), data)
	if err != nil {
		return "", fmt.Errorf("add settlement: %w", err)
	}
	return settlementID, nil
}

func (r *SettlementRepository) ListByLeague(ctx context.Context, leagueID string, week int) ([]settlement.Settlement, error) {
	q := docstore.NewQuery(payoutsCollection(leagueID))
	if week > 0 {
		q = q.Where("week", week)
	}
	docs, err := r.store.Query(ctx, q.OrderBy(docstore.CreateTimeField, docstore.Desc))
	if err != nil {
		return nil, fmt.Errorf("query settlements: %w", err)
	}

	out := make([]settlement.Settlement, 0, len(docs))
	for _, doc := range docs {
		item, err := settlementFromDocument(leagueID, doc)
		if err != nil {
			return nil, fmt.Errorf("decode settlement %s: %w", doc.ID, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *SettlementRepository) GetByID(ctx context.Context, leagueID, settlementID string) (settlement.Settlement, bool, error) {
	doc, err := r.store.Get(ctx, payoutsCollection(leagueID), settlementID)
	if err != nil {
		if isNotFound(err) {
			return settlement.Settlement{}, false, nil
		}
		return settlement.Settlement{}, false, fmt.Errorf("get settlement: %w", err)
	}

	item, err := settlementFromDocument(leagueID, doc)
	if err != nil {
		return settlement.Settlement{}, false, fmt.Errorf("decode settlement %s: %w", settlementID, err)
	}
	return item, true, nil
}
