package document

import (
	"time"

	"github.com/riskibarqy/bet-hub/internal/domain/settlement"
	"github.com/riskibarqy/bet-hub/internal/platform/docstore"
)

type settlementDocument struct {
	Week      int              `json:"week"`
	Payouts   []payoutDocument `json:"payouts"`
	CreatedAt time.Time        `json:"createdAt"`
}

type payoutDocument struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
}

func settlementToDocument(item settlement.Settlement) settlementDocument {
	row := settlementDocument{
		Week:      item.Week,
		Payouts:   make([]payoutDocument, 0, len(item.Payouts)),
		CreatedAt: item.CreatedAt,
	}
	for _, p := range item.Payouts {
		row.Payouts = append(row.Payouts, payoutDocument{UserID: p.UserID, Amount: p.Amount})
	}
	return row
}

func settlementFromDocument(leagueID string, doc docstore.Document) (settlement.Settlement, error) {
	var row settlementDocument
	if err := doc.DataTo(&row); err != nil {
		return settlement.Settlement{}, err
	}

	item := settlement.Settlement{
		ID:        doc.ID,
		LeagueID:  leagueID,
		Week:      row.Week,
		Payouts:   make([]settlement.Payout, 0, len(row.Payouts)),
		CreatedAt: row.CreatedAt,
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = doc.CreateTime
	}
	for _, p := range row.Payouts {
		item.Payouts = append(item.Payouts, settlement.Payout{UserID: p.UserID, Amount: p.Amount})
	}
	return item, nil
}
