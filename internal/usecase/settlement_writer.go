package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/bet-hub/internal/domain/settlement"
)

// SettlementWriter appends settlement snapshots. It never touches earlier
// snapshots of the same week.
type SettlementWriter struct {
	repo settlement.Repository
	now  func() time.Time
}

func NewSettlementWriter(repo settlement.Repository) *SettlementWriter {
	return &SettlementWriter{repo: repo, now: time.Now}
}

func (w *SettlementWriter) Persist(ctx context.Context, leagueID string, week int, totals map[string]float64) (settlement.Settlement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettlementWriter.Persist",
		attrLeagueID.String(leagueID),
		attrWeek.Int(week),
	)
	defer span.End()

	item := settlement.Settlement{
		LeagueID:  leagueID,
		Week:      week,
		Payouts:   payoutsFromTotals(totals),
		CreatedAt: w.now().UTC(),
	}

	settlementID, err := w.repo.Append(ctx, item)
	if err != nil {
		failSpan(span, err)
		return settlement.Settlement{}, fmt.Errorf("append settlement: %w", err)
	}
	item.ID = settlementID
	return item, nil
}

// payoutsFromTotals orders payouts by user id.
func payoutsFromTotals(totals map[string]float64) []settlement.Payout {
	payouts := make([]settlement.Payout, 0, len(totals))
	for userID, amount := range totals {
		payouts = append(payouts, settlement.Payout{UserID: userID, Amount: amount})
	}
	sort.Slice(payouts, func(i, j int) bool {
		return payouts[i].UserID < payouts[j].UserID
	})
	return payouts
}
