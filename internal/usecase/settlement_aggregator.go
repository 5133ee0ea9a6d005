package usecase

import (
	"github.com/riskibarqy/bet-hub/internal/domain/bet"
	"github.com/shopspring/decimal"
)

// AggregatePayouts sums amount × (+1 win, -1 otherwise) per user across all
// bets. Bets without a participant list are skipped. Users who never took
// part are absent from the result.
//
// Sums are exact decimals so the result does not depend on input order.
func AggregatePayouts(bets []bet.Bet) map[string]float64 {
	totals := make(map[string]decimal.Decimal)
	for _, b := range bets {
		if b.Participants == nil {
			continue
		}
		for _, p := range b.Participants {
			signed := decimal.NewFromFloat(p.Amount).Mul(decimal.NewFromInt(int64(p.Result.Sign())))
			totals[p.UserID] = totals[p.UserID].Add(signed)
		}
	}

	out := make(map[string]float64, len(totals))
	for userID, total := range totals {
		out[userID] = total.InexactFloat64()
	}
	return out
}
