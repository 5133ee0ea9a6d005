package settlement

import "time"

type Payout struct {
	UserID string
	Amount float64
}

// Settlement is an immutable snapshot of net payouts for one league week.
// Several snapshots may exist for the same week.
type Settlement struct {
	ID        string
	LeagueID  string
	Week      int
	Payouts   []Payout
	CreatedAt time.Time
}
