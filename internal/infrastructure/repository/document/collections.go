package document

import (
	"errors"

	"github.com/riskibarqy/bet-hub/internal/platform/docstore"
)

const leaguesCollection = "leagues"

func teamsCollection(leagueID string) string {
	return docstore.Collection(leaguesCollection, leagueID, "teams")
}

func betsCollection(leagueID string) string {
	return docstore.Collection(leaguesCollection, leagueID, "bets")
}

func payoutsCollection(leagueID string) string {
	return docstore.Collection(leaguesCollection, leagueID, "payouts")
}

func isNotFound(err error) bool {
	return errors.Is(err, docstore.ErrNotFound)
}
