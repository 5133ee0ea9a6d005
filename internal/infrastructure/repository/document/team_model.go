package document

import (
	"github.com/riskibarqy/bet-hub/internal/domain/team"
	"github.com/riskibarqy/bet-hub/internal/platform/docstore"
)

type teamDocument struct {
	RosterID         *int           `json:"rosterId"`
	OwnerID          string         `json:"ownerId"`
	OwnerDisplayName *string        `json:"ownerDisplayName"`
	Players          []string       `json:"players"`
	Settings         map[string]any `json:"settings"`
	Drafted          bool           `json:"drafted"`
}

func teamToDocument(item team.Team) teamDocument {
	players := item.Players
	if players == nil {
		players = []string{}
	}
	settings := item.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	return teamDocument{
		RosterID:         item.RosterID,
		OwnerID:          item.OwnerID,
		OwnerDisplayName: item.OwnerDisplayName,
		Players:          players,
		Settings:         settings,
		Drafted:          item.Drafted,
	}
}

func teamFromDocument(leagueID string, doc docstore.Document) (team.Team, error) {
	var row teamDocument
	if err := doc.DataTo(&row); err != nil {
		return team.Team{}, err
	}
	return team.Team{
		LeagueID:         leagueID,
		RosterID:         row.RosterID,
		OwnerID:          row.OwnerID,
		OwnerDisplayName: row.OwnerDisplayName,
		Players:          row.Players,
		Settings:         row.Settings,
		Drafted:          row.Drafted,
	}, nil
}
