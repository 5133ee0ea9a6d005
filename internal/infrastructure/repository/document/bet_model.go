package document

import (
	"github.com/riskibarqy/bet-hub/internal/domain/bet"
	"github.com/riskibarqy/bet-hub/internal/platform/docstore"
)

type betDocument struct {
	Week         int                   `json:"week"`
	Status       string                `json:"status"`
	Description  string                `json:"description,omitempty"`
	Participants []participantDocument `json:"participants"`
}

type participantDocument struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
	Result string  `json:"result"`
}

func betToDocument(item bet.Bet) betDocument {
	row := betDocument{
		Week:        item.Week,
		Status:      string(item.Status),
		Description: item.Description,
	}
	if item.Participants != nil {
		row.Participants = make([]participantDocument, 0, len(item.Participants))
		for _, p := range item.Participants {
			row.Participants = append(row.Participants, participantDocument{
				UserID: p.UserID,
				Amount: p.Amount,
				Result: string(p.Result),
			})
		}
	}
	return row
}

// betFromDocument keeps Participants nil when the stored document has no
// participant list.
func betFromDocument(leagueID string, doc docstore.Document) (bet.Bet, error) {
	var row betDocument
	if err := doc.DataTo(&row); err != nil {
		return bet.Bet{}, err
	}

	item := bet.Bet{
		ID:          doc.ID,
		LeagueID:    leagueID,
		Week:        row.Week,
		Status:      bet.Status(row.Status),
		Description: row.Description,
		CreatedAt:   doc.CreateTime,
	}
	if row.Participants != nil {
		item.Participants = make([]bet.Participant, 0, len(row.Participants))
		for _, p := range row.Participants {
			item.Participants = append(item.Participants, bet.Participant{
				UserID: p.UserID,
				Amount: p.Amount,
				Result: bet.Result(p.Result),
			})
		}
	}
	return item, nil
}
