package httpapi

import (
	"time"

	"github.com/riskibarqy/bet-hub/internal/domain/bet"
	"github.com/riskibarqy/bet-hub/internal/domain/league"
	"github.com/riskibarqy/bet-hub/internal/domain/settlement"
	"github.com/riskibarqy/bet-hub/internal/domain/team"
	"github.com/riskibarqy/bet-hub/internal/usecase"
)

type healthDTO struct {
	OK   bool   `json:"ok"`
	Time string `json:"time"`
}

type importLeagueRequest struct {
	ProviderLeagueID string `json:"providerLeagueId" validate:"required,max=64"`
	TargetLeagueID   string `json:"targetLeagueId" validate:"omitempty,max=128,excludes=/"`
}

type bulkImportRequest struct {
	Leagues []importLeagueRequest `json:"leagues" validate:"required,min=1,dive"`
}

type calcPayoutRequest struct {
	Week int `json:"week" validate:"required,gt=0"`
}

type legacyCalcPayoutRequest struct {
	LeagueID string `json:"leagueId" validate:"required"`
	Week     int    `json:"week" validate:"required,gt=0"`
}

type metadataDTO struct {
	Sport  string `json:"sport"`
	Season string `json:"season"`
}

type createLeagueRequest struct {
	Name     string         `json:"name" validate:"required,max=200"`
	Settings map[string]any `json:"settings"`
	Metadata *metadataDTO   `json:"metadata"`
}

type patchLeagueRequest struct {
	Name     *string        `json:"name" validate:"omitempty,min=1,max=200"`
	Settings map[string]any `json:"settings"`
	Metadata *metadataDTO   `json:"metadata"`
}

type participantDTO struct {
	UserID string  `json:"userId" validate:"required"`
	Amount float64 `json:"amount" validate:"gte=0"`
	Result string  `json:"result" validate:"required"`
}

type createBetRequest struct {
	Week         int              `json:"week" validate:"required,gt=0"`
	Status       string           `json:"status"`
	Description  string           `json:"description" validate:"max=500"`
	Participants []participantDTO `json:"participants" validate:"required,min=1,dive"`
}

type updateBetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type leagueDTO struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Platform   string         `json:"platform"`
	PlatformID string         `json:"platformId,omitempty"`
	Settings   map[string]any `json:"settings"`
	Metadata   metadataDTO    `json:"metadata"`
	ImportedAt string         `json:"importedAt,omitempty"`
	CreatedAt  string         `json:"createdAt,omitempty"`
	UpdatedAt  string         `json:"updatedAt,omitempty"`
}

type teamDTO struct {
	ID               string         `json:"id"`
	LeagueID         string         `json:"leagueId"`
	RosterID         *int           `json:"rosterId"`
	OwnerID          string         `json:"ownerId"`
	OwnerDisplayName *string        `json:"ownerDisplayName"`
	Players          []string       `json:"players"`
	Settings         map[string]any `json:"settings"`
	Drafted          bool           `json:"drafted"`
}

type betDTO struct {
	ID           string           `json:"id"`
	LeagueID     string           `json:"leagueId"`
	Week         int              `json:"week"`
	Status       string           `json:"status"`
	Description  string           `json:"description,omitempty"`
	Participants []participantDTO `json:"participants"`
	CreatedAt    string           `json:"createdAt,omitempty"`
}

type payoutDTO struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
}

type settlementDTO struct {
	ID        string      `json:"id"`
	LeagueID  string      `json:"leagueId"`
	Week      int         `json:"week"`
	Payouts   []payoutDTO `json:"payouts"`
	CreatedAt string      `json:"createdAt,omitempty"`
}

type settlementResultDTO struct {
	ID        string      `json:"id"`
	LeagueID  string      `json:"leagueId"`
	Week      int         `json:"week"`
	Payouts   []payoutDTO `json:"payouts"`
	BetsCount int         `json:"betsCount"`
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339Nano)
}

func leagueToDTO(v league.League) leagueDTO {
	out := leagueDTO{
		ID:         v.ID,
		Name:       v.Name,
		Platform:   string(v.Platform),
		PlatformID: v.PlatformID,
		Settings:   v.Settings,
		Metadata:   metadataDTO{Sport: v.Metadata.Sport, Season: v.Metadata.Season},
		CreatedAt:  formatTime(v.CreatedAt),
		UpdatedAt:  formatTime(v.UpdatedAt),
	}
	if out.Settings == nil {
		out.Settings = map[string]any{}
	}
	if v.ImportedAt != nil {
		out.ImportedAt = formatTime(*v.ImportedAt)
	}
	return out
}

func teamToDTO(v team.Team) teamDTO {
	out := teamDTO{
		ID:               v.Key(),
		LeagueID:         v.LeagueID,
		RosterID:         v.RosterID,
		OwnerID:          v.OwnerID,
		OwnerDisplayName: v.OwnerDisplayName,
		Players:          v.Players,
		Settings:         v.Settings,
		Drafted:          v.Drafted,
	}
	if out.Players == nil {
		out.Players = []string{}
	}
	if out.Settings == nil {
		out.Settings = map[string]any{}
	}
	return out
}

func betToDTO(v bet.Bet) betDTO {
	participants := make([]participantDTO, 0, len(v.Participants))
	for _, p := range v.Participants {
		participants = append(participants, participantDTO{
			UserID: p.UserID,
			Amount: p.Amount,
			Result: string(p.Result),
		})
	}
	return betDTO{
		ID:           v.ID,
		LeagueID:     v.LeagueID,
		Week:         v.Week,
		Status:       string(v.Status),
		Description:  v.Description,
		Participants: participants,
		CreatedAt:    formatTime(v.CreatedAt),
	}
}

func payoutsToDTO(items []settlement.Payout) []payoutDTO {
	out := make([]payoutDTO, 0, len(items))
	for _, p := range items {
		out = append(out, payoutDTO{UserID: p.UserID, Amount: p.Amount})
	}
	return out
}

func settlementToDTO(v settlement.Settlement) settlementDTO {
	return settlementDTO{
		ID:        v.ID,
		LeagueID:  v.LeagueID,
		Week:      v.Week,
		Payouts:   payoutsToDTO(v.Payouts),
		CreatedAt: formatTime(v.CreatedAt),
	}
}

func settlementResultToDTO(v usecase.SettlementResult) settlementResultDTO {
	return settlementResultDTO{
		ID:        v.ID,
		LeagueID:  v.LeagueID,
		Week:      v.Week,
		Payouts:   payoutsToDTO(v.Payouts),
		BetsCount: v.BetsCount,
	}
}

func toParticipants(items []participantDTO) []bet.Participant {
	out := make([]bet.Participant, 0, len(items))
	for _, p := range items {
		out = append(out, bet.Participant{
			UserID: p.UserID,
			Amount: p.Amount,
			Result: bet.Result(p.Result),
		})
	}
	return out
}
