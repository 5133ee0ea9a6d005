package sleeper

import "github.com/riskibarqy/bet-hub/internal/domain/provider"

type leagueResponse struct {
	LeagueID string         `json:"league_id"`
	Name     string         `json:"name"`
	Sport    string         `json:"sport"`
	Season   string         `json:"season"`
	Status   string         `json:"status"`
	Settings map[string]any `json:"settings"`
}

func (l leagueResponse) toRaw() provider.RawLeague {
	return provider.RawLeague{
		LeagueID: l.LeagueID,
		Name:     l.Name,
		Sport:    l.Sport,
		Season:   l.Season,
		Settings: l.Settings,
	}
}

// rosterResponse mirrors GET /league/{id}/rosters. owner_id is null for
// rosters nobody has claimed.
type rosterResponse struct {
	RosterID *int           `json:"roster_id"`
	OwnerID  *string        `json:"owner_id"`
	LeagueID string         `json:"league_id"`
	Players  []string       `json:"players"`
	Starters []string       `json:"starters"`
	Settings map[string]any `json:"settings"`
	Drafted  *bool          `json:"drafted"`
}

func (r rosterResponse) toRaw() provider.RawRoster {
	out := provider.RawRoster{
		RosterID: r.RosterID,
		Players:  r.Players,
		Settings: r.Settings,
		Drafted:  r.Drafted,
	}
	if r.OwnerID != nil {
		out.OwnerID = *r.OwnerID
	}
	return out
}

type userResponse struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

func (u userResponse) toRaw() provider.RawUser {
	return provider.RawUser{
		UserID:      u.UserID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
	}
}
