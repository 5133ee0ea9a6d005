package usecase

import (
	"strings"
	"time"

	"github.com/riskibarqy/bet-hub/internal/domain/league"
	"github.com/riskibarqy/bet-hub/internal/domain/provider"
	"github.com/riskibarqy/bet-hub/internal/domain/team"
)

// ImportProjection is the internal shape of one provider league, ready to be
// written.
type ImportProjection struct {
	League league.League
	Teams  []team.Team
}

// ImportSource identifies where raw records came from.
type ImportSource struct {
	Platform         league.Platform
	DisplayName      string
	ProviderLeagueID string
}

// NormalizeImport maps raw provider records into a league and its teams.
// It does no I/O; importedAt is the only time input.
func NormalizeImport(
	src ImportSource,
	raw provider.RawLeague,
	rosters []provider.RawRoster,
	users []provider.RawUser,
	importedAt time.Time,
) ImportProjection {
	usersByID := make(map[string]provider.RawUser, len(users))
	for _, u := range users {
		usersByID[u.UserID] = u
	}

	name := raw.Name
	if strings.TrimSpace(name) == "" {
		name = src.DisplayName + " " + src.ProviderLeagueID
	}

	importedAt = importedAt.UTC()
	projection := ImportProjection{
		League: league.League{
			Name:       name,
			Platform:   src.Platform,
			PlatformID: src.ProviderLeagueID,
			Settings:   nonNilMap(raw.Settings),
			Metadata: league.Metadata{
				Sport:  raw.Sport,
				Season: raw.Season,
			},
			ImportedAt: &importedAt,
		},
		Teams: make([]team.Team, 0, len(rosters)),
	}

	for _, r := range rosters {
		players := r.Players
		if players == nil {
			players = []string{}
		}
		projection.Teams = append(projection.Teams, team.Team{
			RosterID:         r.RosterID,
			OwnerID:          r.OwnerID,
			OwnerDisplayName: ownerDisplayName(usersByID, r.OwnerID),
			Players:          players,
			Settings:         nonNilMap(r.Settings),
			Drafted:          r.Drafted != nil && *r.Drafted,
		})
	}

	return projection
}

// ownerDisplayName prefers the display name over the username. Owners
// missing from the user list get nil.
func ownerDisplayName(usersByID map[string]provider.RawUser, ownerID string) *string {
	owner, ok := usersByID[ownerID]
	if !ok {
		return nil
	}
	switch {
	case owner.DisplayName != "":
		return &owner.DisplayName
	case owner.Username != "":
		return &owner.Username
	default:
		return nil
	}
}

func nonNilMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
