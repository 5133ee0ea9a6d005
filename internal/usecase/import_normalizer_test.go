package usecase

import (
	"reflect"
	"testing"
	"time"

	"github.com/riskibarqy/bet-hub/internal/domain/league"
	"github.com/riskibarqy/bet-hub/internal/domain/provider"
)

var sleeperSource = ImportSource{Platform: league.PlatformSleeper, DisplayName: "Sleeper", ProviderLeagueID: "784"}

func TestNormalizeImport_LeagueProjection(t *testing.T) {
	importedAt := time.Date(2026, 9, 6, 15, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	fake := newSleeperFake()

	got := NormalizeImport(sleeperSource, fake.league, fake.rosters, fake.users, importedAt)

	if got.League.Name != "Dynasty Degens" {
		t.Fatalf("unexpected league name: %q", got.League.Name)
	}
	if got.League.Platform != league.PlatformSleeper || got.League.PlatformID != "784" {
		t.Fatalf("unexpected platform: %s/%s", got.League.Platform, got.League.PlatformID)
	}
	if got.League.Metadata != (league.Metadata{Sport: "nfl", Season: "2026"}) {
		t.Fatalf("unexpected metadata: %+v", got.League.Metadata)
	}
	if got.League.ImportedAt == nil || !got.League.ImportedAt.Equal(importedAt) || got.League.ImportedAt.Location() != time.UTC {
		t.Fatalf("expected importedAt in UTC, got %v", got.League.ImportedAt)
	}
	if got.League.Settings["num_teams"] != 3.0 {
		t.Fatalf("expected settings to pass through, got %v", got.League.Settings)
	}
}

func TestNormalizeImport_DefaultLeagueName(t *testing.T) {
	got := NormalizeImport(sleeperSource, provider.RawLeague{}, nil, nil, time.Now())

	if got.League.Name != "Sleeper 784" {
		t.Fatalf("expected default name, got %q", got.League.Name)
	}
	if got.League.Settings == nil {
		t.Fatalf("expected empty settings map, got nil")
	}
	if len(got.Teams) != 0 {
		t.Fatalf("expected no teams, got %d", len(got.Teams))
	}
}

func TestNormalizeImport_TeamProjection(t *testing.T) {
	rosters := []provider.RawRoster{
		{RosterID: intPtr(0), OwnerID: "u1", Drafted: boolPtr(true)},
		{RosterID: intPtr(1), OwnerID: "u2", Players: []string{"p1"}},
		{RosterID: intPtr(2), OwnerID: "orphan"},
		{OwnerID: "u3"},
	}
	users := []provider.RawUser{
		{UserID: "u1", Username: "first", DisplayName: "Display One"},
		{UserID: "u2", Username: "second"},
		{UserID: "u3"},
		{UserID: "u1", Username: "dup", DisplayName: "Last Wins"},
	}

	got := NormalizeImport(sleeperSource, provider.RawLeague{}, rosters, users, time.Now())
	if len(got.Teams) != 4 {
		t.Fatalf("expected 4 teams, got %d", len(got.Teams))
	}

	tests := []struct {
		name        string
		index       int
		key         string
		displayName *string
		drafted     bool
		players     []string
	}{
		{name: "roster zero keeps id, later duplicate user wins", index: 0, key: "0", displayName: strPtr("Last Wins"), drafted: true, players: []string{}},
		{name: "username fallback", index: 1, key: "1", displayName: strPtr("second"), players: []string{"p1"}},
		{name: "orphan roster", index: 2, key: "2", players: []string{}},
		{name: "owner id key without roster id", index: 3, key: "u3", players: []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			team := got.Teams[tc.index]
			if team.Key() != tc.key {
				t.Fatalf("unexpected key: got=%s want=%s", team.Key(), tc.key)
			}
			if !reflect.DeepEqual(team.OwnerDisplayName, tc.displayName) {
				t.Fatalf("unexpected display name: got=%v want=%v", deref(team.OwnerDisplayName), deref(tc.displayName))
			}
			if team.Drafted != tc.drafted {
				t.Fatalf("unexpected drafted flag: %t", team.Drafted)
			}
			if !reflect.DeepEqual(team.Players, tc.players) {
				t.Fatalf("unexpected players: %v", team.Players)
			}
			if team.Settings == nil {
				t.Fatalf("expected empty settings map")
			}
		})
	}
}

func TestNormalizeImport_Deterministic(t *testing.T) {
	fake := newSleeperFake()
	at := time.Date(2026, 9, 6, 12, 0, 0, 0, time.UTC)

	first := NormalizeImport(sleeperSource, fake.league, fake.rosters, fake.users, at)
	second := NormalizeImport(sleeperSource, fake.league, fake.rosters, fake.users, at)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical projections:\n%+v\n%+v", first, second)
	}
}

func strPtr(v string) *string { return &v }

func deref(v *string) string {
	if v == nil {
		return "<nil>"
	}
	return *v
}
