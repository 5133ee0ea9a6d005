package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/bet-hub/internal/domain/provider"
	"github.com/riskibarqy/bet-hub/internal/infrastructure/repository/document"
	"github.com/riskibarqy/bet-hub/internal/platform/docstore"
	"github.com/riskibarqy/bet-hub/internal/platform/id"
)

type testRepos struct {
	store       *docstore.MemoryStore
	leagues     *document.LeagueRepository
	teams       *document.TeamRepository
	bets        *document.BetRepository
	settlements *document.SettlementRepository
	now         *time.Time
}

func newTestRepos() testRepos {
	now := time.Date(2026, 9, 6, 12, 0, 0, 0, time.UTC)
	store := docstore.NewMemoryStore(
		docstore.WithIDGenerator(id.NewSequenceGenerator("doc")),
		docstore.WithClock(func() time.Time { return now }),
	)
	return testRepos{
		store:       store,
		leagues:     document.NewLeagueRepository(store),
		teams:       document.NewTeamRepository(store),
		bets:        document.NewBetRepository(store),
		settlements: document.NewSettlementRepository(store),
		now:         &now,
	}
}

// fakeProvider serves fixed records and can fail individual endpoints.
type fakeProvider struct {
	name        string
	displayName string
	league      provider.RawLeague
	rosters     []provider.RawRoster
	users       []provider.RawUser
	leagueErr   error
	rostersErr  error
	usersErr    error
	calls       atomic.Int32
}

func (p *fakeProvider) Name() string        { return p.name }
func (p *fakeProvider) DisplayName() string { return p.displayName }

func (p *fakeProvider) FetchLeague(context.Context, string) (provider.RawLeague, error) {
	p.calls.Add(1)
	return p.league, p.leagueErr
}

func (p *fakeProvider) FetchRosters(context.Context, string) ([]provider.RawRoster, error) {
	p.calls.Add(1)
	if p.rostersErr != nil {
		return nil, p.rostersErr
	}
	return p.rosters, nil
}

func (p *fakeProvider) FetchUsers(context.Context, string) ([]provider.RawUser, error) {
	p.calls.Add(1)
	if p.usersErr != nil {
		return nil, p.usersErr
	}
	return p.users, nil
}

func newSleeperFake() *fakeProvider {
	return &fakeProvider{
		name:        "sleeper",
		displayName: "Sleeper",
		league: provider.RawLeague{
			LeagueID: "784",
			Name:     "Dynasty Degens",
			Sport:    "nfl",
			Season:   "2026",
			Settings: map[string]any{"num_teams": 3.0},
		},
		rosters: []provider.RawRoster{
			{RosterID: intPtr(1), OwnerID: "u1", Players: []string{"4046", "6794"}, Settings: map[string]any{"wins": 2.0}},
			{RosterID: intPtr(2), OwnerID: "u2", Players: []string{"4984"}},
			{RosterID: intPtr(3), OwnerID: "ghost"},
		},
		users: []provider.RawUser{
			{UserID: "u1", Username: "alpha", DisplayName: "Alpha Dog"},
			{UserID: "u2", Username: "bravo"},
		},
	}
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }
