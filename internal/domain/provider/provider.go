package provider

import (
	"context"
	"sort"
	"strings"
)

// Provider is a read-only fantasy platform a league can be imported from.
type Provider interface {
	// Name is the lowercase key used in routes and stored as the league platform.
	Name() string
	// DisplayName is used for default league names ("Sleeper 1234").
	DisplayName() string
	FetchLeague(ctx context.Context, leagueID string) (RawLeague, error)
	FetchRosters(ctx context.Context, leagueID string) ([]RawRoster, error)
	FetchUsers(ctx context.Context, leagueID string) ([]RawUser, error)
}

// RawLeague is the provider's league record, reduced to the fields an
// import reads.
type RawLeague struct {
	LeagueID string
	Name     string
	Sport    string
	Season   string
	Settings map[string]any
}

type RawRoster struct {
	// RosterID is nil when the provider omitted it; zero is a valid id.
	RosterID *int
	OwnerID  string
	Players  []string
	Settings map[string]any
	Drafted  *bool
}

type RawUser struct {
	UserID      string
	Username    string
	DisplayName string
}

// Registry resolves providers by name.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		if p == nil {
			continue
		}
		r.providers[strings.ToLower(p.Name())] = p
	}
	return r
}

func (r *Registry) Get(name string) (Provider, bool) {
	if r == nil {
		return nil, false
	}
	p, ok := r.providers[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.providers))
	for name := range r.providers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
