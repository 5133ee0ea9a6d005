// Package unsupported holds the providers bet-hub knows about but cannot
// import from yet. Every fetch fails immediately without network access.
package unsupported

import (
	"context"

	"github.com/riskibarqy/bet-hub/internal/domain/provider"
)

type Provider struct {
	name        string
	displayName string
	reason      string
}

// ESPN leagues need scraping or OAuth depending on league type.
func ESPN() *Provider {
	return &Provider{
		name:        "espn",
		displayName: "ESPN",
		reason:      "requires provider-specific integration (auth and league mapping)",
	}
}

// Yahoo needs OAuth and the Yahoo Fantasy Sports API.
func Yahoo() *Provider {
	return &Provider{
		name:        "yahoo",
		displayName: "Yahoo",
		reason:      "requires provider-specific integration (OAuth and Yahoo Fantasy Sports API)",
	}
}

func (p *Provider) Name() string {
	return p.name
}

func (p *Provider) DisplayName() string {
	return p.displayName
}

func (p *Provider) FetchLeague(context.Context, string) (provider.RawLeague, error) {
	return provider.RawLeague{}, p.err()
}

func (p *Provider) FetchRosters(context.Context, string) ([]provider.RawRoster, error) {
	return nil, p.err()
}

func (p *Provider) FetchUsers(context.Context, string) ([]provider.RawUser, error) {
	return nil, p.err()
}

func (p *Provider) err() error {
	return &provider.NotImplementedError{Provider: p.displayName, Reason: p.reason}
}
