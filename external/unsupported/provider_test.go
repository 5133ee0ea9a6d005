package unsupported

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/bet-hub/internal/domain/provider"
)

func TestProvidersFailFast(t *testing.T) {
	for _, p := range []*Provider{ESPN(), Yahoo()} {
		t.Run(p.Name(), func(t *testing.T) {
			ctx := context.Background()
			_, leagueErr := p.FetchLeague(ctx, "1")
			_, rosterErr := p.FetchRosters(ctx, "1")
			_, userErr := p.FetchUsers(ctx, "1")

			for _, err := range []error{leagueErr, rosterErr, userErr} {
				var notImplemented *provider.NotImplementedError
				if !errors.As(err, &notImplemented) {
					t.Fatalf("expected NotImplementedError, got %v", err)
				}
				if !strings.Contains(err.Error(), "requires provider-specific integration") {
					t.Fatalf("expected descriptive message, got %q", err.Error())
				}
			}
		})
	}
}
