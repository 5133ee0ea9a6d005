package sleeper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/bet-hub/external/sleeper/sleepertest"
	"github.com/riskibarqy/bet-hub/internal/domain/provider"
	"github.com/riskibarqy/bet-hub/internal/platform/logging"
	"github.com/riskibarqy/bet-hub/internal/platform/resilience"
	"github.com/riskibarqy/bet-hub/internal/usecase"
)

func newTestClient(baseURL string, breaker resilience.CircuitBreakerConfig) *Client {
	return NewClient(ClientConfig{
		BaseURL:        baseURL,
		Timeout:        2 * time.Second,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
}

func TestClient_FetchLeague(t *testing.T) {
	fake := sleepertest.NewFakeSleeperServer()
	defer fake.Close()
	c := newTestClient(fake.URL(), resilience.CircuitBreakerConfig{})

	got, err := c.FetchLeague(context.Background(), sleepertest.LeagueID)
	if err != nil {
		t.Fatalf("fetch league: %v", err)
	}
	if got.Name != "Dynasty Degens" || got.Sport != "nfl" || got.Season != "2026" {
		t.Fatalf("unexpected league: %+v", got)
	}
	if got.Settings["num_teams"] != float64(3) {
		t.Fatalf("expected settings to be decoded, got %v", got.Settings)
	}
}

func TestClient_FetchLeague_NullBodyIsNotFound(t *testing.T) {
	fake := sleepertest.NewFakeSleeperServer()
	defer fake.Close()
	c := newTestClient(fake.URL(), resilience.CircuitBreakerConfig{})

	_, err := c.FetchLeague(context.Background(), "404")
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_FetchRostersAndUsers(t *testing.T) {
	fake := sleepertest.NewFakeSleeperServer()
	defer fake.Close()
	c := newTestClient(fake.URL(), resilience.CircuitBreakerConfig{})

	rosters, err := c.FetchRosters(context.Background(), sleepertest.LeagueID)
	if err != nil {
		t.Fatalf("fetch rosters: %v", err)
	}
	if len(rosters) != 3 {
		t.Fatalf("expected 3 rosters, got %d", len(rosters))
	}
	if rosters[0].RosterID == nil || *rosters[0].RosterID != 1 || rosters[0].OwnerID != "470093296347697152" {
		t.Fatalf("unexpected first roster: %+v", rosters[0])
	}
	if len(rosters[0].Players) != 3 {
		t.Fatalf("expected players to be decoded, got %v", rosters[0].Players)
	}
	if rosters[2].OwnerID != "" || rosters[2].Players != nil {
		t.Fatalf("expected unclaimed roster without owner and players, got %+v", rosters[2])
	}
	if rosters[0].Drafted != nil {
		t.Fatalf("expected drafted to stay unset when Sleeper omits it")
	}

	users, err := c.FetchUsers(context.Background(), sleepertest.LeagueID)
	if err != nil {
		t.Fatalf("fetch users: %v", err)
	}
	if len(users) != 2 || users[1].Username != "late_swap" || users[1].DisplayName != "" {
		t.Fatalf("unexpected users: %+v", users)
	}
}

func TestClient_NonSuccessStatusIsUpstreamError(t *testing.T) {
	fake := sleepertest.NewFakeSleeperServer()
	defer fake.Close()
	fake.Fail("rosters", http.StatusNotFound)
	c := newTestClient(fake.URL(), resilience.CircuitBreakerConfig{})

	_, err := c.FetchRosters(context.Background(), sleepertest.LeagueID)

	var upstreamErr *provider.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstreamErr.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", upstreamErr.StatusCode)
	}
	if !strings.HasSuffix(upstreamErr.URL, "/league/"+sleepertest.LeagueID+"/rosters") {
		t.Fatalf("unexpected url: %s", upstreamErr.URL)
	}
	if !strings.Contains(upstreamErr.Body, "upstream unavailable") {
		t.Fatalf("expected abbreviated body, got %q", upstreamErr.Body)
	}
}

func TestClient_CircuitOpensOnServerErrors(t *testing.T) {
	fake := sleepertest.NewFakeSleeperServer()
	defer fake.Close()
	fake.Fail("league", http.StatusBadGateway)
	c := newTestClient(fake.URL(), resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 2; i++ {
		_, err := c.FetchLeague(context.Background(), sleepertest.LeagueID)
		var upstreamErr *provider.UpstreamError
		if !errors.As(err, &upstreamErr) {
			t.Fatalf("attempt %d: expected UpstreamError, got %v", i, err)
		}
	}

	before := fake.Requests()
	_, err := c.FetchLeague(context.Background(), sleepertest.LeagueID)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once the circuit is open, got %v", err)
	}
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen in chain, got %v", err)
	}
	if fake.Requests() != before {
		t.Fatalf("open circuit must not reach the network")
	}
}

func TestClient_ClientErrorsDoNotOpenCircuit(t *testing.T) {
	fake := sleepertest.NewFakeSleeperServer()
	defer fake.Close()
	fake.Fail("users", http.StatusBadRequest)
	c := newTestClient(fake.URL(), resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute})

	for i := 0; i < 3; i++ {
		if _, err := c.FetchUsers(context.Background(), sleepertest.LeagueID); errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("attempt %d: circuit opened on a 4xx", i)
		}
	}
}

func TestClient_TransportErrorCountsAsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	c := newTestClient(baseURL, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute})

	if _, err := c.FetchUsers(context.Background(), "1"); err == nil {
		t.Fatalf("expected transport error")
	}
	if _, err := c.FetchUsers(context.Background(), "1"); !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected open circuit after transport failure, got %v", err)
	}
}

func TestClient_LeaguePathEscapesID(t *testing.T) {
	if got := leaguePath("a/b", "users"); got != "/league/a%2Fb/users" {
		t.Fatalf("unexpected path: %s", got)
	}
}

func TestAbbreviateBody(t *testing.T) {
	long := strings.Repeat("x", 300)
	if got := abbreviateBody([]byte(long)); len(got) != 243 || !strings.HasSuffix(got, "...") {
		t.Fatalf("unexpected abbreviation length=%d", len(got))
	}
}
