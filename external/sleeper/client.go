package sleeper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/bet-hub/internal/domain/provider"
	"github.com/riskibarqy/bet-hub/internal/platform/logging"
	"github.com/riskibarqy/bet-hub/internal/platform/metrics"
	"github.com/riskibarqy/bet-hub/internal/platform/resilience"
	"github.com/riskibarqy/bet-hub/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/time/rate"
)

const (
	ProviderName    = "sleeper"
	DisplayName     = "Sleeper"
	DefaultBaseURL  = "https://api.sleeper.app/v1"
	maxResponseSize = 6 << 20

	endpointLeague  = "league"
	endpointRosters = "rosters"
	endpointUsers   = "users"
)

var errSleeperTransient = crerr.New("sleeper transient failure")

type ClientConfig struct {
	HTTPClient         *http.Client
	BaseURL            string
	Timeout            time.Duration
	RateLimitPerMinute int
	Logger             *logging.Logger
	Metrics            *metrics.Recorder
	CircuitBreaker     resilience.CircuitBreakerConfig
}

// Client reads public league data from the Sleeper API. Every call is a
// fresh request; nothing is retried or cached.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	logger         *logging.Logger
	metrics        *metrics.Recorder
	limiter        *rate.Limiter
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RateLimitPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RateLimitPerMinute)/60), max(cfg.RateLimitPerMinute/60, 1))
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	recorder := cfg.Metrics
	breakerCfg.OnStateChange = func(name string, from, to resilience.CircuitState) {
		recorder.SetCircuitOpen(name, to == resilience.CircuitStateOpen)
		logger.Warn("circuit breaker state changed", "breaker", name, "from", string(from), "to", string(to))
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		logger:         logger,
		metrics:        recorder,
		limiter:        limiter,
		breaker:        resilience.NewCircuitBreaker(ProviderName, breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) Name() string {
	return ProviderName
}

func (c *Client) DisplayName() string {
	return DisplayName
}

// FetchLeague returns usecase.ErrNotFound when Sleeper answers with a null
// body, which is what it does for unknown league ids.
func (c *Client) FetchLeague(ctx context.Context, leagueID string) (provider.RawLeague, error) {
	var out *leagueResponse
	if err := c.doJSON(ctx, endpointLeague, leaguePath(leagueID, ""), &out); err != nil {
		return provider.RawLeague{}, fmt.Errorf("fetch sleeper league %s: %w", leagueID, err)
	}
	if out == nil {
		return provider.RawLeague{}, fmt.Errorf("%w: sleeper league %s", usecase.ErrNotFound, leagueID)
	}
	return out.toRaw(), nil
}

func (c *Client) FetchRosters(ctx context.Context, leagueID string) ([]provider.RawRoster, error) {
	var rows []rosterResponse
	if err := c.doJSON(ctx, endpointRosters, leaguePath(leagueID, "rosters"), &rows); err != nil {
		return nil, fmt.Errorf("fetch sleeper rosters %s: %w", leagueID, err)
	}

	out := make([]provider.RawRoster, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toRaw())
	}
	return out, nil
}

func (c *Client) FetchUsers(ctx context.Context, leagueID string) ([]provider.RawUser, error) {
	var rows []userResponse
	if err := c.doJSON(ctx, endpointUsers, leaguePath(leagueID, "users"), &rows); err != nil {
		return nil, fmt.Errorf("fetch sleeper users %s: %w", leagueID, err)
	}

	out := make([]provider.RawUser, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toRaw())
	}
	return out, nil
}

func leaguePath(leagueID, suffix string) string {
	path := "/league/" + url.PathEscape(strings.TrimSpace(leagueID))
	if suffix != "" {
		path += "/" + suffix
	}
	return path
}

func (c *Client) doJSON(ctx context.Context, endpoint, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "sleeper circuit breaker rejected request", "state", string(c.breaker.State()))
			return fmt.Errorf("%w: sleeper is temporarily unavailable: %w", usecase.ErrDependencyUnavailable, err)
		}
	}

	raw, err := c.execute(ctx, endpoint, c.baseURL+path)
	if c.circuitEnabled {
		c.recordOutcome(ctx, err)
	}
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode sleeper payload: %w", err)
	}
	return nil
}

// recordOutcome feeds the breaker. Calls abandoned by the caller only
// release their slot; sibling fetches cancelled after another one failed
// must not count as healthy responses.
func (c *Client) recordOutcome(ctx context.Context, err error) {
	switch {
	case err == nil:
		c.breaker.RecordSuccess()
	case ctx.Err() != nil, errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.breaker.RecordCancel()
	case crerr.Is(err, errSleeperTransient):
		c.breaker.RecordFailure()
	default:
		c.breaker.RecordSuccess()
	}
}

func (c *Client) execute(ctx context.Context, endpoint, fullURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for sleeper rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveProviderRequest(ProviderName, endpoint, 0)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.WarnContext(ctx, "sleeper request failed", "url", fullURL, "error", err)
		return nil, crerr.Mark(crerr.Wrap(err, "send sleeper request"), errSleeperTransient)
	}
	defer resp.Body.Close()
	c.metrics.ObserveProviderRequest(ProviderName, endpoint, resp.StatusCode)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseSize)); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "read sleeper response body"), errSleeperTransient)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstreamErr := &provider.UpstreamError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			URL:        fullURL,
			Body:       abbreviateBody(buf.B),
		}
		c.logger.WarnContext(ctx, "sleeper returned non-success status", "url", fullURL, "status", resp.StatusCode)
		if isCircuitFailureStatus(resp.StatusCode) {
			return nil, crerr.Mark(upstreamErr, errSleeperTransient)
		}
		return nil, upstreamErr
	}

	// The buffer goes back to the pool, so hand out a copy.
	return bytes.Clone(buf.B), nil
}

func isCircuitFailureStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
