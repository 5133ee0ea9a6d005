package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/bet-hub/external/sleeper"
	"github.com/riskibarqy/bet-hub/external/sleeper/sleepertest"
	"github.com/riskibarqy/bet-hub/external/unsupported"
	"github.com/riskibarqy/bet-hub/internal/domain/provider"
	"github.com/riskibarqy/bet-hub/internal/infrastructure/repository/document"
	"github.com/riskibarqy/bet-hub/internal/platform/docstore"
	"github.com/riskibarqy/bet-hub/internal/platform/logging"
	"github.com/riskibarqy/bet-hub/internal/platform/metrics"
	"github.com/riskibarqy/bet-hub/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	router   http.Handler
	sleeper  *sleepertest.FakeSleeperServer
	recorder *metrics.Recorder
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	fake := sleepertest.NewFakeSleeperServer()
	t.Cleanup(fake.Close)

	logger := logging.NewNop()
	recorder := metrics.NewRecorder()
	store := docstore.NewMemoryStore()

	leagueRepo := document.NewLeagueRepository(store)
	teamRepo := document.NewTeamRepository(store)
	betRepo := document.NewBetRepository(store)
	settlementRepo := document.NewSettlementRepository(store)

	providers := provider.NewRegistry(
		sleeper.NewClient(sleeper.ClientConfig{BaseURL: fake.URL(), Logger: logger, Metrics: recorder}),
		unsupported.ESPN(),
		unsupported.Yahoo(),
	)

	handler := NewHandler(
		usecase.NewImportService(providers, leagueRepo, teamRepo, usecase.ImportServiceConfig{BulkWorkers: 2, BulkMaxItems: 5}, logger, recorder),
		usecase.NewSettlementService(leagueRepo, betRepo, settlementRepo, logger, recorder),
		usecase.NewLeagueService(leagueRepo, teamRepo),
		usecase.NewBetService(leagueRepo, betRepo),
		logger,
	)

	return &testAPI{
		router:   NewRouter(handler, recorder.Handler(), logger, []string{"*"}),
		sleeper:  fake,
		recorder: recorder,
	}
}

func (a *testAPI) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	}
	return rec, decoded
}

func dataMap(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "expected data object, got %v", body)
	return data
}

func dataList(t *testing.T, body map[string]any) []any {
	t.Helper()
	data, ok := body["data"].([]any)
	require.True(t, ok, "expected data array, got %v", body)
	return data
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{"/healthz", "/api/health"} {
		rec, body := api.do(t, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["ok"])
		assert.NotEmpty(t, body["time"])
	}
}

func TestImportLeague_SleeperEndToEnd(t *testing.T) {
	api := newTestAPI(t)

	rec, body := api.do(t, http.MethodPost, "/api/import/sleeper", `{"providerLeagueId":"`+sleepertest.LeagueID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	data := dataMap(t, body)
	assert.Equal(t, true, data["imported"])
	assert.Equal(t, 3.0, data["teamsImported"])
	leagueID, _ := data["leagueId"].(string)
	require.NotEmpty(t, leagueID)

	rec, body = api.do(t, http.MethodGet, "/api/leagues/"+leagueID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	league := dataMap(t, body)
	assert.Equal(t, "Dynasty Degens", league["name"])
	assert.Equal(t, "sleeper", league["platform"])
	assert.Equal(t, sleepertest.LeagueID, league["platformId"])

	rec, body = api.do(t, http.MethodGet, "/api/leagues/"+leagueID+"/teams", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, body), 3)

	// Re-importing into the same target keeps the team set stable.
	rec, body = api.do(t, http.MethodPost, "/api/import/sleeper",
		`{"providerLeagueId":"`+sleepertest.LeagueID+`","targetLeagueId":"`+leagueID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, leagueID, dataMap(t, body)["leagueId"])

	_, body = api.do(t, http.MethodGet, "/api/leagues/"+leagueID+"/teams", "")
	assert.Len(t, dataList(t, body), 3)
}

func TestImportLeague_RosterFailureReturnsImportError(t *testing.T) {
	api := newTestAPI(t)
	api.sleeper.Fail("rosters", http.StatusBadGateway)

	rec, body := api.do(t, http.MethodPost, "/api/import/sleeper", `{"providerLeagueId":"`+sleepertest.LeagueID+`"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "importFailed", body["reason"])
	assert.Contains(t, body["error"], "rosters")

	_, body = api.do(t, http.MethodGet, "/api/leagues", "")
	assert.Empty(t, dataList(t, body))
}

func TestImportLeague_UnknownSleeperLeagueIsNotFound(t *testing.T) {
	api := newTestAPI(t)

	rec, body := api.do(t, http.MethodPost, "/api/import/sleeper", `{"providerLeagueId":"404"}`)
	require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	assert.Equal(t, "NOT_FOUND", body["status"])
}

func TestImportLeague_UnsupportedProviders(t *testing.T) {
	api := newTestAPI(t)

	for _, name := range []string{"espn", "yahoo"} {
		rec, body := api.do(t, http.MethodPost, "/api/import/"+name, `{"providerLeagueId":"123"}`)
		require.Equal(t, http.StatusNotImplemented, rec.Code, name)
		assert.Equal(t, "UNIMPLEMENTED", body["status"])
		assert.Contains(t, body["error"], "not implemented")
	}
	assert.Zero(t, api.sleeper.Requests())
}

func TestImportLeague_RejectsBadRequests(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "unknown provider", path: "/api/import/myspace", body: `{"providerLeagueId":"1"}`},
		{name: "missing league id", path: "/api/import/sleeper", body: `{}`},
		{name: "unknown field", path: "/api/import/sleeper", body: `{"providerLeagueId":"1","extra":true}`},
		{name: "empty body", path: "/api/import/sleeper", body: ``},
		{name: "slash in target", path: "/api/import/sleeper", body: `{"providerLeagueId":"1","targetLeagueId":"a/b"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := api.do(t, http.MethodPost, tc.path, tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, "INVALID_ARGUMENT", body["status"])
			_, isString := body["error"].(string)
			assert.True(t, isString)
		})
	}
}

func TestImportLeagues_Bulk(t *testing.T) {
	api := newTestAPI(t)

	rec, body := api.do(t, http.MethodPost, "/api/import/sleeper/bulk",
		`{"leagues":[{"providerLeagueId":"`+sleepertest.LeagueID+`"},{"providerLeagueId":"404"}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	data := dataMap(t, body)
	assert.Equal(t, 1.0, data["successCount"])
	assert.Equal(t, 1.0, data["failedCount"])
	items := data["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "success", items[0].(map[string]any)["status"])
	assert.Equal(t, "failed", items[1].(map[string]any)["status"])
}

func TestSettlementFlow(t *testing.T) {
	api := newTestAPI(t)

	rec, body := api.do(t, http.MethodPost, "/api/leagues", `{"name":"Office Pool","metadata":{"sport":"nfl","season":"2026"}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	leagueID := dataMap(t, body)["id"].(string)

	rec, _ = api.do(t, http.MethodPost, "/api/leagues/"+leagueID+"/bets", `{
		"week": 1,
		"description": "Sunday night",
		"participants": [
			{"userId": "u1", "amount": 100, "result": "win"},
			{"userId": "u2", "amount": 100, "result": "lose"}
		]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, body = api.do(t, http.MethodPost, "/api/leagues/"+leagueID+"/payouts/calc", `{"week":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	result := dataMap(t, body)
	assert.Equal(t, 1.0, result["betsCount"])
	assert.Equal(t, []any{
		map[string]any{"userId": "u1", "amount": 100.0},
		map[string]any{"userId": "u2", "amount": -100.0},
	}, result["payouts"])

	rec, body = api.do(t, http.MethodPost, "/api/calc-payout", `{"leagueId":"`+leagueID+`","week":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	secondID := dataMap(t, body)["id"].(string)

	rec, body = api.do(t, http.MethodGet, "/api/leagues/"+leagueID+"/payouts?week=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, body), 2)

	rec, body = api.do(t, http.MethodGet, "/api/leagues/"+leagueID+"/payouts/"+secondID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1.0, dataMap(t, body)["week"])
}

func TestCalcPayout_Validation(t *testing.T) {
	api := newTestAPI(t)

	rec, body := api.do(t, http.MethodPost, "/api/calc-payout", `{"week":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalidInput", body["reason"])

	rec, _ = api.do(t, http.MethodPost, "/api/calc-payout", `{"leagueId":"L1","week":0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = api.do(t, http.MethodPost, "/api/calc-payout", `{"leagueId":"missing","week":1}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBetLifecycle(t *testing.T) {
	api := newTestAPI(t)

	_, body := api.do(t, http.MethodPost, "/api/leagues", `{"name":"Pool"}`)
	leagueID := dataMap(t, body)["id"].(string)

	rec, body := api.do(t, http.MethodPost, "/api/leagues/"+leagueID+"/bets",
		`{"week":2,"participants":[{"userId":"u1","amount":5,"result":"WIN"}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := dataMap(t, body)
	betID := created["id"].(string)
	assert.Equal(t, "open", created["status"])

	rec, body = api.do(t, http.MethodPatch, "/api/leagues/"+leagueID+"/bets/"+betID, `{"status":"settled"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "settled", dataMap(t, body)["status"])

	_, body = api.do(t, http.MethodGet, "/api/leagues/"+leagueID+"/bets?week=1", "")
	assert.Empty(t, dataList(t, body))
	_, body = api.do(t, http.MethodGet, "/api/leagues/"+leagueID+"/bets?week=2", "")
	assert.Len(t, dataList(t, body), 1)

	rec, _ = api.do(t, http.MethodGet, "/api/leagues/"+leagueID+"/bets?week=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = api.do(t, http.MethodDelete, "/api/leagues/"+leagueID+"/bets/"+betID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec, _ = api.do(t, http.MethodGet, "/api/leagues/"+leagueID+"/bets/"+betID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeaguePatchAndDelete(t *testing.T) {
	api := newTestAPI(t)

	_, body := api.do(t, http.MethodPost, "/api/leagues", `{"name":"Pool","settings":{"buyIn":20}}`)
	leagueID := dataMap(t, body)["id"].(string)

	rec, body := api.do(t, http.MethodPatch, "/api/leagues/"+leagueID, `{"name":"Renamed"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	patched := dataMap(t, body)
	assert.Equal(t, "Renamed", patched["name"])
	assert.Equal(t, map[string]any{"buyIn": 20.0}, patched["settings"])

	rec, _ = api.do(t, http.MethodDelete, "/api/leagues/"+leagueID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = api.do(t, http.MethodGet, "/api/leagues/"+leagueID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.do(t, http.MethodPost, "/api/import/sleeper", `{"providerLeagueId":"`+sleepertest.LeagueID+`"}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bethub_league_imports_total")
}
